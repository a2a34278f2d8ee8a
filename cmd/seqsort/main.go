package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/seqkit/internal/sortcmd"
)

func main() {
	cli.Main(context.Background(), sortcmd.Command{})
}
