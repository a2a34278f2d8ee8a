// Package sortcmd implements the seqsort command,
// which sorts integers with a ds.Sequence backed heap or bubble sort.
package sortcmd

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/seqkit/port/ds/dsheap"
	"go.llib.dev/seqkit/port/ds/dslist"
)

const (
	ErrUnknownBackend errorkit.Error = "ErrUnknownBackend"
	ErrUnknownAlgo    errorkit.Error = "ErrUnknownAlgo"
	ErrInvalidInput   errorkit.Error = "ErrInvalidInput"
)

const (
	BackendArray  = "array"
	BackendLinked = "linked"

	AlgoHeap   = "heap"
	AlgoBubble = "bubble"
)

// Command is configured by the cli package through its struct tags,
// the enum tags reject unknown backends and algorithms before ServeCLI is called.
type Command struct {
	Backend string `flag:"backend" env:"SEQSORT_BACKEND" default:"array" enum:"array,linked," desc:"storage of the sequence"`
	Algo    string `flag:"algo" env:"SEQSORT_ALGO" default:"heap" enum:"heap,bubble," desc:"sorting algorithm"`
	Desc    bool   `flag:"desc" env:"SEQSORT_DESC" desc:"sort in descending order"`
}

func (cmd Command) Summary() string {
	return "sorts whitespace separated integers read from the standard input"
}

func (cmd Command) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(),
		logging.Field("backend", cmd.Backend),
		logging.Field("algo", cmd.Algo))

	seq, err := cmd.newSequence()
	if err != nil {
		fail(w, err)
		return
	}

	sort, err := cmd.sorter()
	if err != nil {
		fail(w, err)
		return
	}

	n, err := read(r, seq)
	if err != nil {
		logger.Error(ctx, "failed to read the input", logging.ErrField(err))
		fail(w, err)
		return
	}
	logger.Debug(ctx, "input is loaded", logging.Field("count", n))

	var compare = ds.Ascending[int]()
	if cmd.Desc {
		compare = ds.Reverse(compare)
	}

	for v := range sort(seq, compare) {
		fmt.Fprintln(w, v)
	}

	logger.Info(ctx, "sorted", logging.Field("count", n))
}

type sortFunc func(seq ds.Sequence[int], cmp ds.Comparator[int]) iter.Seq[int]

func (cmd Command) sorter() (sortFunc, error) {
	switch cmd.Algo {
	case AlgoHeap:
		return func(seq ds.Sequence[int], cmp ds.Comparator[int]) iter.Seq[int] {
			return dsheap.New(seq, cmp).Drain()
		}, nil
	case AlgoBubble:
		return func(seq ds.Sequence[int], cmp ds.Comparator[int]) iter.Seq[int] {
			seq.Sort(cmp)
			return seq.Values()
		}, nil
	default:
		return nil, ErrUnknownAlgo.F("%q", cmd.Algo)
	}
}

func (cmd Command) newSequence() (ds.Sequence[int], error) {
	switch cmd.Backend {
	case BackendArray:
		return dslist.NewArrayList[int](), nil
	case BackendLinked:
		return dslist.NewLinkedList[int](), nil
	default:
		return nil, ErrUnknownBackend.F("%q", cmd.Backend)
	}
}

// fail reports the error on the error output and sets the exit code.
func fail(w cli.ResponseWriter, err error) {
	w.ExitCode(cli.ExitCodeError)
	var out io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		out = ew.Stderr()
	}
	fmt.Fprintln(out, err.Error())
}

func read(r *cli.Request, seq ds.Sequence[int]) (int, error) {
	if r.Body == nil {
		return 0, nil
	}
	scanner := bufio.NewScanner(r.Body)
	scanner.Split(bufio.ScanWords)
	var n int
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return n, ErrInvalidInput.Wrap(err)
		}
		seq.Add(v)
		n++
	}
	return n, scanner.Err()
}
