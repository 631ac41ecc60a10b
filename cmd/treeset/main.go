// Command treeset applies a sequence of operations to an ordered set of
// integers and prints the result.
//
//	treeset [--desc] [--trace] [--stats] add:5 add:3 remove:5 contains:3
package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/metailurini/treeset"
)

type args struct {
	Desc  bool     `help:"order elements from largest to smallest"`
	Trace bool     `help:"log set internals to stderr"`
	Stats bool     `help:"dump operation counters after the run"`
	Ops   []string `arg:"positional" help:"operations: add:N, remove:N, contains:N"`
}

func (args) Description() string {
	return "treeset applies operations to an ordered set of integers and prints it"
}

func main() {
	var a args
	arg.MustParse(&a)
	if a.Trace {
		logger := btclog.NewBackend(os.Stderr).Logger("TSET")
		logger.SetLevel(btclog.LevelTrace)
		treeset.UseLogger(logger)
	}
	if err := mainErr(a, os.Stdout); err != nil {
		stdlog.Fatalf("fatal error: %v", err)
	}
}

type op struct {
	name  string
	value int
}

func parseOp(s string) (op, error) {
	name, raw, ok := strings.Cut(s, ":")
	if !ok {
		return op{}, errors.Errorf("operation %q: expected NAME:VALUE", s)
	}
	switch name {
	case "add", "remove", "contains":
	default:
		return op{}, errors.Errorf("operation %q: unknown name %q", s, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return op{}, errors.Wrapf(err, "operation %q", s)
	}
	return op{name: name, value: v}, nil
}

func newSet(desc bool) (*treeset.Set[int], error) {
	if !desc {
		return treeset.New[int](treeset.WithName("cli")), nil
	}
	return treeset.NewFunc(func(a, b int) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}, treeset.WithName("cli"))
}

func mainErr(a args, w io.Writer) error {
	ops := make([]op, 0, len(a.Ops))
	for _, s := range a.Ops {
		o, err := parseOp(s)
		if err != nil {
			return err
		}
		ops = append(ops, o)
	}

	s, err := newSet(a.Desc)
	if err != nil {
		return errors.Wrap(err, "creating set")
	}

	for _, o := range ops {
		switch o.name {
		case "add":
			_, err = s.Add(o.value)
		case "remove":
			_, err = s.Remove(o.value)
		case "contains":
			var found bool
			found, err = s.Contains(o.value)
			if err == nil {
				fmt.Fprintf(w, "%d %t\n", o.value, found)
			}
		}
		if err != nil {
			return errors.Wrapf(err, "%s %d", o.name, o.value)
		}
	}

	fmt.Fprintln(w, s)
	if a.Stats {
		spew.Fdump(w, s.Stats())
	}
	return nil
}
