// cmd_copy.go -- implements the "copy" command

package main

import (
	"errors"
	"fmt"

	"github.com/opencoff/go-fcopy"
	flag "github.com/opencoff/pflag"
)

type copyCmd struct {
	*flag.FlagSet

	meta     bool
	nofollow bool
	fail     string
}

func (t *copyCmd) Name() string {
	return "copy"
}

func (t *copyCmd) New() Cmd {
	return newCopyCmd()
}

// copy [-m] [-P] [--fail=same|special|any] src dst
func (t *copyCmd) Run(env *TestEnv, args []string) error {
	err := t.Parse(args)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}

	args = t.Args()
	if len(args) != 2 {
		return fmt.Errorf("copy: exp 2 args, saw %d", len(args))
	}

	src, dst := args[0], args[1]

	var opts []fcopy.Option
	if t.meta {
		opts = append(opts, fcopy.WithMetadata())
	}
	if t.nofollow {
		opts = append(opts, fcopy.NoFollowSymlinks())
	}

	env.log.Debug("copy %s -> %s (meta %v, follow %v, fail %q)",
		src, dst, t.meta, !t.nofollow, t.fail)

	ret, err := fcopy.Copy(dst, src, opts...)
	if len(t.fail) == 0 {
		if err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		env.result = ret
		return nil
	}

	// this copy is expected to be refused
	if err == nil {
		return fmt.Errorf("copy: %s -> %s: exp %s error, saw none", src, dst, t.fail)
	}

	switch t.fail {
	case "same":
		var se *fcopy.SameFileError
		if !errors.As(err, &se) {
			return fmt.Errorf("copy: exp same-file error, saw %w", err)
		}
	case "special":
		var se *fcopy.SpecialFileError
		if !errors.As(err, &se) {
			return fmt.Errorf("copy: exp special-file error, saw %w", err)
		}
	case "any":
	default:
		return fmt.Errorf("copy: unknown failure kind %s", t.fail)
	}

	env.log.Debug("copy refused as expected: %s", err)
	return nil
}

var _ Cmd = &copyCmd{}

func newCopyCmd() *copyCmd {
	n := &copyCmd{
		FlagSet: flag.NewFlagSet("copy", flag.ExitOnError),
	}

	fs := n.FlagSet
	fs.BoolVarP(&n.meta, "meta", "m", false, "Copy metadata as well [False]")
	fs.BoolVarP(&n.nofollow, "no-follow", "P", false, "Don't follow symlinks [False]")
	fs.StringVarP(&n.fail, "fail", "", "", "Expect the copy to be refused (same, special, any)")

	return n
}

func init() {
	RegisterCommand(newCopyCmd())
}
