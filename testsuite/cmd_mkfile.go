// cmd_mkfile.go -- implements the "mkfile" command

package main

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"

	flag "github.com/opencoff/pflag"
)

type mkfileCmd struct {
	*flag.FlagSet

	mkdir bool
	size  SizeValue
	mode  string
}

const (
	minSize SizeValue = 1024
	maxSize SizeValue = 8 * 1024
)

func (t *mkfileCmd) Name() string {
	return "mkfile"
}

func (t *mkfileCmd) New() Cmd {
	return newMkfileCmd()
}

// mkfile [-d] [-m mode] [-s size] path...
func (t *mkfileCmd) Run(env *TestEnv, args []string) error {
	err := t.Parse(args)
	if err != nil {
		return fmt.Errorf("mkfile: %w", err)
	}

	var mode fs.FileMode
	if t.Changed("mode") {
		if mode, err = parseMode(t.mode); err != nil {
			return fmt.Errorf("mkfile: %w", err)
		}
	}

	args = t.Args()
	if len(args) == 0 {
		return fmt.Errorf("mkfile: no paths?")
	}

	for _, fn := range args {
		if t.mkdir {
			env.log.Debug("mkdir %s", fn)
			if err = mkdir(fn); err == nil && mode != 0 {
				err = os.Chmod(fn, mode)
			}
			if err != nil {
				return fmt.Errorf("mkfile: %s: %w", fn, err)
			}
			continue
		}

		// an explicit --size may be zero; otherwise pick a
		// random size
		sz := int64(t.size)
		if !t.Changed("size") {
			sz = int64(rand.N(maxSize-minSize) + minSize)
		}

		env.log.Debug("mkfile %s %d", fn, sz)
		sum, err := mkfile(fn, sz, mode)
		if err != nil {
			return fmt.Errorf("mkfile: %s: %w", fn, err)
		}
		env.cksums.Store(fn, sum)
	}
	return nil
}

var _ Cmd = &mkfileCmd{}

func newMkfileCmd() *mkfileCmd {
	n := &mkfileCmd{
		FlagSet: flag.NewFlagSet("mkfile", flag.ExitOnError),
	}

	fs := n.FlagSet
	fs.VarP(&n.size, "size", "s", "Make files of exactly `N` bytes [random 1k..8k]")
	fs.StringVarP(&n.mode, "mode", "m", "", "Set entries to octal mode `M` after creation")
	fs.BoolVarP(&n.mkdir, "dir", "d", false, "Make directories instead of files")

	return n
}

func init() {
	RegisterCommand(newMkfileCmd())
}
