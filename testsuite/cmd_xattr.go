// cmd_xattr.go -- implements the "setx" command

package main

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/opencoff/go-fcopy"
	flag "github.com/opencoff/pflag"
)

type setxCmd struct {
	*flag.FlagSet

	link bool
}

func (t *setxCmd) Name() string {
	return "setx"
}

func (t *setxCmd) New() Cmd {
	return newSetxCmd()
}

// setx [-l] name=value path [path...]
func (t *setxCmd) Run(env *TestEnv, args []string) error {
	err := t.Parse(args)
	if err != nil {
		return fmt.Errorf("setx: %w", err)
	}

	args = t.Args()
	if len(args) < 2 {
		return fmt.Errorf("setx: exp name=value and a path")
	}

	name, val, ok := strings.Cut(args[0], "=")
	if !ok {
		return fmt.Errorf("setx: %s: missing separator '='", args[0])
	}

	x := fcopy.Xattr{name: val}
	set := fcopy.SetXattr
	if t.link {
		set = fcopy.LsetXattr
	}

	for _, fn := range args[1:] {
		env.log.Debug("setx %s: %s=%s", fn, name, val)
		if err := set(fn, x); err != nil {
			if errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.EOPNOTSUPP) {
				env.log.Info("%s: no xattr support; xattr checks will be skipped", fn)
				env.xattrOK = false
				return nil
			}
			return fmt.Errorf("setx: %s: %w", fn, err)
		}
	}
	return nil
}

var _ Cmd = &setxCmd{}

func newSetxCmd() *setxCmd {
	n := &setxCmd{
		FlagSet: flag.NewFlagSet("setx", flag.ExitOnError),
	}

	fs := n.FlagSet
	fs.BoolVarP(&n.link, "link", "l", false, "Set the attribute on the symlink itself [False]")

	return n
}

func init() {
	RegisterCommand(newSetxCmd())
}
