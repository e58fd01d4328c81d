// cmd_symlink.go -- implements the "symlink" command

package main

import (
	"fmt"
	"os"
)

type symlinkCmd struct {
}

func (t *symlinkCmd) New() Cmd {
	return &symlinkCmd{}
}

// symlink NEWNAME@TARGET [NEWNAME@TARGET...]
func (t *symlinkCmd) Run(env *TestEnv, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("symlink: no links?")
	}

	for _, arg := range args {
		newnm, targ, err := splitPair(arg)
		if err != nil {
			return fmt.Errorf("symlink: %w", err)
		}

		// the target may be dangling on purpose; don't check it
		env.log.Debug("symlink %s --> %s", newnm, targ)
		if err = os.Symlink(targ, newnm); err != nil {
			return fmt.Errorf("symlink: %w", err)
		}
	}
	return nil
}

func (t *symlinkCmd) Name() string {
	return "symlink"
}

var _ Cmd = &symlinkCmd{}

func init() {
	RegisterCommand(&symlinkCmd{})
}
