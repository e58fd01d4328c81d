// cmd_mutate.go -- implements the "mutate" command

package main

import (
	"fmt"
)

type mutateCmd struct {
}

func (t *mutateCmd) New() Cmd {
	return &mutateCmd{}
}

// mutate path [path...] -- scribble over and extend each file
func (t *mutateCmd) Run(env *TestEnv, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("mutate: no files?")
	}

	for _, fn := range args {
		if exists, err := FileExists(fn); err != nil {
			return err
		} else if !exists {
			return fmt.Errorf("mutate: %s: doesn't exist", fn)
		}

		env.log.Debug("mutate %s", fn)
		if err := mutate(fn); err != nil {
			return fmt.Errorf("mutate: %s: %w", fn, err)
		}
	}
	return nil
}

func (t *mutateCmd) Name() string {
	return "mutate"
}

var _ Cmd = &mutateCmd{}

func init() {
	RegisterCommand(&mutateCmd{})
}
