// cmd_mkfifo.go -- implements the "mkfifo" command

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type mkfifoCmd struct {
}

func (t *mkfifoCmd) New() Cmd {
	return &mkfifoCmd{}
}

// mkfifo path [path...]
func (t *mkfifoCmd) Run(env *TestEnv, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("mkfifo: no paths?")
	}

	for _, fn := range args {
		env.log.Debug("mkfifo %s", fn)
		if err := unix.Mkfifo(fn, 0600); err != nil {
			return fmt.Errorf("mkfifo: %s: %w", fn, err)
		}
	}
	return nil
}

func (t *mkfifoCmd) Name() string {
	return "mkfifo"
}

var _ Cmd = &mkfifoCmd{}

func init() {
	RegisterCommand(&mkfifoCmd{})
}
