// cmd_expect.go -- implements the "expect" command

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/opencoff/go-fcopy"
	"github.com/opencoff/go-utils"
)

type expectCmd struct {
}

func (t *expectCmd) New() Cmd {
	return &expectCmd{}
}

func (t *expectCmd) Name() string {
	return "expect"
}

// Each arg is one key="val val..." assertion about the state of
// the tree after the preceding commands.
func (t *expectCmd) Run(env *TestEnv, args []string) error {
	for i := range args {
		arg := args[i]

		key, vals, err := Split(arg)
		if err != nil {
			return err
		}

		switch key {
		case "file":
			err = expectEntry(vals, FileExists)
		case "dir":
			err = expectEntry(vals, DirExists)
		case "link":
			err = expectEntry(vals, LinkExists)
		case "fifo":
			err = expectEntry(vals, FifoExists)
		case "absent":
			err = expectAbsent(vals)
		case "same":
			err = expectSame(vals)
		case "orig":
			err = expectOrig(env, vals)
		case "target":
			err = expectTarget(vals)
		case "mode":
			err = expectMode(vals)
		case "size":
			err = expectSize(vals)
		case "mtime":
			err = expectMtime(vals, fcopy.Stat)
		case "lmtime":
			err = expectMtime(vals, fcopy.Lstat)
		case "xattr":
			err = expectXattr(env, vals)
		case "result":
			err = expectResult(env, vals)
		default:
			return fmt.Errorf("expect: unknown keyword %s", key)
		}

		if err != nil {
			return fmt.Errorf("expect: %w", err)
		}
	}
	return nil
}

// every named entry must exist and be of the checked type
func expectEntry(vals []string, chk func(string) (bool, error)) error {
	for _, nm := range vals {
		ok, err := chk(nm)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: doesn't exist", nm)
		}
	}
	return nil
}

func expectAbsent(vals []string) error {
	for _, nm := range vals {
		_, err := os.Lstat(nm)
		if err == nil {
			return fmt.Errorf("%s: exists", nm)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// the two named files have identical contents right now
func expectSame(vals []string) error {
	if len(vals) != 2 {
		return fmt.Errorf("same: exp 2 files, saw %d", len(vals))
	}

	a, err := cksumFile(vals[0])
	if err != nil {
		return err
	}
	b, err := cksumFile(vals[1])
	if err != nil {
		return err
	}

	if !bytes.Equal(a, b) {
		return fmt.Errorf("same: %s and %s differ", vals[0], vals[1])
	}
	return nil
}

// each named file still has the contents it was created with
func expectOrig(env *TestEnv, vals []string) error {
	for _, nm := range vals {
		want, ok := env.cksums.Load(nm)
		if !ok {
			return fmt.Errorf("orig: %s: no recorded cksum", nm)
		}

		have, err := cksumFile(nm)
		if err != nil {
			return err
		}

		if !bytes.Equal(want, have) {
			return fmt.Errorf("orig: %s: contents changed", nm)
		}
	}
	return nil
}

// LINK@TARGET: the link must point at exactly TARGET
func expectTarget(vals []string) error {
	for _, v := range vals {
		ln, targ, err := splitPair(v)
		if err != nil {
			return err
		}

		rd, err := os.Readlink(ln)
		if err != nil {
			return err
		}
		if rd != targ {
			return fmt.Errorf("target: %s: exp %s, saw %s", ln, targ, rd)
		}
	}
	return nil
}

// PATH@MODE: permission and set[ug]id/sticky bits must match
func expectMode(vals []string) error {
	const mbits = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

	for _, v := range vals {
		nm, ms, err := splitPair(v)
		if err != nil {
			return err
		}

		want, err := parseMode(ms)
		if err != nil {
			return err
		}

		st, err := os.Stat(nm)
		if err != nil {
			return err
		}

		if have := st.Mode() & mbits; have != want {
			return fmt.Errorf("mode: %s: exp %s, saw %s", nm, want, have)
		}
	}
	return nil
}

// PATH@SIZE: sizes use the same suffixes as mkfile (1k, 4M ..)
func expectSize(vals []string) error {
	for _, v := range vals {
		nm, szs, err := splitPair(v)
		if err != nil {
			return err
		}

		want, err := utils.ParseSize(szs)
		if err != nil {
			return err
		}

		st, err := os.Stat(nm)
		if err != nil {
			return err
		}

		if st.Size() != int64(want) {
			return fmt.Errorf("size: %s: exp %d, saw %d", nm, want, st.Size())
		}
	}
	return nil
}

// the two named entries have identical mtimes
func expectMtime(vals []string, statf func(string) (*fcopy.Info, error)) error {
	if len(vals) != 2 {
		return fmt.Errorf("mtime: exp 2 entries, saw %d", len(vals))
	}

	a, err := statf(vals[0])
	if err != nil {
		return err
	}
	b, err := statf(vals[1])
	if err != nil {
		return err
	}

	if !a.Mtim.Equal(b.Mtim) {
		return fmt.Errorf("mtime: %s %s vs %s %s", vals[0], a.Mtim, vals[1], b.Mtim)
	}
	return nil
}

// PATH@NAME=VALUE: the attribute must be present with that value
func expectXattr(env *TestEnv, vals []string) error {
	if !env.xattrOK {
		env.log.Info("xattr: no fs support; skipping checks")
		return nil
	}

	for _, v := range vals {
		nm, kv, err := splitPair(v)
		if err != nil {
			return err
		}

		name, want, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("xattr: %s: missing separator '='", kv)
		}

		x, err := fcopy.GetXattr(nm)
		if err != nil {
			return err
		}

		if have := x[name]; have != want {
			return fmt.Errorf("xattr: %s: %s: exp %q, saw %q", nm, name, want, have)
		}
	}
	return nil
}

// the resolved destination of the most recent copy
func expectResult(env *TestEnv, vals []string) error {
	if len(vals) != 1 {
		return fmt.Errorf("result: exp 1 path, saw %d", len(vals))
	}

	if env.result != vals[0] {
		return fmt.Errorf("result: exp %s, saw %s", vals[0], env.result)
	}
	return nil
}

var _ Cmd = &expectCmd{}

func init() {
	RegisterCommand(&expectCmd{})
}
