// run.go -- run a single parsed test file

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/opencoff/go-logger"
	"github.com/puzpuzpuz/xsync/v3"
)

// TestEnv captures the runtime environment of the current test
type TestEnv struct {
	Src string
	Dst string

	TestRoot string
	TestName string

	// resolved destination returned by the most recent copy
	result string

	// path -> sha256 recorded when the file was created
	cksums *xsync.MapOf[string, []byte]

	// false once setx hits a filesystem without xattr support
	xattrOK bool

	log logger.Logger
}

func RunTest(tname string, cfg *config, ts []TestStep) (err error) {
	if len(ts) < 2 {
		return fmt.Errorf("too few commands in test file")
	}

	// setup test env
	env, err := makeEnv(tname, cfg)
	if err != nil {
		return err
	}

	defer func(e *error) {
		if *e != nil {
			env.log.Info("test complete: error:\n%s", *e)
		} else {
			env.log.Info("test complete; no errors")
		}
		env.log.Close()
	}(&err)

	// substitute environment vars in each arg
	lookup := map[string]string{
		"SRC":   env.Src,
		"DST":   env.Dst,
		"ROOT":  env.TestRoot,
		"TNAME": env.TestName,
	}

	env.log.Info("testroot %s; starting test %s ..", env.TestRoot, env.TestName)
	for _, t := range ts {
		cmd := t.Cmd

		args := make([]string, 0, len(t.Args))
		for _, s := range t.Args[1:] {
			d := os.Expand(s, func(key string) string {
				v, ok := lookup[key]
				if !ok {
					Die("%s: can't expand env %s", cmd.Name(), key)
				}
				return v
			})
			args = append(args, d)
		}

		if err = cmd.Run(env, args); err != nil {
			return fmt.Errorf("%s: %s: %w", tname, cmd.Name(), err)
		}
	}

	// cleanup as we go - so we don't accumulate cruft
	if err = os.RemoveAll(env.TestRoot); err != nil {
		Die("%s: cleanup %s: %s", env.TestName, env.TestRoot, err)
	}

	return nil
}

// make the test environment that's common to each individual test.
func makeEnv(tname string, cfg *config) (*TestEnv, error) {
	tmpdir := path.Join(cfg.tempdir, tname)
	src := path.Join(tmpdir, "src")
	dst := path.Join(tmpdir, "dst")
	logfile := path.Join(tmpdir, "fcopy.log")
	if cfg.logStdout {
		logfile = "STDOUT"
	}

	if err := os.MkdirAll(src, 0700); err != nil {
		return nil, fmt.Errorf("%s: src: %w", tname, err)
	}

	if err := os.MkdirAll(dst, 0700); err != nil {
		return nil, fmt.Errorf("%s: dst: %w", tname, err)
	}

	log, err := logger.NewLogger(logfile, logger.LOG_DEBUG, tname, logger.Ldate|logger.Ltime|logger.Lmicroseconds|logger.Lfileloc)
	if err != nil {
		return nil, fmt.Errorf("%s: logfile: %w", tname, err)
	}

	e := &TestEnv{
		Src:      src,
		Dst:      dst,
		TestRoot: tmpdir,
		TestName: tname,
		cksums:   xsync.NewMapOf[string, []byte](),
		xattrOK:  true,
		log:      log,
	}

	return e, nil
}

func (t *TestEnv) String() string {
	s := fmt.Sprintf("TestEnv: name %s: Root: %s\n\tSrc %s, Dst %s\n",
		t.TestName, t.TestRoot, t.Src, t.Dst)
	return s
}
