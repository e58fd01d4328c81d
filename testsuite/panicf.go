// panicf.go -- panic or die with fmt

package main

import (
	"fmt"
	"os"
)

func panicf(s string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], s)
	m := fmt.Sprintf(z, v...)
	if n := len(m); m[n-1] != '\n' {
		m += "\n"
	}
	panic(m)
}

// Die prints an error message to stderr and exits
func Die(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", Z, f)
	m := fmt.Sprintf(z, v...)
	if n := len(m); m[n-1] != '\n' {
		m += "\n"
	}
	os.Stderr.WriteString(m)
	os.Stderr.Sync()
	os.Exit(1)
}
