package main

import (
	"os"
)

func main() {
	exitCode := run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
