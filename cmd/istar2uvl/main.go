package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/uvl-tools/istar2uvl/internal/cli"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(istar2uvl.ExitPanic)
		}
	}()

	if os.Getenv("ISTAR2UVL_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(istar2uvl.ExitCodeForError(err))
	}
}
