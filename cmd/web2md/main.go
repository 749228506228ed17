package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for containers. Error ignored: maxprocs.Set
	// only fails if GOMAXPROCS env is invalid, in which case Go runtime
	// defaults apply and the program continues safely.
	if isVerbose(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext()
	defer stop()

	env := DefaultEnv()
	os.Exit(runCLI(ctx, os.Args[1:], env))
}

// isVerbose scans raw args for the verbose flag before proper parsing,
// so maxprocs logging can be decided up front.
func isVerbose(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
