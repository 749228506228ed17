package main

import (
	"context"
	"fmt"

	web2md "github.com/alnah/go-web2md"
)

// runCLI dispatches to the requested command and returns the exit code.
func runCLI(ctx context.Context, args []string, env *Environment) int {
	newPool := func(n int, opts ...web2md.Option) Pool {
		return NewServicePool(n, opts...)
	}
	return runCLIWithPool(ctx, args, newPool, env)
}

// runCLIWithPool is runCLI with an injectable pool factory for tests.
func runCLIWithPool(ctx context.Context, args []string, newPool poolFactory, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "fetch":
		flags, positional, err := parseFetchFlags(args[1:])
		if err != nil {
			return ExitUsage
		}
		if err := runFetch(ctx, positional, flags, newPool, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "repair":
		flags, positional, err := parseRepairFlags(args[1:])
		if err != nil {
			return ExitUsage
		}
		if err := runRepair(ctx, positional, flags, newPool, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "web2md %s\n", Version)
		return ExitSuccess

	case "help", "--help", "-h":
		runHelp(args[1:], env)
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
