package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2md <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fetch      Fetch web pages and save them as salvaged markdown")
	fmt.Fprintln(w, "  repair     Re-run the code block repair passes on markdown files")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'web2md help <command>' for details on a specific command.")
}

// printFetchUsage prints usage for the fetch command.
func printFetchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2md fetch [flags] <url>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch web pages with headless Chrome and save them as markdown")
	fmt.Fprintln(w, "with code blocks reconstructed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  url    Pages to fetch (optional if config has target.url)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: markdown_output)")
	fmt.Fprintln(w, "  -f, --filename <name>     Output name, single URL only (\"\" = derive from URL)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Fetch timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --preview             Also write an HTML preview")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "      --headed              Visible browser window (for manual sign-in)")
	fmt.Fprintln(w, "      --user-data-dir <dir> Persistent Chrome profile directory")
	fmt.Fprintln(w, "      --wait-selector <s>   CSS selector to wait for after page load")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --no-links            Strip links, keeping anchor text")
	fmt.Fprintln(w, "      --no-images           Remove image references")
	fmt.Fprintln(w, "      --no-emphasis         Strip bold and italic markers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printRepairUsage prints usage for the repair command.
func printRepairUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: web2md repair [flags] <path>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Re-run the code block reconstruction and cleanup passes on existing")
	fmt.Fprintln(w, "markdown files. No browser is started.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path   Markdown files or directories (walked recursively)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (\"\" = rewrite in place)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Per-file timeout (e.g., 30s)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "fetch":
		printFetchUsage(env.Stdout)
	case "repair":
		printRepairUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: web2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: web2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
