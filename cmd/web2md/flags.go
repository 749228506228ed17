package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// browserFlags holds browser-related flags for the fetch command.
type browserFlags struct {
	headed       bool
	userDataDir  string
	waitSelector string
}

// filterFlags holds markdown element filter flags for the fetch command.
type filterFlags struct {
	ignoreLinks    bool
	ignoreImages   bool
	ignoreEmphasis bool
}

// fetchFlags holds all flags for the fetch command.
type fetchFlags struct {
	common   commonFlags
	output   string
	filename string
	workers  int
	timeout  string
	preview  bool
	browser  browserFlags
	filters  filterFlags
}

// repairFlags holds all flags for the repair command.
type repairFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addBrowserFlags adds browser flags to a FlagSet.
func addBrowserFlags(fs *flag.FlagSet, f *browserFlags) {
	fs.BoolVar(&f.headed, "headed", false, "run the browser with a visible window")
	fs.StringVar(&f.userDataDir, "user-data-dir", "", "persistent Chrome profile directory")
	fs.StringVar(&f.waitSelector, "wait-selector", "", "CSS selector to wait for after page load")
}

// addFilterFlags adds markdown element filter flags to a FlagSet.
func addFilterFlags(fs *flag.FlagSet, f *filterFlags) {
	fs.BoolVar(&f.ignoreLinks, "no-links", false, "strip links, keeping anchor text")
	fs.BoolVar(&f.ignoreImages, "no-images", false, "remove image references")
	fs.BoolVar(&f.ignoreEmphasis, "no-emphasis", false, "strip bold and italic markers")
}

// parseFetchFlags parses fetch command flags and returns positional args.
func parseFetchFlags(args []string) (*fetchFlags, []string, error) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	f := &fetchFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.filename, "filename", "f", "", "output name (\"\" = derive from URL)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "fetch timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.preview, "preview", false, "also write an HTML preview")

	addCommonFlags(fs, &f.common)
	addBrowserFlags(fs, &f.browser)
	addFilterFlags(fs, &f.filters)

	fs.Usage = func() { printFetchUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseRepairFlags parses repair command flags and returns positional args.
func parseRepairFlags(args []string) (*repairFlags, []string, error) {
	fs := flag.NewFlagSet("repair", flag.ContinueOnError)
	f := &repairFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (\"\" = rewrite in place)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file timeout (e.g., 30s)")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printRepairUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
