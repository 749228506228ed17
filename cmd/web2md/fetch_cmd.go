package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	web2md "github.com/alnah/go-web2md"
	"github.com/alnah/go-web2md/internal/config"
	"github.com/alnah/go-web2md/internal/fileutil"
	"github.com/alnah/go-web2md/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoTarget           = errors.New("no target URL specified")
	ErrNotAURL            = errors.New("argument is not an http(s) URL")
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permissions: owner read+write, others read.
const filePermissions = 0o644

// documentHeader opens every salvaged document with its provenance.
func documentHeader(url string) string {
	return "# Web Page Conversion\n\nSource: " + url + "\n\n"
}

// SalvageJob represents a single URL or file to process.
type SalvageJob struct {
	Input string // URL for fetch, file path for repair
	Name  string // fetch: output name stem, "" to derive; repair: destination path, "" for in place
}

// SalvageResult holds the outcome of a single salvage operation.
type SalvageResult struct {
	Input      string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runFetch orchestrates the fetch command: resolve config, build the
// service pool, fetch each URL, and write versioned markdown files.
func runFetch(ctx context.Context, positionalArgs []string, flags *fetchFlags, newPool poolFactory, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := resolveConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFetchFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobs, err := resolveFetchJobs(positionalArgs, cfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(cfg)
	if err != nil {
		return err
	}

	opts := []web2md.Option{
		web2md.WithTimeout(timeout),
		web2md.WithFetchSettings(web2md.FetchSettings{
			Headless:     cfg.Fetch.Headless,
			UserDataDir:  cfg.Fetch.UserDataDir,
			WaitSelector: cfg.Fetch.WaitSelector,
		}),
		web2md.WithConvertSettings(web2md.ConvertSettings{
			IgnoreLinks:    cfg.Convert.IgnoreLinks,
			IgnoreImages:   cfg.Convert.IgnoreImages,
			IgnoreEmphasis: cfg.Convert.IgnoreEmphasis,
		}),
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	pool := newPool(resolvePoolSize(workers), opts...)
	defer pool.Close()

	if err := fileutil.EnsureDir(cfg.Output.Dir); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	results := salvageBatch(ctx, pool, jobs, func(ctx context.Context, svc Salvager, job SalvageJob) (string, error) {
		return fetchOne(ctx, svc, job, cfg, env)
	})

	failed := printResults(results, &flags.common, env)
	if failed > 0 {
		return fmt.Errorf("%d fetch(es) failed", failed)
	}
	return nil
}

// resolveConfig loads the config file named by flag or environment,
// falling back to defaults when neither is set.
func resolveConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeFetchFlags merges CLI flags into config. CLI values override
// config and environment values.
func mergeFetchFlags(flags *fetchFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.filename != "" {
		cfg.Target.Filename = flags.filename
	}
	if flags.timeout != "" {
		cfg.Fetch.Timeout = flags.timeout
	}
	if flags.browser.headed {
		cfg.Fetch.Headless = false
	}
	if flags.browser.userDataDir != "" {
		cfg.Fetch.UserDataDir = flags.browser.userDataDir
	}
	if flags.browser.waitSelector != "" {
		cfg.Fetch.WaitSelector = flags.browser.waitSelector
	}
	if flags.filters.ignoreLinks {
		cfg.Convert.IgnoreLinks = true
	}
	if flags.filters.ignoreImages {
		cfg.Convert.IgnoreImages = true
	}
	if flags.filters.ignoreEmphasis {
		cfg.Convert.IgnoreEmphasis = true
	}
	if flags.preview {
		cfg.Preview.Enabled = true
	}
}

// resolveFetchJobs builds the job list from positional URLs or the
// configured target. The explicit filename applies only to a single URL;
// batches always derive names to avoid collisions.
func resolveFetchJobs(args []string, cfg *config.Config) ([]SalvageJob, error) {
	urls := args
	if len(urls) == 0 && cfg.Target.URL != "" {
		urls = []string{cfg.Target.URL}
	}
	if len(urls) == 0 {
		return nil, ErrNoTarget
	}

	for _, u := range urls {
		if !fileutil.IsURL(u) {
			return nil, fmt.Errorf("%w: %q", ErrNotAURL, u)
		}
	}

	jobs := make([]SalvageJob, len(urls))
	for i, u := range urls {
		jobs[i] = SalvageJob{Input: u}
	}
	if len(jobs) == 1 {
		jobs[0].Name = cfg.Target.Filename
	}
	return jobs, nil
}

// resolveTimeout parses the configured fetch timeout, defaulting to 60s.
func resolveTimeout(cfg *config.Config) (time.Duration, error) {
	if cfg.Fetch.Timeout == "" {
		return 60 * time.Second, nil
	}
	d, err := time.ParseDuration(cfg.Fetch.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, cfg.Fetch.Timeout)
	}
	return d, nil
}

// validateWorkers rejects negative worker counts.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, n)
	}
	return nil
}

// fetchOne salvages a single URL and writes the result under the output
// directory with a dated, versioned filename.
func fetchOne(ctx context.Context, svc Salvager, job SalvageJob, cfg *config.Config, env *Environment) (string, error) {
	res, err := svc.Salvage(ctx, web2md.Input{URL: job.Input, Preview: cfg.Preview.Enabled})
	if err != nil {
		return "", err
	}

	name := job.Name
	if name == "" {
		name = fileutil.SafeFilename(job.Input)
	}

	base := filepath.Join(cfg.Output.Dir, fileutil.DatedName(env.Now(), name, ".md"))
	outputPath, err := fileutil.VersionedPath(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	document := documentHeader(job.Input) + string(res.Markdown)
	if err := os.WriteFile(outputPath, []byte(document), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if res.PreviewHTML != nil {
		previewPath := strings.TrimSuffix(outputPath, ".md") + ".html"
		if err := os.WriteFile(previewPath, res.PreviewHTML, filePermissions); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	return outputPath, nil
}

// salvageBatch processes jobs concurrently using the service pool.
func salvageBatch(ctx context.Context, pool Pool, jobs []SalvageJob, process func(context.Context, Salvager, SalvageJob) (string, error)) []SalvageResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]SalvageResult, len(jobs))
	work := make(chan int, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range work {
				start := time.Now()
				outputPath, err := process(ctx, svc, jobs[idx])
				results[idx] = SalvageResult{
					Input:      jobs[idx].Input,
					OutputPath: outputPath,
					Err:        err,
					Duration:   time.Since(start),
				}
			}
		}()
	}

	for i := range jobs {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

// printResults reports each outcome and returns the failure count.
// Quiet shows only errors; verbose adds per-item timing.
func printResults(results []SalvageResult, flags *commonFlags, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "error: %s: %v\n", r.Input, r.Err)
			continue
		}
		if flags.quiet {
			continue
		}
		if flags.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s)\n", r.Input, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s -> %s\n", r.Input, r.OutputPath)
		}
	}
	return failed
}
