package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	web2md "github.com/alnah/go-web2md"
	"github.com/alnah/go-web2md/internal/fileutil"
)

// runRepair orchestrates the repair command: the fence-reconstruction
// and cleanup passes over existing markdown files, without any browser
// or HTML conversion.
func runRepair(ctx context.Context, positionalArgs []string, flags *repairFlags, newPool poolFactory, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positionalArgs) == 0 {
		return ErrNoInput
	}

	files, err := discoverMarkdownFiles(positionalArgs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found", ErrNoInput)
	}

	timeout := 60 * time.Second
	if flags.timeout != "" {
		d, parseErr := time.ParseDuration(flags.timeout)
		if parseErr != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		timeout = d
	}

	if flags.output != "" {
		if err := fileutil.EnsureDir(flags.output); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	pool := newPool(resolvePoolSize(flags.workers), web2md.WithTimeout(timeout))
	defer pool.Close()

	jobs := make([]SalvageJob, len(files))
	used := make(map[string]bool, len(files))
	for i, f := range files {
		jobs[i] = SalvageJob{Input: f}
		if flags.output != "" {
			jobs[i].Name = filepath.Join(flags.output, uniqueBaseName(used, filepath.Base(f)))
		}
	}

	results := salvageBatch(ctx, pool, jobs, repairOne)

	failed := printResults(results, &flags.common, env)
	if failed > 0 {
		return fmt.Errorf("%d repair(s) failed", failed)
	}
	return nil
}

// discoverMarkdownFiles expands the arguments into markdown file paths.
// Files must carry a markdown extension; directories are walked
// recursively.
func discoverMarkdownFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}

		if !info.IsDir() {
			if !isMarkdownFile(arg) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, arg)
			}
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isMarkdownFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
	}

	return files, nil
}

// isMarkdownFile checks for a markdown extension.
func isMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// uniqueBaseName reserves a base name not yet taken in this run.
// Discovered files from different directories can share a base name;
// collisions get a _vN suffix instead of silently overwriting.
func uniqueBaseName(used map[string]bool, base string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	candidate := base
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s_v%d%s", stem, n, ext)
	}
	used[candidate] = true
	return candidate
}

// repairOne runs the repair passes over one file. The result is written
// to the job's destination when set, otherwise back in place. Files that
// come out unchanged are left untouched.
func repairOne(ctx context.Context, svc Salvager, job SalvageJob) (string, error) {
	content, err := os.ReadFile(job.Input) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	inPlace := job.Name == ""
	outputPath := job.Name
	if inPlace {
		outputPath = job.Input
	}

	// Nothing to repair in an empty file
	if len(content) == 0 {
		return outputPath, nil
	}

	res, err := svc.Salvage(ctx, web2md.Input{Markdown: string(content)})
	if err != nil {
		return "", err
	}

	if inPlace && string(res.Markdown) == string(content) {
		return outputPath, nil
	}

	if err := os.WriteFile(outputPath, res.Markdown, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return outputPath, nil
}
