package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	web2md "github.com/alnah/go-web2md"
	"github.com/alnah/go-web2md/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"browser connect", web2md.ErrBrowserConnect, ExitBrowser},
		{"page load", web2md.ErrPageLoad, ExitBrowser},
		{"auth wait", web2md.ErrAuthWait, ExitBrowser},
		{"wrapped browser error", fmt.Errorf("fetch: %w", web2md.ErrPageCreate), ExitBrowser},
		{"file not found", os.ErrNotExist, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"unsupported value", config.ErrUnsupportedValue, ExitUsage},
		{"no target", ErrNoTarget, ExitUsage},
		{"not a url", ErrNotAURL, ExitUsage},
		{"bad extension", ErrInvalidExtension, ExitUsage},
		{"bad workers", ErrInvalidWorkerCount, ExitUsage},
		{"bad timeout", ErrInvalidTimeout, ExitUsage},
		{"no source", web2md.ErrNoSource, ExitUsage},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
