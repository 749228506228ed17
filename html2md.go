package web2md

import (
	"context"
	"fmt"
	"regexp"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlConverter abstracts HTML to markdown conversion to allow different
// backends.
type htmlConverter interface {
	ToMarkdown(ctx context.Context, htmlContent string) (string, error)
}

// Markdown element patterns for the post-conversion filters. Images must
// be stripped before links or the image syntax degrades to a bare link.
var (
	mdImage    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdBold     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic   = regexp.MustCompile(`\*([^*]+)\*`)
	mdBoldAlt  = regexp.MustCompile(`__([^_]+)__`)
	mdEmphaAlt = regexp.MustCompile(`\b_([^_]+)_\b`)
)

// kaufmannConverter converts HTML to markdown using the html-to-markdown
// library, then applies the configured element filters on the output.
type kaufmannConverter struct {
	settings ConvertSettings
}

// newKaufmannConverter creates a kaufmannConverter with the given settings.
func newKaufmannConverter(settings ConvertSettings) *kaufmannConverter {
	return &kaufmannConverter{settings: settings}
}

// ToMarkdown converts HTML content to markdown. Supports context
// cancellation via goroutine + select pattern since the library doesn't
// natively support context.
func (c *kaufmannConverter) ToMarkdown(ctx context.Context, htmlContent string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		markdown string
		err      error
	}

	done := make(chan result, 1)

	go func() {
		markdown, err := htmltomarkdown.ConvertString(htmlContent)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownConvert, err)}
			return
		}
		done <- result{markdown: c.applyFilters(markdown)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.markdown, r.err
	}
}

// applyFilters strips the markdown elements the settings exclude.
func (c *kaufmannConverter) applyFilters(markdown string) string {
	if c.settings.IgnoreImages {
		markdown = mdImage.ReplaceAllString(markdown, "")
	}
	if c.settings.IgnoreLinks {
		markdown = mdLink.ReplaceAllString(markdown, "$1")
	}
	if c.settings.IgnoreEmphasis {
		markdown = mdBold.ReplaceAllString(markdown, "$1")
		markdown = mdBoldAlt.ReplaceAllString(markdown, "$1")
		markdown = mdItalic.ReplaceAllString(markdown, "$1")
		markdown = mdEmphaAlt.ReplaceAllString(markdown, "$1")
	}
	return markdown
}
