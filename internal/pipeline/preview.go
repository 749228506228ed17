package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrPreviewRender indicates preview rendering failed.
var ErrPreviewRender = errors.New("preview rendering failed")

// previewTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Salvaged Page</title>
</head>
<body>
%s
</body>
</html>`

// PreviewRenderer abstracts markdown-to-HTML preview rendering.
type PreviewRenderer interface {
	RenderPreview(ctx context.Context, content string) (string, error)
}

// GoldmarkPreviewRenderer renders salvaged markdown to HTML using
// goldmark, with syntax-highlighted fences so reconstructed code blocks
// and their guessed languages can be inspected visually.
type GoldmarkPreviewRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkPreviewRenderer creates a GoldmarkPreviewRenderer with GFM
// extensions and chroma-based syntax highlighting.
func NewGoldmarkPreviewRenderer() *GoldmarkPreviewRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				// Inline styles: the preview is standalone, no stylesheet
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
		),
	)
	return &GoldmarkPreviewRenderer{md: md}
}

// RenderPreview converts markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *GoldmarkPreviewRenderer) RenderPreview(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
