package pipeline

import (
	"context"
	"testing"
)

func TestPostProcessPreCodeSpans(t *testing.T) {
	t.Parallel()

	p := &MarkdownPostProcessor{}
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bash span gets tagged fence",
			content: "Run:\n<pre><code>ls -la</code></pre>",
			want:    "Run:\n```bash\nls -la\n```\n",
		},
		{
			name:    "multi-line span",
			content: "<pre><code>def f():\n    pass</code></pre>",
			want:    "```python\ndef f():\n    pass\n```\n",
		},
		{
			name:    "unknown language span",
			content: "<pre><code>just text</code></pre>",
			want:    "```\njust text\n```\n",
		},
		{
			name:    "unterminated pre tag left unchanged",
			content: "<pre><code>orphan without closing",
			want:    "<pre><code>orphan without closing",
		},
		{
			name:    "no spans is identity",
			content: "Nothing to do here.",
			want:    "Nothing to do here.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.PostProcess(ctx, tt.content); got != tt.want {
				t.Errorf("PostProcess(%q)\n got: %q\nwant: %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestPostProcessDuplicateNav(t *testing.T) {
	t.Parallel()

	p := &MarkdownPostProcessor{}
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "adjacent duplicate collapses",
			content: "On this page\nIntro\nOn this page\nIntro\nBody",
			want:    "On this page\nIntro\nBody",
		},
		{
			name:    "non-adjacent repeat untouched",
			content: "On this page\nIntro\nBody\nOn this page\nIntro",
			want:    "On this page\nIntro\nBody\nOn this page\nIntro",
		},
		{
			name:    "inexact repeat untouched",
			content: "On this page\nIntro\nOn this page\nOutro",
			want:    "On this page\nIntro\nOn this page\nOutro",
		},
		{
			name:    "marker absent is identity",
			content: "No navigation here.",
			want:    "No navigation here.",
		},
		{
			name:    "bare adjacent markers collapse",
			content: "On this pageOn this page rest",
			want:    "On this page rest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := p.PostProcess(ctx, tt.content); got != tt.want {
				t.Errorf("PostProcess(%q)\n got: %q\nwant: %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestPostProcessInlineCodeIdentity(t *testing.T) {
	t.Parallel()

	p := &MarkdownPostProcessor{}
	content := "Use `go build` then `go test` to verify."
	if got := p.PostProcess(context.Background(), content); got != content {
		t.Errorf("inline code normalization must be an identity transform\n got: %q\nwant: %q", got, content)
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	t.Parallel()

	p := &MarkdownPostProcessor{}
	ctx := context.Background()

	inputs := []string{
		"Run:\n<pre><code>npm install</code></pre>\nthen `npm start`.",
		"On this page\nIntro\nOn this page\nIntro\nBody",
	}

	for _, content := range inputs {
		once := p.PostProcess(ctx, content)
		twice := p.PostProcess(ctx, once)
		if once != twice {
			t.Errorf("not idempotent for %q\n once: %q\ntwice: %q", content, once, twice)
		}
	}
}

func TestPostProcessCancelledContext(t *testing.T) {
	t.Parallel()

	p := &MarkdownPostProcessor{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	content := "<pre><code>ls</code></pre>"
	if got := p.PostProcess(ctx, content); got != content {
		t.Errorf("cancelled context should return content unchanged, got %q", got)
	}
}
