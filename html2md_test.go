package web2md

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestToMarkdown(t *testing.T) {
	t.Parallel()

	conv := newKaufmannConverter(DefaultConvertSettings())

	got, err := conv.ToMarkdown(context.Background(), "<h1>Title</h1><p>Some <strong>bold</strong> text.</p>")
	if err != nil {
		t.Fatalf("ToMarkdown() error = %v", err)
	}
	if !strings.Contains(got, "# Title") {
		t.Errorf("expected ATX heading in output: %q", got)
	}
	if !strings.Contains(got, "**bold**") {
		t.Errorf("expected bold markers preserved by default: %q", got)
	}
}

func TestToMarkdownCancelledContext(t *testing.T) {
	t.Parallel()

	conv := newKaufmannConverter(DefaultConvertSettings())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := conv.ToMarkdown(ctx, "<p>hi</p>"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings ConvertSettings
		input    string
		want     string
	}{
		{
			name:     "defaults keep everything",
			settings: ConvertSettings{},
			input:    "See [docs](https://example.com) and ![logo](logo.png).",
			want:     "See [docs](https://example.com) and ![logo](logo.png).",
		},
		{
			name:     "ignore links keeps anchor text",
			settings: ConvertSettings{IgnoreLinks: true},
			input:    "See [the docs](https://example.com) now.",
			want:     "See the docs now.",
		},
		{
			name:     "ignore images removes them",
			settings: ConvertSettings{IgnoreImages: true},
			input:    "Logo: ![logo](logo.png) end.",
			want:     "Logo:  end.",
		},
		{
			name:     "images stripped before links",
			settings: ConvertSettings{IgnoreLinks: true, IgnoreImages: true},
			input:    "![alt](img.png) and [text](url)",
			want:     " and text",
		},
		{
			name:     "ignore emphasis strips markers",
			settings: ConvertSettings{IgnoreEmphasis: true},
			input:    "Some **bold**, some *italic*, some __strong__.",
			want:     "Some bold, some italic, some strong.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			conv := newKaufmannConverter(tt.settings)
			if got := conv.applyFilters(tt.input); got != tt.want {
				t.Errorf("applyFilters() = %q, want %q", got, tt.want)
			}
		})
	}
}
