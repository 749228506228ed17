package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled cleanup patterns.
var (
	// Raw <pre><code> spans that survived HTML-to-markdown conversion
	preCodeSpan = regexp.MustCompile(`(?s)<pre><code>(.*?)</code></pre>`)

	// Inline code delimited by a single backtick pair
	inlineCode = regexp.MustCompile("`([^`]+)`")
)

// navMarker opens the navigation boilerplate documentation sites repeat.
const navMarker = "On this page"

// PostProcessor defines the contract for the cleanup pass applied after
// code block reconstruction.
type PostProcessor interface {
	PostProcess(ctx context.Context, content string) string
}

// MarkdownPostProcessor applies idempotent regex-based cleanup to the
// fully reconstructed document.
type MarkdownPostProcessor struct{}

// PostProcess applies all cleanup transformations in order: residual
// <pre><code> spans, duplicated navigation boilerplate, then inline-code
// normalization. Malformed input (e.g. an unterminated <pre> tag) simply
// fails to match and passes through unchanged.
func (p *MarkdownPostProcessor) PostProcess(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = collapsePreCodeSpans(content)
	content = collapseDuplicateNav(content)
	content = normalizeInlineCode(content)
	return content
}

// collapsePreCodeSpans rewrites raw <pre><code>...</code></pre> spans
// (possibly multi-line) into fenced blocks with a guessed language tag.
func collapsePreCodeSpans(content string) string {
	return preCodeSpan.ReplaceAllStringFunc(content, func(m string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(m, "<pre><code>"), "</code></pre>")
		return "```" + DetectCodeLanguage(inner) + "\n" + inner + "\n```\n"
	})
}

// collapseDuplicateNav removes navigation boilerplate that appears twice
// in a row: a span beginning with the marker phrase followed by an exact
// copy of itself collapses to one occurrence. Non-adjacent repeats are
// left untouched. RE2 has no backreferences, so duplicates are located
// by scanning marker positions instead of a (span)\1 pattern.
func collapseDuplicateNav(content string) string {
	start := 0
	for {
		i := strings.Index(content[start:], navMarker)
		if i < 0 {
			return content
		}
		i += start

		// Try each later marker occurrence as the start of a duplicate,
		// shortest span first (mirrors a non-greedy match).
		collapsed := false
		for j := i + len(navMarker); ; {
			k := strings.Index(content[j:], navMarker)
			if k < 0 {
				break
			}
			j += k
			span := content[i:j]
			if strings.HasPrefix(content[j:], span) {
				content = content[:j] + content[j+len(span):]
				start = j
				collapsed = true
				break
			}
			j += len(navMarker)
		}
		if !collapsed {
			start = i + len(navMarker)
		}
	}
}

// normalizeInlineCode re-emits single-backtick spans with the same
// delimiters. An identity transform today; it guarantees exactly one
// normalization pass if inline-code re-escaping is ever needed.
func normalizeInlineCode(content string) string {
	return inlineCode.ReplaceAllString(content, "`$1`")
}
