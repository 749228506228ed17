package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled code-like line heuristics.
var (
	// Keyword statement (import, function, def, const, ...)
	keywordStatement = regexp.MustCompile(`^\s*(import|export|class|function|def|return|const|let|var)\s`)

	// Lines consisting solely of brackets/braces/parens
	bracketOnlyLine = regexp.MustCompile(`^\s*[<>{}()\[\]]+\s*$`)

	// Assignment or object property (identifier followed by = or :)
	assignmentLine = regexp.MustCompile(`^\s*\w+\s*[=:]`)

	// Closing bracket, optionally with semicolon
	closingBracket = regexp.MustCompile(`^\s*[})\]];?\s*$`)

	// Line comments (// or #)
	lineComment = regexp.MustCompile(`^\s*(//|#)`)

	// Fenced code block delimiter (backticks or tildes)
	fenceDelimiter = regexp.MustCompile("^(```|~~~)")
)

// codeIndent is the 4-space prefix markdown converters emit for code lines.
const codeIndent = "    "

// Reconstructor defines the contract for re-fencing code blocks in
// markdown that lost its fences during HTML-to-markdown conversion.
type Reconstructor interface {
	ReconstructCodeBlocks(ctx context.Context, content string) string
}

// HeuristicReconstructor groups contiguous code-like lines into fenced
// blocks using per-line syntactic cues. It operates on local context only
// (current line plus one line of lookahead) and never parses markdown.
type HeuristicReconstructor struct{}

// ReconstructCodeBlocks scans the document once, wrapping runs of
// code-like lines in language-tagged fences. Lines already inside a
// fenced block pass through untouched, which makes the transformation
// idempotent. All other lines are emitted in their original order.
func (r *HeuristicReconstructor) ReconstructCodeBlocks(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	lines := strings.Split(content, "\n")
	s := &blockScanner{out: make([]string, 0, len(lines))}
	inFence := false

	for i, line := range lines {
		// Existing fences are opaque: never open a block inside one,
		// and never reinterpret the fence delimiters themselves.
		if !s.inBlock && fenceDelimiter.MatchString(line) {
			inFence = !inFence
			s.out = append(s.out, line)
			continue
		}
		if inFence {
			s.out = append(s.out, line)
			continue
		}

		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		s.step(line, next, i+1 < len(lines))
	}

	// Closure by exhaustion: an unterminated block is still flushed.
	if s.inBlock {
		s.flush()
	}

	return strings.Join(s.out, "\n")
}

// isCodeLine reports whether a line is likely part of a code block.
// Any single matching cue is enough; no block context is considered.
func isCodeLine(line string) bool {
	if strings.HasPrefix(line, codeIndent) {
		return true
	}
	return keywordStatement.MatchString(line) ||
		bracketOnlyLine.MatchString(line) ||
		assignmentLine.MatchString(line) ||
		closingBracket.MatchString(line) ||
		lineComment.MatchString(line)
}

// blockScanner carries the state of a single forward scan: whether a
// block is open, its accumulated lines, the length of the current
// blank-run inside the block, and the emitted output.
type blockScanner struct {
	inBlock  bool
	buf      []string
	blankRun int
	out      []string
}

// step processes one input line with one line of lookahead.
func (s *blockScanner) step(line, next string, hasNext bool) {
	blank := strings.TrimSpace(line) == ""

	if !s.inBlock {
		// A block opens only on 4-space indentation. Code-like cues
		// alone extend an open block but never start one.
		if strings.HasPrefix(line, codeIndent) {
			s.inBlock = true
			s.buf = nil
			s.absorb(line, blank)
			return
		}
		s.out = append(s.out, line)
		return
	}

	if blank || isCodeLine(line) {
		s.absorb(line, blank)

		// A blank-run of two or more closes the block once the line
		// after it neither is blank nor looks like code.
		if s.blankRun > 1 && hasNext {
			if strings.TrimSpace(next) != "" && !isCodeLine(next) {
				s.flush()
			}
		}
		return
	}

	// A non-blank, non-code-like line ends the block. It is not
	// absorbed and passes through after the fence.
	s.flush()
	s.out = append(s.out, line)
}

// absorb appends a line to the open block, stripping the 4-space
// indent exactly once when present, and updates the blank-run counter.
func (s *blockScanner) absorb(line string, blank bool) {
	if strings.HasPrefix(line, codeIndent) {
		line = line[len(codeIndent):]
	}
	s.buf = append(s.buf, line)
	if blank {
		s.blankRun++
	} else {
		s.blankRun = 0
	}
}

// flush emits the accumulated block as a language-tagged fence followed
// by one blank separator line, then resets the scanner. The trailing
// blank-run is dropped from the fence; the separator stands in for it.
func (s *blockScanner) flush() {
	buf := s.buf
	for len(buf) > 0 && strings.TrimSpace(buf[len(buf)-1]) == "" {
		buf = buf[:len(buf)-1]
	}

	if len(buf) > 0 {
		lang := DetectCodeLanguage(strings.Join(buf, "\n"))
		s.out = append(s.out, "```"+lang)
		s.out = append(s.out, buf...)
		s.out = append(s.out, "```", "")
	}

	s.inBlock = false
	s.buf = nil
	s.blankRun = 0
}
