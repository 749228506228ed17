package pipeline

import "regexp"

// Language tags returned by DetectCodeLanguage.
const (
	LangTypeScript = "typescript"
	LangPython     = "python"
	LangBash       = "bash"
)

// Detection rules in priority order. Extension mentions are stronger
// evidence than keyword co-occurrence, so each family checks extensions
// first; families are ordered web-stack, then Python, then shell.
var (
	tsExtension = regexp.MustCompile(`(?i)\.(tsx?|jsx?)(\s|$)`)

	// TypeScript/JavaScript syntax: from-imports, export or interface
	// statements, or a named function declaration. A bare "import X" or
	// "class X" is ambiguous and falls through to the Python rule.
	tsSyntax = regexp.MustCompile(`(?m)^\s*(import\s+.+\s+from\s|export\s|interface\s)|function\s+\w+\s*\(`)

	pyExtension = regexp.MustCompile(`(?i)\.(py|python)(\s|$)`)
	pySyntax    = regexp.MustCompile(`(?m)^\s*(def|class|import)\s`)

	shExtension  = regexp.MustCompile(`(?i)\.(sh|bash)(\s|$)`)
	shellCommand = regexp.MustCompile(`(^|\s)(npm|yarn|pnpm|cd|ls|mkdir)\s`)
)

// DetectCodeLanguage guesses the programming language of a code block.
// Rules are evaluated in fixed priority order and the first match wins.
// Returns an empty string when no rule matches (no language annotation).
func DetectCodeLanguage(content string) string {
	switch {
	case tsExtension.MatchString(content):
		return LangTypeScript
	case tsSyntax.MatchString(content):
		return LangTypeScript
	case pyExtension.MatchString(content):
		return LangPython
	case pySyntax.MatchString(content):
		return LangPython
	case shExtension.MatchString(content):
		return LangBash
	case shellCommand.MatchString(content):
		return LangBash
	}
	return ""
}
