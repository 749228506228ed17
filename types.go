package web2md

import "time"

// defaultTimeout applies to the whole salvage operation when no explicit
// timeout option is given.
const defaultTimeout = 60 * time.Second

// FetchSettings controls how pages are fetched from the browser.
type FetchSettings struct {
	// Headless runs Chrome without a visible window. Disable it to sign
	// in to authentication-gated pages by hand.
	Headless bool
	// UserDataDir is the Chrome profile directory. A persistent dir keeps
	// cookies and sessions across runs; empty means a throwaway profile.
	UserDataDir string
	// WaitSelector is a CSS selector to wait for after page load. Useful
	// for pages that render their content client-side.
	WaitSelector string
}

// DefaultFetchSettings returns the fetch settings used when none are given.
func DefaultFetchSettings() FetchSettings {
	return FetchSettings{Headless: true}
}

// ConvertSettings controls the HTML-to-markdown conversion stage.
type ConvertSettings struct {
	// IgnoreLinks strips link syntax, keeping the anchor text.
	IgnoreLinks bool
	// IgnoreImages removes image references entirely.
	IgnoreImages bool
	// IgnoreEmphasis strips bold and italic markers.
	IgnoreEmphasis bool
}

// DefaultConvertSettings returns the conversion settings used when none
// are given: links, images and emphasis are all preserved.
func DefaultConvertSettings() ConvertSettings {
	return ConvertSettings{}
}

// Input describes one salvage request. Exactly one of URL, HTML, or
// Markdown must be set; they enter the pipeline at different stages.
type Input struct {
	// URL fetches the page with the browser, converts it, then repairs it.
	URL string
	// HTML skips the fetch and enters at the conversion stage.
	HTML string
	// Markdown skips fetch and conversion; only the repair passes run.
	Markdown string
	// Preview additionally renders the salvaged markdown to a standalone
	// HTML document for visual inspection.
	Preview bool
}

// validate checks that exactly one input source is set.
func (in Input) validate() error {
	n := 0
	if in.URL != "" {
		n++
	}
	if in.HTML != "" {
		n++
	}
	if in.Markdown != "" {
		n++
	}
	switch n {
	case 0:
		return ErrNoSource
	case 1:
		return nil
	default:
		return ErrConflictingSource
	}
}

// Result holds the salvaged output.
type Result struct {
	// Markdown is the repaired markdown document.
	Markdown []byte
	// PreviewHTML is set only when Input.Preview was requested.
	PreviewHTML []byte
}

// serviceConfig holds the resolved options for a Service.
type serviceConfig struct {
	timeout time.Duration
	fetch   FetchSettings
	convert ConvertSettings
}

// Option configures a Service.
type Option func(*serviceConfig)

// WithTimeout sets the timeout for the whole salvage operation.
// Panics if timeout is not positive.
func WithTimeout(timeout time.Duration) Option {
	if timeout <= 0 {
		panic("web2md: timeout must be positive")
	}
	return func(c *serviceConfig) {
		c.timeout = timeout
	}
}

// WithFetchSettings sets the browser fetch settings.
func WithFetchSettings(s FetchSettings) Option {
	return func(c *serviceConfig) {
		c.fetch = s
	}
}

// WithConvertSettings sets the HTML-to-markdown conversion settings.
func WithConvertSettings(s ConvertSettings) Option {
	return func(c *serviceConfig) {
		c.convert = s
	}
}
