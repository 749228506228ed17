package web2md

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoSource          = errors.New("no input source provided")
	ErrConflictingSource = errors.New("multiple input sources provided")
	ErrMarkdownConvert   = errors.New("markdown conversion failed")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrAuthWait       = errors.New("content selector did not appear")
)
