package web2md

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-web2md/internal/hints"
)

// pageFetcher abstracts browser page fetching to enable testing without
// a browser.
type pageFetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
	Close() error
}

// rodFetcher fetches rendered page HTML using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodFetcher struct {
	browser  *rod.Browser
	settings FetchSettings
	timeout  time.Duration
}

// newRodFetcher creates a rodFetcher with the given settings and timeout.
func newRodFetcher(settings FetchSettings, timeout time.Duration) *rodFetcher {
	return &rodFetcher{settings: settings, timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (f *rodFetcher) ensureBrowser() error {
	if f.browser != nil {
		return nil
	}

	l := launcher.New().Headless(f.settings.Headless)

	// A persistent profile keeps cookies and login sessions across runs
	if f.settings.UserDataDir != "" {
		l = l.UserDataDir(f.settings.UserDataDir)
	}

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	f.browser = rod.New().ControlURL(u)
	if err := f.browser.Connect(); err != nil {
		f.browser = nil
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	return nil
}

// Close releases browser resources.
func (f *rodFetcher) Close() error {
	if f.browser != nil {
		err := f.browser.Close()
		f.browser = nil
		return err
	}
	return nil
}

// FetchHTML navigates to the URL, waits for the page (and the optional
// content selector) to load, and returns the rendered HTML.
func (f *rodFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := f.ensureBrowser(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1280,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForPageLoad())
	}

	// Login walls and client-side rendering both manifest as the content
	// selector never appearing
	if sel := f.settings.WaitSelector; sel != "" {
		if _, err := page.Timeout(timeout).Element(sel); err != nil {
			return "", fmt.Errorf("%w (%s): %v%s", ErrAuthWait, sel, err, hints.ForAuthWait())
		}
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return "", err
	}

	htmlContent, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	return htmlContent, nil
}
