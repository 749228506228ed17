// Package fileutil provides file naming and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MaxDerivedNameLength limits filenames derived from URLs.
const MaxDerivedNameLength = 30

// datePrefixFormat is the YYYYMMDD stamp prepended to output names.
const datePrefixFormat = "20060102"

// Directory permissions: owner full, group read+execute.
const dirPermissions = 0o750

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %q: %w", path, err)
	}
	return nil
}

// SafeFilename derives a filesystem-safe name from a URL: the last path
// segment with any fragment removed, truncated to MaxDerivedNameLength,
// with every non-alphanumeric character replaced by an underscore.
// Returns "page" when nothing usable remains.
func SafeFilename(rawURL string) string {
	s := rawURL
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}
	if len(s) > MaxDerivedNameLength {
		s = s[:MaxDerivedNameLength]
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "page"
	}
	return name
}

// DatedName builds the base output filename: YYYYMMDD_<name><ext>.
// The time parameter allows injecting a fixed time for testing.
func DatedName(t time.Time, name, ext string) string {
	return t.Format(datePrefixFormat) + "_" + name + ext
}

// VersionedPath returns basePath when neither it nor any _vN variant
// exists, otherwise the path with the next free version suffix. The base
// file, when present, counts as version 1.
func VersionedPath(basePath string) (string, error) {
	dir := filepath.Dir(basePath)
	ext := filepath.Ext(basePath)
	stem := strings.TrimSuffix(filepath.Base(basePath), ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scanning output directory %q: %w", dir, err)
	}

	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(stem) + `_v(\d+)` + regexp.QuoteMeta(ext) + "$")

	var versions []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == stem+ext {
			versions = append(versions, 1)
			continue
		}
		if m := pattern.FindStringSubmatch(name); m != nil {
			if n, convErr := strconv.Atoi(m[1]); convErr == nil {
				versions = append(versions, n)
			}
		}
	}

	if len(versions) == 0 {
		return basePath, nil
	}

	next := 1
	for _, v := range versions {
		if v >= next {
			next = v + 1
		}
	}
	return filepath.Join(dir, fmt.Sprintf("%s_v%d%s", stem, next, ext)), nil
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name. A string containing path separators is a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an HTTP(S) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
