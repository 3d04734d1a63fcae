// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package collect

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lambdapush/lambdapush/internal/log"
)

// DefaultPattern matches every Python source file below the working
// directory.
const DefaultPattern = "**/*.py"

// Options controls a single glob expansion.
type Options struct {
	// Dir is the root of the expansion. Defaults to the working directory.
	Dir string

	// SkipSelf excludes the running executable from the results, compared by
	// resolved path rather than by name.
	SkipSelf bool

	// self overrides the executable path in tests.
	self string
}

// Files expands pattern as a recursive glob rooted at opts.Dir and returns
// the matches in enumeration order. Results are appended as-is; callers that
// combine several patterns may end up with duplicates, which is fine because
// the archiver writes whatever it is handed.
func Files(pattern string, opts Options) ([]string, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, err
	}
	log.Debugf("glob expanded: pattern=%s, matches=%d", pattern, len(matches))

	self := opts.self
	if opts.SkipSelf && self == "" {
		self = executablePath()
	}

	var files []string
	for _, m := range matches {
		path := filepath.Join(dir, filepath.FromSlash(m))
		if opts.SkipSelf && samePath(path, self) {
			log.Debugf("skipping self: path=%s", path)
			continue
		}
		files = append(files, path)
	}

	return files, nil
}

// executablePath returns the resolved path of the running binary, or "" if it
// cannot be determined.
func executablePath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}

// samePath reports whether two paths refer to the same file after symlink
// resolution.
func samePath(a, b string) bool {
	if b == "" {
		return false
	}
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		ra = a
	}
	return ra == b
}
