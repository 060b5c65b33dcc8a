package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// VisitFunc is called once per case file with its name relative to the
// scanner root. Returning false stops the walk.
type VisitFunc func(name string) bool

// Scanner walks a test directory in lexical order
type Scanner struct {
	skipDirs map[string]bool
	filter   *Filter
	pattern  string
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// WithFilter restricts visited files to names matching pattern
func (s *Scanner) WithFilter(filter *Filter, pattern string) *Scanner {
	s.filter = filter
	s.pattern = pattern
	return s
}

// Walk visits every file below root/sub. Names passed to visit are relative
// to root. It returns false if visit asked to stop; no further entry is
// visited once that happens.
func (s *Scanner) Walk(root, sub string, visit VisitFunc) (bool, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return false, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("test path is not a directory: %s", root)
	}

	start := filepath.Join(root, sub)
	if _, err := os.Stat(start); err != nil {
		return false, fmt.Errorf("test subpath does not exist: %s", start)
	}

	proceed := true
	err = filepath.WalkDir(start, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != start && s.skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		name, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if s.filter != nil && !s.filter.Match(name, s.pattern) {
			return nil
		}

		if !visit(name) {
			proceed = false
			return fs.SkipAll
		}
		return nil
	})

	return proceed, err
}

// Scan returns every case name below root/sub in traversal order
func (s *Scanner) Scan(root, sub string) ([]string, error) {
	var names []string
	_, err := s.Walk(root, sub, func(name string) bool {
		names = append(names, name)
		return true
	})
	return names, err
}
