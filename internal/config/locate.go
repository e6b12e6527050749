package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Exported variables.
var (
	ErrNoDirs   = errors.New("no directories to search")
	ErrNotFound = errors.New("no config file matches")
)

// DefaultDirs returns the directories searched for an application's config
// file: the directory holding the executable, then the user config directory
// for app.
func DefaultDirs(app string) []string {
	var dirs []string

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, app))
	}

	return dirs
}

// Locate returns the first file matching pattern (doublestar syntax, braces
// and ** included) in the first directory that has one. Matches within a
// directory are taken in lexical order. An absolute pattern ignores dirs.
func Locate(pattern string, dirs ...string) (string, error) {
	if filepath.IsAbs(pattern) {
		volume := filepath.VolumeName(pattern)
		base := volume + string(filepath.Separator)
		dirs = []string{base}
		pattern = pattern[len(base):]
	}

	if len(dirs) == 0 {
		return "", ErrNoDirs
	}

	pattern = filepath.ToSlash(filepath.Clean(pattern))

	for _, dir := range dirs {
		match, err := firstMatch(os.DirFS(dir), pattern)
		if err != nil {
			return "", fmt.Errorf("matching pattern %q in %s: %w", pattern, dir, err)
		}

		if match != "" {
			return filepath.Join(dir, filepath.FromSlash(match)), nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrNotFound, pattern)
}

func firstMatch(fsys fs.FS, pattern string) (string, error) {
	list, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", err
	}

	if len(list) == 0 {
		return "", nil
	}

	sort.Strings(list)

	return list[0], nil
}
