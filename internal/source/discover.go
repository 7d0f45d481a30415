package source

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverFiles resolves root (tilde-expanded) and returns matching .jsonl
// files. A root that is itself a file returns just that file; a directory is
// searched with pattern. A nonexistent root yields an empty list — the
// caller decides whether that deserves a hint.
func DiscoverFiles(root, pattern string) ([]string, error) {
	root = ExpandHome(root)
	if pattern == "" {
		pattern = DefaultPattern
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, nil
	}
	if !info.IsDir() {
		if strings.HasSuffix(root, ".jsonl") {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	if strings.Contains(pattern, "**") {
		// Recursive: match the pattern's final segment against basenames.
		leaf := pattern[strings.LastIndex(pattern, "/")+1:]
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d.IsDir() {
				return nil // skip unreadable entries, keep walking
			}
			if ok, _ := path.Match(leaf, d.Name()); ok {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		files, err = filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
