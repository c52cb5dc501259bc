package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// NormalizeExtensions lower-cases, trims and dot-prefixes extensions, dropping
// blanks and duplicates while keeping the first-seen order
func NormalizeExtensions(exts []string) []string {
	normalized := lo.FilterMap(exts, func(ext string, _ int) (string, bool) {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return "", false
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		return ext, true
	})
	return lo.Uniq(normalized)
}

// IsAudioFile reports whether path has one of the extensions (case-insensitive)
func IsAudioFile(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return lo.Contains(NormalizeExtensions(exts), ext)
}

// FilterAudioFiles keeps the paths with one of the extensions, preserving order
func FilterAudioFiles(paths []string, exts []string) []string {
	allowed := NormalizeExtensions(exts)
	return lo.Filter(paths, func(path string, _ int) bool {
		return lo.Contains(allowed, strings.ToLower(filepath.Ext(path)))
	})
}

// ListAudioFiles returns the audio files directly inside dir, sorted by name
func ListAudioFiles(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() {
			return "", false
		}
		return filepath.Join(dir, entry.Name()), true
	})
	files = FilterAudioFiles(files, exts)
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})
	return files, nil
}

// ExpandAudioPaths turns a mix of files and folders into a playlist. Files are
// kept when they match the extensions, folders contribute their audio files.
// Missing paths are an error.
func ExpandAudioPaths(paths []string, exts []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("file does not exist: %w", err)
		}

		if info.IsDir() {
			files, err := ListAudioFiles(absPath, exts)
			if err != nil {
				return nil, err
			}
			out = append(out, files...)
			continue
		}
		if IsAudioFile(absPath, exts) {
			out = append(out, absPath)
		}
	}
	return out, nil
}
