package utils

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions lists the file extensions treated as Python sources
var DefaultExtensions = []string{".py"}

// IsPythonFile checks if a file has one of the given extensions
func IsPythonFile(filename string, extensions []string) bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	for _, ext := range extensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// FindPythonFiles recursively finds all Python source files in a directory.
// Hidden directories and directories named in exclude are skipped.
func FindPythonFiles(root string, extensions, exclude []string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip excluded and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if slices.Contains(exclude, name) || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsPythonFile(filepath.Base(path), extensions) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
