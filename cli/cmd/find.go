package cmd

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// findFiles returns the explicitly named files, or walks the configured
// directory for *.yes files when none were given.
func findFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var files []string
	err := filepath.WalkDir(directory, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".yes") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
