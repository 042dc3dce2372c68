// Package paths resolves where the generated dataset is written.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultFilename is the name the spreadsheet import dialog looks for
	DefaultFilename = "sales_data_2022-2025.csv"
	downloadsDir    = "Downloads"
)

// DefaultOutputPath is $HOME/Downloads/sales_data_2022-2025.csv
func DefaultOutputPath() (string, error) {
	return Resolve("", "")
}

// Resolve joins dir and filename, defaulting dir to the user's downloads
// folder and filename to DefaultFilename. A leading ~ in dir is expanded.
func Resolve(dir, filename string) (string, error) {
	if filename == "" {
		filename = DefaultFilename
	}

	if dir == "" || dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		switch {
		case dir == "":
			dir = filepath.Join(home, downloadsDir)
		case dir == "~":
			dir = home
		default:
			dir = filepath.Join(home, dir[2:])
		}
	}

	return filepath.Join(dir, filename), nil
}

// ExpandFile expands a leading ~ in an explicit file path
func ExpandFile(path string) (string, error) {
	if path == "" {
		return DefaultOutputPath()
	}
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	return Resolve(filepath.Dir(path), filepath.Base(path))
}
