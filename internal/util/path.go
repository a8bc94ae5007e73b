package util

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotDirectory is returned by RequireDirectory for paths that exist but
// are not directories.
var ErrNotDirectory = errors.New("not a directory")

// CheckDirectory reports whether path exists and whether it is a directory.
// A missing path is not an error.
func CheckDirectory(path string) (exists bool, isDir bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}
		return false, false, err
	}
	return true, info.IsDir(), nil
}

// RequireDirectory fails unless path is an existing directory.
func RequireDirectory(path string) error {
	exists, isDir, err := CheckDirectory(path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}
	if !isDir {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}
	return nil
}
