package utils

import "os"

// WriteFileWithOwnership writes data to path, replacing any existing file,
// and fixes ownership when running with sudo.
func WriteFileWithOwnership(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	return FixFileOwnership(path)
}

// MkdirAllWithOwnership creates path and its parents, then fixes ownership
// when running with sudo.
func MkdirAllWithOwnership(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return err
	}
	return FixFileOwnership(path)
}
