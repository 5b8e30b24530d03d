// filepath: internal/storage/file.go
// Package storage writes uploaded blobs to the local blob directory.
package storage

import (
	"fmt"
	"io"
	"os"
)

// SaveFile streams the reader into a new blob file at path and reports the
// number of bytes written. An existing file at path is truncated.
func SaveFile(blob io.Reader, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not create blob file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, blob)
	if err != nil {
		return 0, fmt.Errorf("could not write blob file: %w", err)
	}

	return written, nil
}
