// filepath: internal/services/storage_service.go
package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"

	"hcsl_site/internal/logging"
	"hcsl_site/internal/storage"
)

var _ Uploader = (*StorageService)(nil)

// StorageService writes uploaded blobs under a local root directory and
// serves them back by URL. Each stored file gets a random suffix so repeat
// uploads of the same filename never collide or overwrite.
type StorageService struct {
	Root    string
	BaseURL string
}

// NewStorageService creates the storage root if needed.
func NewStorageService(root, baseURL string) (*StorageService, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create storage root: %w", err)
	}
	return &StorageService{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put stores the blob and returns its public URL under /blob/.
func (s *StorageService) Put(filename string, r io.Reader) (string, error) {
	name := suffixedName(filename)
	path := filepath.Join(s.Root, name)

	size, err := storage.SaveFile(r, path)
	if err != nil {
		return "", err
	}

	logging.Log.Infof("Stored blob %s (%d bytes)", name, size)
	return fmt.Sprintf("%s/blob/%s", s.BaseURL, name), nil
}

// suffixedName sanitizes the client-supplied filename and inserts a random
// suffix before the extension.
func suffixedName(filename string) string {
	base := sanitizeFilename(filepath.Base(filename))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	return fmt.Sprintf("%s-%s%s", stem, strings.ToLower(ulid.Make().String()), ext)
}

// sanitizeFilename keeps letters, digits, dots, dashes and underscores and
// replaces everything else. Path separators never survive.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
