package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensions accepted for uploaded receipts
var allowedReceiptExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

// ReceiptStore persists uploaded payment receipts on local disk.
// Stored names are uuid-prefixed so uploads can never collide or
// overwrite each other.
type ReceiptStore struct {
	dir string
}

func NewReceiptStore(dir string) (*ReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt directory: %w", err)
	}
	return &ReceiptStore{dir: dir}, nil
}

// AllowedReceiptFile reports whether the filename carries an accepted
// image or PDF extension
func AllowedReceiptFile(filename string) bool {
	return allowedReceiptExts[strings.ToLower(filepath.Ext(filename))]
}

// Save writes the receipt content and returns the stored filename
func (s *ReceiptStore) Save(filename string, src io.Reader) (string, error) {
	if !AllowedReceiptFile(filename) {
		return "", ValidationError("file type not allowed, upload an image or PDF")
	}

	stored := StoredReceiptName(filename)
	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}
	return stored, nil
}

// Path returns the on-disk path for a stored receipt name. The stored
// name is validated against traversal before use.
func (s *ReceiptStore) Path(stored string) (string, error) {
	if stored != filepath.Base(stored) || stored == "" || stored == "." {
		return "", NotFoundError("receipt")
	}
	path := filepath.Join(s.dir, stored)
	if _, err := os.Stat(path); err != nil {
		return "", NotFoundError("receipt")
	}
	return path, nil
}

// StoredReceiptName builds a collision-free stored filename from the
// uploaded one: uuid prefix plus the sanitized base name
func StoredReceiptName(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%s", uuid.New().String(), base)
}
