package services

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestAllowedReceiptFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"receipt.png", true},
		{"receipt.jpg", true},
		{"receipt.JPEG", true},
		{"receipt.pdf", true},
		{"receipt.exe", false},
		{"receipt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := AllowedReceiptFile(tt.filename); got != tt.want {
				t.Errorf("AllowedReceiptFile(%q) = %v; want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestStoredReceiptName(t *testing.T) {
	stored := StoredReceiptName("my receipt.png")

	if strings.Contains(stored, " ") {
		t.Errorf("stored name %q contains spaces", stored)
	}
	if !strings.HasSuffix(stored, "_my_receipt.png") {
		t.Errorf("stored name %q does not keep the sanitized base name", stored)
	}
	if other := StoredReceiptName("my receipt.png"); other == stored {
		t.Error("two uploads of the same filename collided")
	}
}

func TestReceiptStoreSaveAndPath(t *testing.T) {
	store, err := NewReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewReceiptStore: %v", err)
	}

	stored, err := store.Save("receipt.png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	path, err := store.Path(stored)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestReceiptStoreRejectsBadUploads(t *testing.T) {
	store, err := NewReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewReceiptStore: %v", err)
	}

	if _, err := store.Save("malware.exe", strings.NewReader("nope")); !errors.Is(err, ErrValidation) {
		t.Errorf("Save(.exe) error = %v; want ErrValidation", err)
	}

	if _, err := store.Path("../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Path(traversal) error = %v; want ErrNotFound", err)
	}
	if _, err := store.Path("does-not-exist.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Path(missing) error = %v; want ErrNotFound", err)
	}
}
