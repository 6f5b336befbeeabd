// Package storage persists uploaded post images on the local filesystem
// under a single flat directory.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/simonindia/hr-portal/internal/core/domain"
)

// MaxUploadBytes is the largest accepted image upload (16 MiB).
const MaxUploadBytes = 16 << 20

// urlPrefix is the path prefix stored on posts and used by the retrieval
// endpoint.
const urlPrefix = "uploads/images"

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// ImageStore writes uploads into root with server-generated names. The
// client filename contributes only its extension, so path traversal and
// collisions are off the table.
type ImageStore struct {
	root string
}

// NewImageStore creates the upload root when missing and returns the store.
func NewImageStore(root string) (*ImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{root: root}, nil
}

// Save validates and persists one uploaded image, returning the relative
// path to record on the post (e.g. "uploads/images/3f2a….png").
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadBytes {
		return "", domain.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domain.ErrUnsupportedFileType
	}

	name, err := randomName()
	if err != nil {
		return "", err
	}
	name += ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	// The declared header size was already checked; the copy is capped too
	// in case the two disagree.
	if _, err := io.Copy(dst, io.LimitReader(src, MaxUploadBytes+1)); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}

	return path.Join(urlPrefix, name), nil
}

// Remove deletes a stored image by its recorded relative path. A file that
// is already gone is not an error.
func (s *ImageStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.Base(relPath)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// Resolve maps a stored filename to its absolute path for serving. Only the
// base name is honoured, keeping retrieval confined to the upload root.
func (s *ImageStore) Resolve(filename string) (string, error) {
	full := filepath.Join(s.root, filepath.Base(filename))
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrFileNotFound
		}
		return "", fmt.Errorf("stat image: %w", err)
	}
	return full, nil
}

func randomName() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}
	return hex.EncodeToString(b), nil
}
