package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ImageStore persists training images durably under a collision-resistant
// path. Save errors must propagate: a record without its image is useless.
// Exists and Delete are best-effort; Delete reports false (not an error)
// when the image is already gone.
type ImageStore interface {
	Save(data []byte, originalFilename, userUniqueCode string) (string, error)
	Exists(path string) bool
	Delete(path string) (bool, error)
}

// LocalImageStore writes images to a local directory tree, split by owner
// code and date: <base>/<code>/yyyy/MM/dd/<uuid>_<HHmmss><ext>. The random
// token plus time suffix keeps concurrent uploads from the same user on the
// same day from colliding.
type LocalImageStore struct {
	basePath string
}

func NewLocalImageStore(basePath string) *LocalImageStore {
	return &LocalImageStore{basePath: basePath}
}

func (s *LocalImageStore) Save(data []byte, originalFilename, userUniqueCode string) (string, error) {
	now := time.Now()
	dir := filepath.Join(s.basePath, userUniqueCode, now.Format("2006/01/02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s%s", uuid.New().String(), now.Format("150405"), filepath.Ext(originalFilename))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

func (s *LocalImageStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *LocalImageStore) Delete(path string) (bool, error) {
	if !s.Exists(path) {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("delete image: %w", err)
	}
	return true, nil
}
