package repositories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbilibin2017/barterup-bff/internal/logger"
)

// ErrPictureNotFound is returned when a requested picture does not exist.
var ErrPictureNotFound = errors.New("profile picture not found")

var pictureContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// PictureStore keeps profile pictures in a local directory.
// Concurrent writes of the same name are not synchronized; the last one wins.
type PictureStore struct {
	dir string
}

// NewPictureStore creates a store rooted at dir.
func NewPictureStore(dir string) *PictureStore {
	return &PictureStore{dir: dir}
}

// Dir returns the storage directory.
func (s *PictureStore) Dir() string {
	return s.dir
}

// Save writes data under name, creating the directory if needed.
func (s *PictureStore) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("prepare picture storage: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write picture: %w", err)
	}

	logger.Log.Infow("profile picture saved", "path", path, "size", len(data))
	return nil
}

// Remove deletes a stored picture. Missing files are not an error.
func (s *PictureStore) Remove(name string) error {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	logger.Log.Infow("profile picture removed", "path", path)
	return nil
}

// Read returns a picture and its content type. Only the base name of the
// requested name is used, so paths can never leave the storage directory.
func (s *PictureStore) Read(name string) ([]byte, string, error) {
	safe := filepath.Base(filepath.Clean("/" + name))
	if safe == "/" || safe == "." || safe == ".." {
		return nil, "", ErrPictureNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, safe))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ErrPictureNotFound
		}
		return nil, "", err
	}

	return data, PictureContentType(safe), nil
}

// PictureContentType maps a file name's extension to its content type.
func PictureContentType(name string) string {
	if ct, ok := pictureContentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
