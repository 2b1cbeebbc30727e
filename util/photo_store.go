// util/photo_store.go
package util

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
)

// PhotoStore saves uploaded employee photos under a single directory.
type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) *PhotoStore {
	return &PhotoStore{dir: dir}
}

// Save writes the upload as <uuid>_<filename> and returns the stored name.
func (s *PhotoStore) Save(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", echo_errors.ErrPhotoUpload, err)
	}

	name := uuid.New().String() + "_" + filepath.Base(file.Filename)
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", echo_errors.ErrPhotoUpload, err)
	}
	defer src.Close()

	if err := s.write(name, src); err != nil {
		return "", fmt.Errorf("%w: %v", echo_errors.ErrPhotoUpload, err)
	}
	logger.Debug("Photo stored", zap.String("file", name))
	return name, nil
}

// write copies src into name. A partially written file is removed.
func (s *PhotoStore) write(name string, src io.Reader) error {
	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.Warn("Failed to remove partial photo", zap.Error(rmErr), zap.String("file", name))
		}
		return err
	}
	return nil
}

// Remove deletes a stored photo; a missing file is not an error.
func (s *PhotoStore) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove photo", zap.Error(err), zap.String("file", name))
	}
}
