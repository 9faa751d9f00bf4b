package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/velsky/animelist-api/internal/logger"
)

// MaxFileSize is the upload size cap.
const MaxFileSize = 5 << 20 // 5 MiB

// Error variables returned on rejected uploads.
var (
	ErrInvalidFileType = errors.New("invalid file type, only JPEG, PNG, GIF and WebP are allowed")
	ErrFileTooLarge    = errors.New("file exceeds the 5 MiB size limit")
	ErrInvalidFileName = errors.New("invalid file name")
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// Store writes accepted image uploads under a dedicated root directory.
// Generated names are collision-resistant, so concurrent uploads never touch
// the same file and no locking is needed.
type Store struct {
	root string
}

// New creates a Store rooted at dir. The directory is created lazily on the
// first accepted upload.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Save validates the payload and writes it to a unique file, returning the
// stored file name. The declared content type and size are checked before any
// byte is written. A failed write removes the partial file before the error
// is propagated.
func (s *Store) Save(ctx context.Context, r io.Reader, originalName, contentType string, size int64) (string, error) {
	if _, ok := allowedTypes[strings.ToLower(contentType)]; !ok {
		return "", ErrInvalidFileType
	}
	if size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(originalName))
	path := filepath.Join(s.root, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	// Copy at most one byte over the cap so an undersized declaration is
	// still caught.
	written, err := io.Copy(f, io.LimitReader(r, MaxFileSize+1))
	if err == nil && written > MaxFileSize {
		err = ErrFileTooLarge
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.Log.Errorw("failed to clean up partial upload", "file", name, "error", rmErr)
		}
		return "", err
	}

	logger.Log.Infow("upload stored", "file", name, "size", written)
	return name, nil
}

// Remove deletes the stored file with the given name. Removing a file that
// does not exist is not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	if name == "" || name != filepath.Base(name) {
		return ErrInvalidFileName
	}

	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	logger.Log.Infow("upload removed", "file", name)
	return nil
}
