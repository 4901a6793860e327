package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/config"
)

// PostsDir is the media sub-directory for post images.
const PostsDir = "posts"

// MaxImageSize bounds a single uploaded image.
const MaxImageSize = 10 << 20

var (
	ErrNotImage      = errors.New("upload a valid image")
	ErrImageTooLarge = errors.New("image is too large")
)

// MediaStorage keeps uploaded files on the local disk under Root.
type MediaStorage struct {
	Root string
}

func NewMediaStorage(root string) *MediaStorage {
	return &MediaStorage{Root: root}
}

// SaveImage checks that fh holds an image and writes it under PostsDir.
// It returns the media-relative name, e.g. "posts/<uuid>.gif".
func (s *MediaStorage) SaveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	name := filepath.ToSlash(filepath.Join(PostsDir, uuid.Must(uuid.NewV4()).String()+mt.Extension()))
	dstPath := filepath.Join(s.Root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	config.Logger.Info("Image stored", zap.String("name", name), zap.String("mime", mt.String()))
	return name, nil
}

// Remove deletes a file stored by SaveImage. A missing file is not an error.
func (s *MediaStorage) Remove(name string) error {
	if name == "" || strings.Contains(name, "..") {
		return fmt.Errorf("invalid media name %q", name)
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
