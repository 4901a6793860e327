package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var smallGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x0C,
	0x0A, 0x00, 0x3B,
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSaveImage(t *testing.T) {
	root := t.TempDir()
	s := NewMediaStorage(root)

	name, err := s.SaveImage(fileHeader(t, "small.gif", smallGIF))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(name, "posts/"))
	require.True(t, strings.HasSuffix(name, ".gif"))

	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	require.Equal(t, smallGIF, stored)
}

func TestSaveImageRejectsText(t *testing.T) {
	s := NewMediaStorage(t.TempDir())
	_, err := s.SaveImage(fileHeader(t, "notes.gif", []byte("just some text")))
	require.ErrorIs(t, err, ErrNotImage)
}

func TestRemove(t *testing.T) {
	root := t.TempDir()
	s := NewMediaStorage(root)

	name, err := s.SaveImage(fileHeader(t, "small.gif", smallGIF))
	require.NoError(t, err)

	require.NoError(t, s.Remove(name))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(name)))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, s.Remove(name))
	require.Error(t, s.Remove("../outside.gif"))
}
