package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxUpload = 5 << 20

var errNotImage = errors.New("upload is not an image")

var imageExts = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// saveUpload stores the image in form field under the uploads dir and
// returns the stored path ("uploads/<name>"). http.ErrMissingFile means the
// field was absent.
func (s *server) saveUpload(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if header.Size > maxUpload {
		return "", fmt.Errorf("%s: %d bytes: too large", field, header.Size)
	}

	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	ext, ok := imageExts[http.DetectContentType(head[:n])]
	if !ok {
		return "", errNotImage
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.uploads, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer dst.Close()
	if _, err := dst.Write(head[:n]); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "uploads/" + name, nil
}

func (s *server) removeUpload(stored string) {
	if stored == "" {
		return
	}
	name := filepath.Base(filepath.FromSlash(stored))
	if err := os.Remove(filepath.Join(s.uploads, name)); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Str("file", name).Msg("remove upload")
	}
}

func uploadMessage(err error) string {
	if errors.Is(err, errNotImage) {
		return "يجب أن يكون الملف صورة"
	}
	return "فشل رفع الصورة"
}

// serveUploads serves stored files without directory listings.
func (s *server) serveUploads() http.Handler {
	fs := http.FileServer(http.Dir(s.uploads))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fs.ServeHTTP(w, r)
	})
}
