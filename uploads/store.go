package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/7248-om/gshock12/logger"
)

var (
	unsafeChars  = regexp.MustCompile(`[^\w\d\-_\.]`)
	folderChars  = regexp.MustCompile(`[^a-z0-9\-_]`)
	ErrNotStored = errors.New("url does not belong to the upload store")
)

// Store keeps uploaded files on local disk under Dir and serves them from
// BaseURL + "/uploads".
type Store struct {
	Dir     string
	BaseURL string
	now     func() time.Time
}

func NewStore(dir, publicBaseURL string) *Store {
	return &Store{Dir: dir, BaseURL: strings.TrimRight(publicBaseURL, "/"), now: time.Now}
}

// SaveFile writes a multipart upload into folder and returns its public URL.
func (s *Store) SaveFile(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.Save(src, file.Filename, folder)
}

// SaveBytes is Save for in-memory content such as generated QR codes.
func (s *Store) SaveBytes(data []byte, name, folder string) (string, error) {
	return s.Save(bytes.NewReader(data), name, folder)
}

func (s *Store) Save(r io.Reader, originalName, folder string) (string, error) {
	folder = cleanFolder(folder)
	cleanName := unsafeChars.ReplaceAllString(filepath.Base(originalName), "_")
	filename := fmt.Sprintf("%d_%s", s.now().UnixNano(), cleanName)

	dir := filepath.Join(s.Dir, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	out, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	url := fmt.Sprintf("%s/uploads/%s/%s", s.BaseURL, folder, filename)
	logger.WithComponent("uploads").WithField("url", url).Info("file stored")
	return url, nil
}

// Remove deletes the file behind a URL returned by Save. Missing files are not an error.
func (s *Store) Remove(url string) error {
	rel, err := s.relativePath(url)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.Dir, rel)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) relativePath(url string) (string, error) {
	prefix := s.BaseURL + "/uploads/"
	if !strings.HasPrefix(url, prefix) {
		return "", ErrNotStored
	}
	rel := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(url, prefix)))
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", ErrNotStored
	}
	return rel, nil
}

func cleanFolder(folder string) string {
	folder = folderChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(folder)), "_")
	if folder == "" {
		return "general"
	}
	return folder
}
