package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store keeps uploaded files on disk and builds the absolute URLs
// embedded in records. Deletion is best-effort: failures are logged,
// never returned to the caller.
type Store struct {
	dir     string
	baseURL string
	log     zerolog.Logger
}

func NewStore(dir, baseURL string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}, nil
}

// Save writes an uploaded file under a unique name and returns that name.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// SaveAll stores every file and returns the stored names in order.
func (s *Store) SaveAll(fhs []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		name, err := s.Save(fh)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// URL returns the public URL for a stored file name.
func (s *Store) URL(name string) string {
	return s.baseURL + "/uploads/" + name
}

// Remove deletes a stored file, logging failures instead of returning them.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Error().Err(err).Str("file", path).Msg("failed to delete uploaded file")
	}
}

// RemoveAll deletes every named file best-effort.
func (s *Store) RemoveAll(names []string) {
	for _, name := range names {
		s.Remove(name)
	}
}
