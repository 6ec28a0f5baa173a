package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local menyimpan file di disk dan melayani lewat route statis /uploads.
type Local struct {
	Dir     string // direktori fisik, mis. public/uploads
	BaseURL string // prefix URL publik, mis. http://localhost:8080/uploads
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("membuat direktori upload: %w", err)
	}
	return &Local{Dir: dir, BaseURL: baseURL}, nil
}

func (l *Local) Save(name string, r io.Reader, contentType string) (string, error) {
	// contentType tidak dipakai di disk lokal; penting untuk backend bucket.
	path := filepath.Join(l.Dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}
	return l.BaseURL + "/" + filepath.Base(name), nil
}

func (l *Local) Remove(name string) error {
	return os.Remove(filepath.Join(l.Dir, filepath.Base(name)))
}
