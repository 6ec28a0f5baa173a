package controllers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aldifirmansyah/burgerin-app/storage"
)

// saveUploadedImage menyimpan satu file multipart ke object storage dan
// mengembalikan nama objek beserta URL publiknya.
func saveUploadedImage(store storage.Storage, file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	url, err := store.Save(name, src, file.Header.Get("Content-Type"))
	if err != nil {
		return "", "", err
	}
	return name, url, nil
}
