// Package storage mengabstraksi penyimpanan file gambar katalog.
// Handler hanya tahu "simpan blob, dapat URL publik" sehingga backend
// penyimpanan bisa diganti tanpa menyentuh controller.
package storage

import "io"

type Storage interface {
	// Save menyimpan blob dengan nama objek tertentu dan mengembalikan
	// URL publiknya.
	Save(name string, r io.Reader, contentType string) (string, error)
	Remove(name string) error
}
