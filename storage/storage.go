package storage

import (
	"errors"
	"mime/multipart"
)

// ImageStore is where uploaded images live. Handlers only ever hold a
// filename; the store decides the medium.
type ImageStore interface {
	// Save validates the upload and writes it under a generated
	// collision-resistant name, returned to the caller.
	Save(file *multipart.FileHeader) (string, error)
	// Remove deletes a stored image. Missing files are not an error.
	Remove(filename string) error
	// URL is the public path a stored filename is served from.
	URL(filename string) string
}

var (
	ErrTooLarge        = errors.New("image exceeds the 5MB limit")
	ErrUnsupportedType = errors.New("only jpeg, jpg, png and gif images are allowed")
)
