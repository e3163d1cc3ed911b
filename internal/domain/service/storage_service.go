package service

import (
	"context"
	"io"
)

// StoredObject describes an uploaded blob.
type StoredObject struct {
	Key  string
	URL  string
	Size int64
}

// ImageStorage stores uploaded images and returns their public location.
type ImageStorage interface {
	// Upload writes the content under folder with a content-addressed name.
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
}
