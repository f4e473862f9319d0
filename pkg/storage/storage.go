package storage

import "context"

// ObjectStorage persists generated artifacts and returns their public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
