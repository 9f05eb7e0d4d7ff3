package interfaces

import (
	"context"
	"io"
)

// IAssetStorage uploads binary assets (logos, product photos, covers) to object
// storage and returns a publicly resolvable URL.
type IAssetStorage interface {
	Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error)
}
