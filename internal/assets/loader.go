package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxImageBytes = 20 << 20

// Loader fetches the raw bytes behind an image reference.
type Loader interface {
	Load(ctx context.Context, ref string) ([]byte, error)
}

// HTTPLoader loads remote images over HTTP(S).
type HTTPLoader struct {
	client *http.Client
}

var _ Loader = (*HTTPLoader)(nil)

func NewHTTPLoader(client *http.Client) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &HTTPLoader{client: client}
}

func (l *HTTPLoader) Load(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("load image: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("image larger than %d bytes", maxImageBytes)
	}
	return body, nil
}
