package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalSink writes each artifact to <dir>/<uuid>/<fileName> so concurrent
// exports with the same file name never collide.
type LocalSink struct {
	dir string
}

var _ ArtifactSink = (*LocalSink)(nil)

func NewLocalSink(dir string) *LocalSink {
	if dir == "" {
		dir = os.TempDir()
	}
	return &LocalSink{dir: dir}
}

func (s *LocalSink) Save(ctx context.Context, fileName, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := filepath.Base(filepath.Clean(fileName))
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}

	dir := filepath.Join(s.dir, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// DiscardSink keeps artifacts in memory only; the caller uses Artifact.Data.
type DiscardSink struct{}

var _ ArtifactSink = DiscardSink{}

func (DiscardSink) Save(_ context.Context, fileName, _ string, _ []byte) (string, error) {
	return fileName, nil
}
