package renderer

import (
	"context"
	"errors"
)

// ErrViewNotFound is returned when the document view has no element with the
// requested id.
var ErrViewNotFound = errors.New("view element not found")

// View is a live, already rendered document.
type View interface {
	Element(ctx context.Context, id string) (Element, error)
}

// Element is a node of a View whose inline style can be read and changed.
// Parent returns nil, nil for the root.
type Element interface {
	Style(ctx context.Context, prop string) (string, error)
	SetStyle(ctx context.Context, prop, value string) error
	Parent(ctx context.Context) (Element, error)
	InnerHTML(ctx context.Context) (string, error)
}

type CaptureOptions struct {
	// Scale is the device scale factor of the capture.
	Scale float64
	// AllowCrossOrigin loads cross-origin images during capture.
	AllowCrossOrigin bool
}

// Raster is a captured PNG and its pixel size.
type Raster struct {
	PNG    []byte
	Width  int
	Height int
}

// Rasterizer captures an element of a View to a raster image.
type Rasterizer interface {
	Ready() bool
	Capture(ctx context.Context, el Element, opts CaptureOptions) (Raster, error)
}

// DocumentAssembler builds a PDF document around a raster.
type DocumentAssembler interface {
	Ready() bool
	Assemble(r Raster) ([]byte, error)
}

// ArtifactSink stores a finished export and returns where it went.
type ArtifactSink interface {
	Save(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}
