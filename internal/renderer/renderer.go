// Package renderer exports a live proposal view as a single-page PDF or as a
// standalone HTML file.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"planpaineis_propostas/pkg"
)

const (
	DefaultCapabilityTimeout = 15 * time.Second
	capabilityPollInterval   = 100 * time.Millisecond

	captureScale = 2
	captureWidth = "1120px"

	ContentTypePDF  = "application/pdf"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Artifact is an exported document.
type Artifact struct {
	FileName    string
	ContentType string
	Location    string
	Data        []byte
}

type Renderer struct {
	rasterizer   Rasterizer
	assembler    DocumentAssembler
	sink         ArtifactSink
	timeout      time.Duration
	pollInterval time.Duration

	mu    sync.Mutex
	locks map[viewKey]*viewLock
}

type viewLock struct {
	mu   sync.Mutex
	refs int
}

type viewKey struct {
	view View
	id   string
}

type Option func(*Renderer)

// WithCapabilityTimeout bounds the wait for rasterizer and assembler.
func WithCapabilityTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func withPollInterval(d time.Duration) Option {
	return func(r *Renderer) { r.pollInterval = d }
}

func New(rasterizer Rasterizer, assembler DocumentAssembler, sink ArtifactSink, opts ...Option) *Renderer {
	r := &Renderer{
		rasterizer:   rasterizer,
		assembler:    assembler,
		sink:         sink,
		timeout:      DefaultCapabilityTimeout,
		pollInterval: capabilityPollInterval,
		locks:        make(map[viewKey]*viewLock),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// WaitForCapabilities polls until both the rasterizer and the assembler are
// ready, or fails with a CapabilityTimeoutError once timeout elapses.
func (r *Renderer) WaitForCapabilities(ctx context.Context, timeout time.Duration) error {
	if r.capabilitiesReady() {
		return nil
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(r.pollInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return &pkg.CapabilityTimeoutError{Timeout: timeout, Missing: r.missingCapabilities()}
		case <-tick.C:
			if r.capabilitiesReady() {
				return nil
			}
		}
	}
}

func (r *Renderer) capabilitiesReady() bool {
	return len(r.missingCapabilities()) == 0
}

func (r *Renderer) missingCapabilities() []string {
	var missing []string
	if r.rasterizer == nil || !r.rasterizer.Ready() {
		missing = append(missing, "rasterizer")
	}
	if r.assembler == nil || !r.assembler.Ready() {
		missing = append(missing, "pdf assembler")
	}
	return missing
}

// ExportToPDF captures the element viewID of view into a single-page PDF sized
// to the raster. The element and its parent are temporarily forced to an
// unclipped, fixed-width layout; their inline styles are restored on every
// exit path before any error is returned.
func (r *Renderer) ExportToPDF(ctx context.Context, view View, viewID, fileName string) (Artifact, error) {
	if err := r.WaitForCapabilities(ctx, r.timeout); err != nil {
		log.Printf("[renderer][pdf] capabilities unavailable view=%s err=%v", viewID, err)
		return Artifact{}, err
	}

	unlock := r.lockView(view, viewID)
	defer unlock()

	el, err := lookup(ctx, view, viewID)
	if err != nil {
		return Artifact{}, err
	}
	parent, err := el.Parent(ctx)
	if err != nil {
		return Artifact{}, &pkg.RenderCaptureError{Stage: "layout", Err: err}
	}

	overrides := []styleOverride{
		{el: el, prop: "max-height", value: "none"},
		{el: el, prop: "overflow-y", value: "visible"},
		{el: el, prop: "width", value: captureWidth},
	}
	if parent != nil {
		overrides = append(overrides, styleOverride{el: parent, prop: "overflow", value: "visible"})
	}

	data, err := r.capture(ctx, el, overrides)
	if err != nil {
		log.Printf("[renderer][pdf] export failed view=%s file=%s err=%v", viewID, fileName, err)
		return Artifact{}, err
	}

	location, err := r.sink.Save(ctx, fileName, ContentTypePDF, data)
	if err != nil {
		return Artifact{}, &pkg.RenderCaptureError{Stage: "write", Err: err}
	}
	log.Printf("[renderer][pdf] export success view=%s file=%s bytes=%d location=%s", viewID, fileName, len(data), location)
	return Artifact{FileName: fileName, ContentType: ContentTypePDF, Location: location, Data: data}, nil
}

func (r *Renderer) capture(ctx context.Context, el Element, overrides []styleOverride) ([]byte, error) {
	release, err := acquireStyles(ctx, overrides)
	if err != nil {
		return nil, &pkg.RenderCaptureError{Stage: "layout", Err: err}
	}
	defer release()

	raster, err := r.rasterizer.Capture(ctx, el, CaptureOptions{Scale: captureScale, AllowCrossOrigin: true})
	if err != nil {
		return nil, &pkg.RenderCaptureError{Stage: "capture", Err: err}
	}
	data, err := r.assembler.Assemble(raster)
	if err != nil {
		return nil, &pkg.RenderCaptureError{Stage: "assemble", Err: err}
	}
	return data, nil
}

// ExportToHTML serializes the current inner markup of viewID into a standalone
// HTML document.
func (r *Renderer) ExportToHTML(ctx context.Context, view View, viewID, fileName string) (Artifact, error) {
	el, err := lookup(ctx, view, viewID)
	if err != nil {
		return Artifact{}, err
	}
	inner, err := el.InnerHTML(ctx)
	if err != nil {
		return Artifact{}, fmt.Errorf("read view markup: %w", err)
	}

	data := StandaloneHTML(inner)
	location, err := r.sink.Save(ctx, fileName, ContentTypeHTML, data)
	if err != nil {
		return Artifact{}, fmt.Errorf("save html: %w", err)
	}
	log.Printf("[renderer][html] export success view=%s file=%s bytes=%d location=%s", viewID, fileName, len(data), location)
	return Artifact{FileName: fileName, ContentType: ContentTypeHTML, Location: location, Data: data}, nil
}

func lookup(ctx context.Context, view View, viewID string) (Element, error) {
	if view == nil {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, viewID)
	}
	el, err := view.Element(ctx, viewID)
	if err != nil {
		if errors.Is(err, ErrViewNotFound) {
			log.Printf("[renderer] view not found id=%s", viewID)
		}
		return nil, err
	}
	if el == nil {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, viewID)
	}
	return el, nil
}

// lockView serializes exports of the same element; two concurrent captures
// would otherwise race on its inline styles.
func (r *Renderer) lockView(view View, id string) func() {
	key := viewKey{view: view, id: id}
	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &viewLock{}
		r.locks[key] = l
	}
	l.refs++
	r.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		r.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(r.locks, key)
		}
		r.mu.Unlock()
	}
}
