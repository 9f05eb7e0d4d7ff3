package browser

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/go-rod/rod/lib/proto"

	"planpaineis_propostas/internal/renderer"
)

// Rasterizer screenshots an element of a PageView. Screenshots read the
// composited page, so cross-origin images are always included.
type Rasterizer struct {
	browser *Browser
}

var _ renderer.Rasterizer = (*Rasterizer)(nil)

func NewRasterizer(b *Browser) *Rasterizer {
	return &Rasterizer{browser: b}
}

func (r *Rasterizer) Ready() bool { return r.browser != nil && r.browser.Ready() }

func (r *Rasterizer) Capture(ctx context.Context, el renderer.Element, opts renderer.CaptureOptions) (renderer.Raster, error) {
	be, ok := el.(*Element)
	if !ok {
		return renderer.Raster{}, fmt.Errorf("element %T does not belong to a browser page", el)
	}
	node := be.el.Context(ctx)

	box, err := node.Eval(`() => {
		const r = this.getBoundingClientRect();
		return { w: Math.ceil(Math.max(r.width, this.scrollWidth)), h: Math.ceil(Math.max(r.height, this.scrollHeight)) };
	}`)
	if err != nil {
		return renderer.Raster{}, fmt.Errorf("measure element: %w", err)
	}
	w, h := box.Value.Get("w").Int(), box.Value.Get("h").Int()
	if w <= 0 || h <= 0 {
		return renderer.Raster{}, fmt.Errorf("element has empty box %dx%d", w, h)
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	if err := node.Page().SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             w,
		Height:            h,
		DeviceScaleFactor: scale,
	}); err != nil {
		return renderer.Raster{}, fmt.Errorf("set viewport: %w", err)
	}

	data, err := node.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return renderer.Raster{}, fmt.Errorf("screenshot: %w", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return renderer.Raster{}, fmt.Errorf("decode screenshot: %w", err)
	}
	return renderer.Raster{PNG: data, Width: cfg.Width, Height: cfg.Height}, nil
}
