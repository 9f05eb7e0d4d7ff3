// Package browser hosts proposal views in a headless Chromium driven by rod.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"planpaineis_propostas/internal/renderer"
)

var ErrBrowserNotReady = errors.New("browser not ready")

// Browser owns one Chromium process. It becomes Ready once Start has
// connected in the background.
type Browser struct {
	bin string

	mu    sync.Mutex
	rod   *rod.Browser
	ready atomic.Bool
	err   error
}

// New returns an unstarted Browser. An empty bin lets the launcher find or
// download a Chromium build.
func New(bin string) *Browser {
	return &Browser{bin: bin}
}

// Start launches the browser without blocking the caller.
func (b *Browser) Start() {
	go func() {
		if err := b.start(); err != nil {
			log.Printf("[browser] launch failed err=%v", err)
			return
		}
		log.Printf("[browser] ready")
	}()
}

func (b *Browser) start() error {
	l := launcher.New().Headless(true).Leakless(false)
	if b.bin != "" {
		l = l.Bin(b.bin)
	}
	u, err := l.Launch()
	if err != nil {
		b.setErr(err)
		return fmt.Errorf("launch chromium: %w", err)
	}

	rb := rod.New().ControlURL(u)
	if err := rb.Connect(); err != nil {
		b.setErr(err)
		return fmt.Errorf("connect chromium: %w", err)
	}

	b.mu.Lock()
	b.rod = rb
	b.mu.Unlock()
	b.ready.Store(true)
	return nil
}

func (b *Browser) setErr(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

func (b *Browser) Ready() bool { return b.ready.Load() }

// Err is the launch failure, if any.
func (b *Browser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.rod == nil {
		return nil
	}
	b.ready.Store(false)
	err := b.rod.Close()
	b.rod = nil
	return err
}

// OpenView loads html into a fresh page and waits for it to finish loading.
// The returned close func releases the page.
func (b *Browser) OpenView(ctx context.Context, html string) (renderer.View, func(), error) {
	b.mu.Lock()
	rb := b.rod
	b.mu.Unlock()
	if rb == nil || !b.Ready() {
		return nil, nil, ErrBrowserNotReady
	}

	page, err := rb.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, nil, fmt.Errorf("open page: %w", err)
	}
	closePage := func() {
		if err := page.Close(); err != nil {
			log.Printf("[browser] close page err=%v", err)
		}
	}

	p := page.Context(ctx)
	if err := p.SetDocumentContent(html); err != nil {
		closePage()
		return nil, nil, fmt.Errorf("set document: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		closePage()
		return nil, nil, fmt.Errorf("wait load: %w", err)
	}
	return &PageView{page: page}, closePage, nil
}
