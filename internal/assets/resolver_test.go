package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"planpaineis_propostas/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls atomic.Int32
	data  []byte
	err   error
}

func (l *countingLoader) Load(_ context.Context, _ string) ([]byte, error) {
	l.calls.Add(1)
	return l.data, l.err
}

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResolveEmbeddable_EmptyRef(t *testing.T) {
	loader := &countingLoader{}
	r := NewResolver(loader, nil)

	assert.Equal(t, Placeholder, r.ResolveEmbeddable(context.Background(), ""))
	assert.Zero(t, loader.calls.Load())
}

func TestResolveEmbeddable_AlreadyEmbeddable(t *testing.T) {
	loader := &countingLoader{}
	r := NewResolver(loader, nil)
	ref := "data:image/jpeg;base64,AAAA"

	assert.Equal(t, ref, r.ResolveEmbeddable(context.Background(), ref))
	assert.Zero(t, loader.calls.Load())
}

func TestResolveEmbeddable_CacheHit(t *testing.T) {
	loader := &countingLoader{data: samplePNG(t)}
	r := NewResolver(loader, NewMemoryCache(Unbounded()))
	ctx := context.Background()

	first := r.ResolveEmbeddable(ctx, "https://cdn.example/a.png")
	second := r.ResolveEmbeddable(ctx, "https://cdn.example/a.png")

	assert.True(t, strings.HasPrefix(first, "data:image/png;base64,"))
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestResolveEmbeddable_LoadFailure(t *testing.T) {
	loader := &countingLoader{err: errors.New("connection refused")}
	r := NewResolver(loader, nil)
	ctx := context.Background()

	assert.Equal(t, Placeholder, r.ResolveEmbeddable(ctx, "https://unreachable.example/a.png"))
	assert.Equal(t, Placeholder, r.ResolveEmbeddable(ctx, "https://unreachable.example/a.png"))
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestResolveEmbeddable_RasterizeFailure(t *testing.T) {
	loader := &countingLoader{data: []byte("<html>not an image</html>")}
	r := NewResolver(loader, nil)

	assert.Equal(t, Placeholder, r.ResolveEmbeddable(context.Background(), "https://cdn.example/page"))
}

func TestResolveEmbeddable_CanceledContextNotMemoized(t *testing.T) {
	loader := &countingLoader{}
	r := NewResolver(loader, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, Placeholder, r.ResolveEmbeddable(ctx, "https://cdn.example/a.png"))

	assert.Zero(t, loader.calls.Load())

	loader.data = samplePNG(t)
	out := r.ResolveEmbeddable(context.Background(), "https://cdn.example/a.png")
	assert.NotEqual(t, Placeholder, out)
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestResolveEmbeddable_CanceledLoadErrorNotMemoized(t *testing.T) {
	loader := &countingLoader{err: context.Canceled}
	r := NewResolver(loader, nil)

	assert.Equal(t, Placeholder, r.ResolveEmbeddable(context.Background(), "https://cdn.example/a.png"))

	loader.err = nil
	loader.data = samplePNG(t)
	assert.NotEqual(t, Placeholder, r.ResolveEmbeddable(context.Background(), "https://cdn.example/a.png"))
	assert.Equal(t, int32(2), loader.calls.Load())
}

// gatedLoader blocks until release is closed or its ctx ends.
type gatedLoader struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	data    []byte
}

func (l *gatedLoader) Load(ctx context.Context, _ string) ([]byte, error) {
	if l.calls.Add(1) == 1 {
		close(l.started)
	}
	select {
	case <-l.release:
		return l.data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestResolveEmbeddable_FirstCallerCancelDoesNotFailOthers(t *testing.T) {
	loader := &gatedLoader{started: make(chan struct{}), release: make(chan struct{}), data: samplePNG(t)}
	r := NewResolver(loader, nil)
	ref := "https://cdn.example/a.png"

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan string, 1)
	go func() { first <- r.ResolveEmbeddable(ctx, ref) }()
	<-loader.started
	cancel()
	assert.Equal(t, Placeholder, <-first)

	second := make(chan string, 1)
	go func() { second <- r.ResolveEmbeddable(context.Background(), ref) }()
	close(loader.release)

	out := <-second
	assert.NotEqual(t, Placeholder, out)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"))
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestResolveEmbeddable_ConcurrentSameKey(t *testing.T) {
	loader := &countingLoader{data: samplePNG(t)}
	r := NewResolver(loader, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := r.ResolveEmbeddable(context.Background(), "https://cdn.example/a.png")
			assert.NotEqual(t, Placeholder, out)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, loader.calls.Load(), int32(16))
	assert.GreaterOrEqual(t, loader.calls.Load(), int32(1))
}

func TestResolveEmbeddable_HTTPLoader(t *testing.T) {
	body := samplePNG(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	r := NewResolver(NewHTTPLoader(srv.Client()), nil)
	ctx := context.Background()

	ok := r.ResolveEmbeddable(ctx, srv.URL+"/logo.png")
	assert.True(t, strings.HasPrefix(ok, "data:image/png;base64,"))
	assert.Equal(t, Placeholder, r.ResolveEmbeddable(ctx, srv.URL+"/missing.png"))

	r.ResolveEmbeddable(ctx, srv.URL+"/logo.png")
	r.ResolveEmbeddable(ctx, srv.URL+"/missing.png")
	assert.Equal(t, int32(2), hits.Load())
}

func TestResolveProposal(t *testing.T) {
	loader := &countingLoader{data: samplePNG(t)}
	r := NewResolver(loader, nil)

	in := entities.Proposal{
		Company: entities.Company{Logo: "https://cdn.example/logo.png"},
		Details: entities.ProposalDetails{CoverImageURL: ""},
		BudgetOptions: []entities.ProposalBudgetOption{{
			Items: []entities.ProposalItem{
				entities.NewProposalItem(entities.Product{ID: 1, Price: 10, ImageURL: "https://cdn.example/logo.png"}, 1),
				entities.NewProposalItem(entities.Product{ID: 2, Price: 10}, 1),
			},
		}},
	}

	out := r.ResolveProposal(context.Background(), in)

	assert.True(t, IsEmbeddable(out.Company.Logo))
	assert.Equal(t, Placeholder, out.Details.CoverImageURL)
	assert.True(t, IsEmbeddable(out.BudgetOptions[0].Items[0].ImageURL))
	assert.Empty(t, out.BudgetOptions[0].Items[1].ImageURL)
	assert.Equal(t, "https://cdn.example/logo.png", in.BudgetOptions[0].Items[0].ImageURL)
	assert.Equal(t, int32(1), loader.calls.Load())
}
