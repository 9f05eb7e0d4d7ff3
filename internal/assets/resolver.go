// Package assets converts image references into self-contained data URLs so a
// proposal can be rendered and exported without network access.
package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"

	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

// Resolver memoizes one resolution per distinct reference for its own lifetime.
type Resolver struct {
	loader Loader
	cache  Cache
	group  singleflight.Group
}

var _ interfaces.IAssetResolver = (*Resolver)(nil)

// NewResolver builds a Resolver. A nil cache means an unbounded MemoryCache.
func NewResolver(loader Loader, cache Cache) *Resolver {
	if cache == nil {
		cache = NewMemoryCache(Unbounded())
	}
	return &Resolver{loader: loader, cache: cache}
}

// ResolveEmbeddable returns ref as a PNG data URL, or Placeholder when the
// image cannot be loaded or decoded. It never fails.
func (r *Resolver) ResolveEmbeddable(ctx context.Context, ref string) string {
	if ref == "" {
		return Placeholder
	}
	if IsEmbeddable(ref) {
		return ref
	}
	if v, ok := r.cache.Get(ctx, ref); ok {
		return v
	}
	if ctx.Err() != nil {
		return Placeholder
	}

	// The shared load outlives any single caller; the loader's own timeout
	// bounds it. Each caller stops waiting when its own ctx ends.
	shared := context.WithoutCancel(ctx)
	ch := r.group.DoChan(ref, func() (interface{}, error) {
		if v, ok := r.cache.Get(shared, ref); ok {
			return v, nil
		}
		return r.resolve(shared, ref), nil
	})
	select {
	case res := <-ch:
		return res.Val.(string)
	case <-ctx.Done():
		return Placeholder
	}
}

func (r *Resolver) resolve(ctx context.Context, ref string) string {
	data, err := r.loader.Load(ctx, ref)
	if err != nil {
		log.Printf("[assets][resolver] load failed ref=%s err=%v", ref, err)
		if errors.Is(err, context.Canceled) {
			return Placeholder
		}
		return r.fallback(ctx, ref)
	}

	encoded, err := Rasterize(data)
	if err != nil {
		log.Printf("[assets][resolver] rasterize failed ref=%s err=%v", ref, err)
		return r.fallback(ctx, ref)
	}

	r.cache.Set(ctx, ref, encoded)
	return encoded
}

// fallback memoizes the placeholder for a reference that failed to load or
// decode.
func (r *Resolver) fallback(ctx context.Context, ref string) string {
	r.cache.Set(ctx, ref, Placeholder)
	return Placeholder
}

// Rasterize decodes a PNG, JPEG or GIF and re-encodes it as a PNG data URL.
func Rasterize(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ResolveProposal returns a copy of p whose company logo, cover image and
// product images are all embeddable.
func (r *Resolver) ResolveProposal(ctx context.Context, p entities.Proposal) entities.Proposal {
	out := p
	out.Company.Logo = r.ResolveEmbeddable(ctx, p.Company.Logo)
	out.Details.CoverImageURL = r.ResolveEmbeddable(ctx, p.Details.CoverImageURL)

	out.BudgetOptions = make([]entities.ProposalBudgetOption, len(p.BudgetOptions))
	for i, opt := range p.BudgetOptions {
		resolved := opt
		resolved.Items = make([]entities.ProposalItem, len(opt.Items))
		for j, it := range opt.Items {
			it.Product = it.Product.Clone()
			if it.ImageURL != "" {
				it.ImageURL = r.ResolveEmbeddable(ctx, it.ImageURL)
			}
			resolved.Items[j] = it
		}
		out.BudgetOptions[i] = resolved
	}
	return out
}
