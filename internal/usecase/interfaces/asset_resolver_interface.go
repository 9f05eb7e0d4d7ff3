package interfaces

import (
	"context"

	"planpaineis_propostas/internal/domain/entities"
)

// IAssetResolver turns image references into self-contained data URLs.
// It never fails; unresolvable references become a placeholder image.
type IAssetResolver interface {
	ResolveEmbeddable(ctx context.Context, ref string) string
	ResolveProposal(ctx context.Context, p entities.Proposal) entities.Proposal
}
