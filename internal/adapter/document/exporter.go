package document

import (
	"context"
	"fmt"
	"log"

	"planpaineis_propostas/internal/adapter/view"
	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/renderer"
	"planpaineis_propostas/internal/usecase/interfaces"
)

// ViewOpener loads markup into a live document view. The returned func
// releases the view.
type ViewOpener interface {
	OpenView(ctx context.Context, html string) (renderer.View, func(), error)
}

type DocumentRenderer interface {
	ExportToPDF(ctx context.Context, v renderer.View, viewID, fileName string) (renderer.Artifact, error)
	ExportToHTML(ctx context.Context, v renderer.View, viewID, fileName string) (renderer.Artifact, error)
}

// Exporter renders the proposal view, opens it and exports it.
type Exporter struct {
	views    ViewOpener
	renderer DocumentRenderer
}

var _ interfaces.IDocumentExporter = (*Exporter)(nil)

func NewExporter(views ViewOpener, r DocumentRenderer) *Exporter {
	return &Exporter{views: views, renderer: r}
}

func (e *Exporter) Export(ctx context.Context, p entities.Proposal, format interfaces.ExportFormat, fileName string) (interfaces.ExportedDocument, error) {
	markup, err := view.RenderProposalHTML(p)
	if err != nil {
		return interfaces.ExportedDocument{}, err
	}

	// The view carries the same head as the HTML export so the raster capture
	// gets the palette, fonts and print rules too.
	v, release, err := e.views.OpenView(ctx, string(renderer.StandaloneHTML(markup)))
	if err != nil {
		log.Printf("[document][exporter] open view failed file=%s err=%v", fileName, err)
		return interfaces.ExportedDocument{}, fmt.Errorf("open view: %w", err)
	}
	defer release()

	var art renderer.Artifact
	switch format {
	case interfaces.ExportFormatPDF:
		art, err = e.renderer.ExportToPDF(ctx, v, view.RootID, fileName)
	case interfaces.ExportFormatHTML:
		art, err = e.renderer.ExportToHTML(ctx, v, view.RootID, fileName)
	default:
		return interfaces.ExportedDocument{}, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return interfaces.ExportedDocument{}, err
	}
	return interfaces.ExportedDocument{
		FileName:    art.FileName,
		ContentType: art.ContentType,
		Location:    art.Location,
		Data:        art.Data,
	}, nil
}
