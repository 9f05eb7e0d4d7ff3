package interfaces

import (
	"context"
	"planpaineis_propostas/internal/domain/entities"
)

// ExportFormat selects the artifact produced by IDocumentExporter.
type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatHTML ExportFormat = "html"
)

// ExportedDocument is a written artifact.
type ExportedDocument struct {
	FileName    string
	ContentType string
	Location    string
	Data        []byte
}

// IDocumentExporter renders a composed proposal into a live document view and
// captures it as PDF or standalone HTML.
type IDocumentExporter interface {
	Export(ctx context.Context, p entities.Proposal, format ExportFormat, fileName string) (ExportedDocument, error)
}
