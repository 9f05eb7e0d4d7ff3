// Package pdf turns a captured raster into a single-page PDF.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"planpaineis_propostas/internal/renderer"
)

var ErrEmptyRaster = errors.New("empty raster")

const imageName = "capture"

// Assembler lays the raster on one page whose size in points equals the
// raster size in pixels, with no margins.
type Assembler struct{}

var _ renderer.DocumentAssembler = Assembler{}

func NewAssembler() Assembler { return Assembler{} }

func (Assembler) Ready() bool { return true }

func (Assembler) Assemble(r renderer.Raster) ([]byte, error) {
	if len(r.PNG) == 0 || r.Width <= 0 || r.Height <= 0 {
		return nil, ErrEmptyRaster
	}
	w, h := float64(r.Width), float64(r.Height)

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(r.PNG))
	doc.ImageOptions(imageName, 0, 0, w, h, false, opt, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
