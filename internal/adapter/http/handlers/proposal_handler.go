package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	request "planpaineis_propostas/internal/adapter/http/dto/request"
	"planpaineis_propostas/internal/usecase"
	"planpaineis_propostas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// HeaderDocumentLocation carries where the exported file was written.
const HeaderDocumentLocation = "X-Document-Location"

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// Preview godoc
// @Summary      Compose a proposal
// @Description  Resolves the profile and cover and prices every budget option.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        proposal  body      request.ProposalRequest  true  "Proposal form"
// @Success      200       {object}  entities.Proposal
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /proposals/preview [post]
func (h *ProposalHandler) Preview(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	in, err := payload.ToComposeInput()
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	proposal, err := h.usecase.Compose(c.Request.Context(), in)
	if err != nil {
		log.Printf("[proposal][handler] compose failed err=%v", err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// Export godoc
// @Summary      Export a proposal
// @Description  Composes the proposal and returns it as a PDF or standalone HTML file.
// @Tags         proposals
// @Accept       json
// @Produce      application/pdf,text/html
// @Param        format    query     string                 false  "pdf or html"  default(pdf)
// @Param        proposal  body      request.ExportRequest  true   "Proposal form"
// @Success      200       {file}    file
// @Failure      400       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /proposals/export [post]
func (h *ProposalHandler) Export(c *gin.Context) {
	format := interfaces.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(interfaces.ExportFormatPDF))))

	var payload request.ExportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	in, err := payload.ToComposeInput()
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	ctx := c.Request.Context()
	proposal, err := h.usecase.Compose(ctx, in)
	if err != nil {
		log.Printf("[proposal][handler] compose failed err=%v", err)
		abortWith(c, mapError(err))
		return
	}

	doc, err := h.usecase.Export(ctx, proposal, format, payload.FileName)
	if err != nil {
		log.Printf("[proposal][handler] export failed format=%s err=%v", format, err)
		abortWith(c, mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	if doc.Location != "" {
		c.Header(HeaderDocumentLocation, doc.Location)
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
