package handlers

import (
	"log"
	"net/http"

	response "planpaineis_propostas/internal/adapter/http/dto/response"
	"planpaineis_propostas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MigrationHandler struct {
	usecase usecase.IMigrationUseCase
}

func NewMigrationHandler(uc usecase.IMigrationUseCase) *MigrationHandler {
	return &MigrationHandler{usecase: uc}
}

// Run godoc
// @Summary      Run the local data migration
// @Description  Copies the legacy local collections to the store once. A finished migration is a no-op.
// @Tags         migration
// @Produce      json
// @Success      200  {object}  response.MigrationResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /migration/run [post]
func (h *MigrationHandler) Run(c *gin.Context) {
	report, err := h.usecase.Run(c.Request.Context())
	if err != nil {
		log.Printf("[migration][handler] run failed err=%v", err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMigrationReport(report))
}

// Status godoc
// @Summary  Migration state
// @Tags     migration
// @Produce  json
// @Success  200  {object}  response.MigrationResponse
// @Router   /migration [get]
func (h *MigrationHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.MigrationResponse{
		State:    h.usecase.State().String(),
		Inserted: map[string]int{},
		Skipped:  map[string]int{},
	})
}
