package handlers

import (
	"errors"
	"net/http"

	"planpaineis_propostas/internal/adapter/http/dto/request"
	"planpaineis_propostas/internal/renderer"
	"planpaineis_propostas/internal/usecase"
	"planpaineis_propostas/internal/usecase/interfaces"
	"planpaineis_propostas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id", http.StatusBadRequest)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	var (
		migrationErr *pkg.MigrationError
		uploadErr    *pkg.UploadError
		storeErr     *pkg.StoreError
		timeoutErr   *pkg.CapabilityTimeoutError
		captureErr   *pkg.RenderCaptureError
	)
	switch {
	case errors.Is(err, usecase.ErrInvalidName),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrEmptyUpload),
		errors.Is(err, usecase.ErrInvalidBudgetOption),
		errors.Is(err, usecase.ErrInvalidExportFormat),
		errors.Is(err, request.ErrInvalidMissingPolicy):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound),
		errors.Is(err, usecase.ErrCoverNotFound),
		errors.Is(err, interfaces.ErrRecordNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Record not found", err, http.StatusNotFound)
	case errors.As(err, &timeoutErr):
		return pkg.NewDomainError("CAPABILITY_TIMEOUT", "Document rendering is not available yet", err, http.StatusServiceUnavailable)
	case errors.As(err, &captureErr):
		return pkg.NewDomainError("RENDER_CAPTURE_ERROR", "Failed to capture the document", err, http.StatusInternalServerError)
	case errors.Is(err, renderer.ErrViewNotFound):
		return pkg.NewDomainError("VIEW_NOT_FOUND", "Document view not found", err, http.StatusInternalServerError)
	case errors.As(err, &migrationErr):
		return pkg.NewDomainError("MIGRATION_ERROR", "Local data migration failed", err, http.StatusBadGateway)
	case errors.As(err, &uploadErr):
		return pkg.NewDomainError("UPLOAD_ERROR", "Failed to upload file", err, http.StatusBadGateway)
	case errors.As(err, &storeErr):
		return pkg.NewDomainError("STORE_ERROR", "Data store unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
