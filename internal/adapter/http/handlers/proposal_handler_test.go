package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planpaineis_propostas/internal/adapter/http/handlers/mocks"
	"planpaineis_propostas/internal/domain/budget"
	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/renderer"
	"planpaineis_propostas/internal/usecase"
	"planpaineis_propostas/internal/usecase/interfaces"
	"planpaineis_propostas/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProposalRouter(t *testing.T) (*gin.Engine, *mocks.MockIProposalUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc)

	r := gin.New()
	r.POST("/v1/proposals/preview", h.Preview)
	r.POST("/v1/proposals/export", h.Export)
	return r, uc
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProposalHandler_Preview(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newProposalRouter(t)
		if w := postJSON(r, "/v1/proposals/preview", "["); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid missing policy", func(t *testing.T) {
		r, _ := newProposalRouter(t)
		w := postJSON(r, "/v1/proposals/preview", `{"missingPolicy":"drop"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("profile not found", func(t *testing.T) {
		r, uc := newProposalRouter(t)
		uc.EXPECT().Compose(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, usecase.ErrProfileNotFound)

		w := postJSON(r, "/v1/proposals/preview", `{"profileId":99}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newProposalRouter(t)
		uc.EXPECT().Compose(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.ComposeInput) (entities.Proposal, error) {
				if in.ProfileID != 2 || in.MissingPolicy != budget.PlaceholderMissing || len(in.BudgetOptions) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Proposal{Client: entities.Client{Name: "Acme"}}, nil
			})

		w := postJSON(r, "/v1/proposals/preview",
			`{"profileId":2,"missingPolicy":"placeholder","budgetOptions":[{"months":12,"installments":1,"selectedProductIds":[1]}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"name":"Acme"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_Export(t *testing.T) {
	t.Run("pdf success", func(t *testing.T) {
		r, uc := newProposalRouter(t)
		proposal := entities.Proposal{Client: entities.Client{Name: "Acme"}}
		uc.EXPECT().Compose(gomock.Any(), gomock.Any()).Return(proposal, nil)
		uc.EXPECT().Export(gomock.Any(), proposal, interfaces.ExportFormatPDF, "proposta").
			Return(interfaces.ExportedDocument{
				FileName:    "proposta.pdf",
				ContentType: renderer.ContentTypePDF,
				Location:    "/out/abc/proposta.pdf",
				Data:        []byte("%PDF-1.3"),
			}, nil)

		w := postJSON(r, "/v1/proposals/export", `{"fileName":"proposta"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="proposta.pdf"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if w.Header().Get(HeaderDocumentLocation) != "/out/abc/proposta.pdf" {
			t.Fatalf("missing location header")
		}
		if w.Body.String() != "%PDF-1.3" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("html format from query", func(t *testing.T) {
		r, uc := newProposalRouter(t)
		uc.EXPECT().Compose(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, nil)
		uc.EXPECT().Export(gomock.Any(), gomock.Any(), interfaces.ExportFormatHTML, "").
			Return(interfaces.ExportedDocument{FileName: "Proposta-Cliente.html", ContentType: renderer.ContentTypeHTML, Data: []byte("<html>")}, nil)

		w := postJSON(r, "/v1/proposals/export?format=HTML", `{}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		r, uc := newProposalRouter(t)
		uc.EXPECT().Compose(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, nil)
		uc.EXPECT().Export(gomock.Any(), gomock.Any(), interfaces.ExportFormat("docx"), "").
			Return(interfaces.ExportedDocument{}, usecase.ErrInvalidExportFormat)

		if w := postJSON(r, "/v1/proposals/export?format=docx", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"capability timeout", &pkg.CapabilityTimeoutError{Timeout: time.Second, Missing: []string{"rasterizer"}}, http.StatusServiceUnavailable, "CAPABILITY_TIMEOUT"},
		{"capture error", &pkg.RenderCaptureError{Stage: "capture", Err: errors.New("boom")}, http.StatusInternalServerError, "RENDER_CAPTURE_ERROR"},
		{"view not found", renderer.ErrViewNotFound, http.StatusInternalServerError, "VIEW_NOT_FOUND"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newProposalRouter(t)
			uc.EXPECT().Compose(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, nil)
			uc.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ExportedDocument{}, tc.err)

			w := postJSON(r, "/v1/proposals/export", `{}`)
			if w.Code != tc.status || decodeError(t, w).Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, w.Code, w.Body.String())
			}
		})
	}
}
