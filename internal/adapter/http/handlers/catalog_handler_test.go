package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"planpaineis_propostas/internal/adapter/http/handlers/mocks"
	"planpaineis_propostas/internal/domain/entities"
	"planpaineis_propostas/internal/usecase"
	"planpaineis_propostas/internal/usecase/interfaces"
	"planpaineis_propostas/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/catalog", h.FetchAll)
	r.GET("/v1/profiles", h.ListProfiles)
	r.POST("/v1/profiles", h.CreateProfile)
	r.PUT("/v1/profiles/:id", h.UpdateProfile)
	r.DELETE("/v1/profiles/:id", h.DeleteProfile)
	r.POST("/v1/products", h.CreateProduct)
	r.DELETE("/v1/covers/:id", h.DeleteCover)
	r.POST("/v1/assets", h.UploadAsset)
	return r, uc
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func multipartBody(t *testing.T, data string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if data != "" {
		if err := mw.WriteField(formFieldData, data); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile(formFieldFile, fileName)
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		_, _ = fw.Write(content)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestCatalogHandler_FetchAll(t *testing.T) {
	t.Run("store error", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().FetchAll(gomock.Any()).Return(entities.Catalog{}, pkg.NewStoreError("list", "products", errors.New("down")))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "STORE_ERROR" || body.Details != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().FetchAll(gomock.Any()).Return(entities.Catalog{
			Products: []entities.Product{{ID: 1, Name: "Painel"}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string][]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body["products"]) != 1 || body["salesProfiles"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_CreateProfile(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCatalogRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		r, _ := newCatalogRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewBufferString(`{"profileName":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("json success", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().AddProfile(gomock.Any(), gomock.Any(), nil).
			DoAndReturn(func(_ any, p entities.SalesProfile, _ *usecase.Upload) (entities.SalesProfile, error) {
				if p.Name != "PlanPaineis" || p.ID != 0 {
					t.Fatalf("unexpected profile: %+v", p)
				}
				p.ID = 4
				return p, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewBufferString(`{"name":" PlanPaineis "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("multipart with logo", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().AddProfile(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ any, p entities.SalesProfile, logo *usecase.Upload) (entities.SalesProfile, error) {
				if logo.FileName != "logo.png" {
					t.Fatalf("unexpected file name %q", logo.FileName)
				}
				b, _ := io.ReadAll(logo.Body)
				if string(b) != "png-bytes" {
					t.Fatalf("unexpected file content %q", b)
				}
				p.ID = 1
				p.Logo = "https://cdn/1.png"
				return p, nil
			})

		body, ct := multipartBody(t, `{"name":"PlanPaineis"}`, "logo.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/profiles", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().AddProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.SalesProfile{}, &pkg.UploadError{FileName: "logo.png", Err: errors.New("denied")})

		body, ct := multipartBody(t, `{"name":"PlanPaineis"}`, "logo.png", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/v1/profiles", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway || decodeError(t, w).Code != "UPLOAD_ERROR" {
			t.Fatalf("expected UPLOAD_ERROR 502, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestCatalogHandler_UpdateProfile(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := newCatalogRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/profiles/abc", bytes.NewBufferString(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), nil).
			Return(entities.SalesProfile{}, pkg.NewStoreError("update", "sales_profiles", interfaces.ErrRecordNotFound))

		req := httptest.NewRequest(http.MethodPut, "/v1/profiles/9", bytes.NewBufferString(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound || decodeError(t, w).Code != "NOT_FOUND" {
			t.Fatalf("expected NOT_FOUND 404, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestCatalogHandler_CreateProduct_InvalidPrice(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().AddProduct(gomock.Any(), gomock.Any(), nil).Return(entities.Product{}, usecase.ErrInvalidPrice)

	req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"name":"Painel","price":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCatalogHandler_Delete(t *testing.T) {
	r, uc := newCatalogRouter(t)
	uc.EXPECT().DeleteProfile(gomock.Any(), int64(3)).Return(nil)
	uc.EXPECT().DeleteCover(gomock.Any(), int64(5)).Return(interfaces.ErrRecordNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/profiles/3", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/covers/5", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCatalogHandler_UploadAsset(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		r, _ := newCatalogRouter(t)

		body, ct := multipartBody(t, "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/assets", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCatalogRouter(t)
		uc.EXPECT().UploadAsset(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, up usecase.Upload) (string, error) {
				if up.FileName != "capa.jpg" {
					t.Fatalf("unexpected upload: %+v", up)
				}
				return "https://cdn/1700000000000.jpg", nil
			})

		body, ct := multipartBody(t, "", "capa.jpg", []byte("jpeg"))
		req := httptest.NewRequest(http.MethodPost, "/v1/assets", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["url"] != "https://cdn/1700000000000.jpg" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
