package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planpaineis_propostas/internal/app"

	"github.com/gin-gonic/gin"
)

func TestConfigErrorRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := configErrorRouter([]string{"STORE_ENDPOINT", "STORE_CREDENTIAL"})

	for _, path := range []string{"/", "/v1/ping", "/v1/catalog"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s: expected 503, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "<code>STORE_CREDENTIAL</code>") {
			t.Fatalf("%s: missing key not listed: %s", path, w.Body.String())
		}
	}
}

func TestGetRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	getRoutes(r, &app.App{})

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /v1/ping",
		"GET /v1/catalog",
		"POST /v1/assets",
		"GET /v1/profiles",
		"PUT /v1/products/:id",
		"DELETE /v1/covers/:id",
		"POST /v1/migration/run",
	} {
		if !registered[want] {
			t.Fatalf("route %s not registered", want)
		}
	}
	if registered["POST /v1/proposals/export"] {
		t.Fatalf("proposal routes need a proposal use case")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
