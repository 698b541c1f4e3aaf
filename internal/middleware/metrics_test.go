package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	reqctx "github.com/paullizer/WildfireRiskManagementAgent/internal/context"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/metrics"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	reg := metrics.NewMetricsRegistry(nil)
	r := chi.NewRouter()
	r.Use(MetricsMiddleware(reg))
	r.Get("/drone/status/{mission_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/drone/status/abc", nil))

	got := testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/drone/status/{mission_id}", "GET", "404"))
	if got != 1 {
		t.Errorf("Expected 1 request recorded for route pattern, got %v", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqctx.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "given-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if seen != "given-id" || rr.Header().Get("X-Request-ID") != "given-id" {
		t.Errorf("Expected propagated id, got ctx=%q header=%q", seen, rr.Header().Get("X-Request-ID"))
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if seen == "" || seen == "given-id" || rr.Header().Get("X-Request-ID") != seen {
		t.Errorf("Expected generated id, got ctx=%q header=%q", seen, rr.Header().Get("X-Request-ID"))
	}
}

func TestMetricsMiddleware_SeriesBoundedForUnknownPaths(t *testing.T) {
	reg := metrics.NewMetricsRegistry(nil)
	r := chi.NewRouter()
	r.Use(MetricsMiddleware(reg))
	r.Get("/drone/status/{mission_id}", func(w http.ResponseWriter, r *http.Request) {})

	for i := 0; i < 200; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", fmt.Sprintf("/junk-%d/x", i), nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("Expected status 404, got %d", rr.Code)
		}
	}

	if got := testutil.CollectAndCount(reg.HTTPRequestsInFlight); got != 1 {
		t.Errorf("Expected 1 in-flight series, got %d", got)
	}
	if got := testutil.ToFloat64(reg.HTTPRequestsInFlight); got != 0 {
		t.Errorf("Expected nothing in flight, got %v", got)
	}
	if got := testutil.CollectAndCount(reg.HTTPRequestsTotal); got != 1 {
		t.Errorf("Expected unknown paths to share one request series, got %d", got)
	}
}
