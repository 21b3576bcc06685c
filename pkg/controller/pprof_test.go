package controller_test

import (
	"catalog/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newPprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	controller.MountPprof(mux, "/internal/pprof/")

	return mux
}

func TestMountPprof_Index(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/internal/pprof/", nil)
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, req)
	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct == "" {
		t.Errorf("expected Content-Type to be set")
	}
}

func TestMountPprof_NamedProfile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/internal/pprof/goroutine?debug=1", nil)
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestMountPprof_Cmdline_OK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/internal/pprof/cmdline", nil)
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
