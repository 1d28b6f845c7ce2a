package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biyonik/raffle-pix-api/internal/http/request"
	"github.com/biyonik/raffle-pix-api/internal/middleware"
)

func TestRouterMatchesStaticRoute(t *testing.T) {
	r := New()
	called := false
	r.GET("/api/raffles", func(w http.ResponseWriter, req *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/raffles", nil))

	if !called {
		t.Fatal("handler çağrılmadı")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestRouterExtractsRouteParams(t *testing.T) {
	r := New()
	var gotID string
	r.GET("/api/admin/raffles/{id}/stats", func(w http.ResponseWriter, req *http.Request) {
		gotID = request.New(req).RouteParam("id")
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/raffles/42/stats", nil))

	if gotID != "42" {
		t.Errorf("id = %q", gotID)
	}
}

func TestRouterMethodMismatchIs404(t *testing.T) {
	r := New()
	r.POST("/api/pix/generate", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pix/generate", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, beklenen 404", rec.Code)
	}
}

func TestRouterUnknownPathIs404(t *testing.T) {
	r := New()
	r.GET("/api/raffles", func(w http.ResponseWriter, req *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/raffles/extra/segment", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, beklenen 404", rec.Code)
	}
}

func TestRouterGroupPrefixAndMiddleware(t *testing.T) {
	r := New()

	var order []string
	groupMw := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	api := r.Group("/api")
	api.Use(groupMw("group"))
	api.GET("/raffles/{slug}", func(w http.ResponseWriter, req *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}).Middleware(groupMw("route"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/raffles/iphone-cekilisi", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	// Grup middleware'i route middleware'inden önce çalışmalı
	if len(order) != 3 || order[0] != "group" || order[1] != "route" || order[2] != "handler" {
		t.Errorf("çalışma sırası = %v", order)
	}
}

func TestRouterGlobalMiddlewareWrapsNotFound(t *testing.T) {
	r := New()
	headerSet := false
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			headerSet = true
			next.ServeHTTP(w, req)
		})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if !headerSet {
		t.Error("global middleware 404 yolunda da çalışmalı")
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}
