// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestRouter() http.Handler {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = []string{"*"}
	router := NewRouter(newTestHandler(), NewChiMiddleware(mwConfig))
	return router.SetupChi()
}

func TestRouterRoutes(t *testing.T) {
	srv := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"catalog", "GET", "/api/v1/catalog", "", http.StatusOK},
		{"discount by path", "GET", "/api/v1/discount/p1", "", http.StatusOK},
		{"discount by body", "POST", "/api/v1/discount", `{"product_id": "p1"}`, http.StatusOK},
		{"discount unknown product", "GET", "/api/v1/discount/p99", "", http.StatusNotFound},
		{"health", "GET", "/api/v1/health", "", http.StatusOK},
		{"health live", "GET", "/api/v1/health/live", "", http.StatusOK},
		{"health ready", "GET", "/api/v1/health/ready", "", http.StatusOK},
		{"metrics", "GET", "/metrics", "", http.StatusOK},
		{"unknown route", "GET", "/api/v1/nope", "", http.StatusNotFound},
		{"wrong method", "DELETE", "/api/v1/catalog", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s = %d, want %d\nbody: %s", tt.method, tt.path, rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRouterRequestID(t *testing.T) {
	srv := newTestRouter()

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header not set")
		}
	})

	t.Run("preserved from upstream", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		req.Header.Set("X-Request-ID", "upstream-id-1")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "upstream-id-1" {
			t.Errorf("X-Request-ID = %q, want upstream-id-1", got)
		}
	})
}

func TestRouterCORSPreflight(t *testing.T) {
	srv := newTestRouter()

	req := httptest.NewRequest("OPTIONS", "/api/v1/discount", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouterRateLimitDisabled(t *testing.T) {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = []string{"*"}
	mwConfig.RateLimitRequests = 1
	mwConfig.RateLimitDisabled = true
	router := NewRouter(newTestHandler(), NewChiMiddleware(mwConfig))
	srv := router.SetupChi()

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}

func TestRouterRateLimitEnforced(t *testing.T) {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = []string{"*"}
	mwConfig.RateLimitRequests = 2
	mwConfig.RateLimitWindow = time.Minute
	router := NewRouter(newTestHandler(), NewChiMiddleware(mwConfig))
	srv := router.SetupChi()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		req.RemoteAddr = "10.1.2.3:1234"
		last = httptest.NewRecorder()
		srv.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}

	resp := decodeEnvelope(t, last.Body)
	if resp.Error == nil || resp.Error.Code != "RATE_LIMITED" {
		t.Errorf("error = %+v, want RATE_LIMITED", resp.Error)
	}
}
