// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/promodex/promodex/internal/config"
	"github.com/promodex/promodex/internal/engine"
	"github.com/promodex/promodex/internal/models"
	"github.com/promodex/promodex/internal/store"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// newTestHandler builds a handler over a small fixed dataset:
//
//	p1: 100/40, women, 6 carts 2 purchases -> 15% discount granted
//	p2: 80/50, women, no events            -> 404
//	p3: 60/30, women, 1 view               -> no discount, alternatives
//	p4: 40/20, women, cheaper than p3
func newTestHandler() *Handler {
	catalog := store.NewCatalogStore([]models.CatalogEntry{
		{ProductID: "p1", Name: "Cotton Top", Price: money("100"), Cost: money("40"), Category: "women"},
		{ProductID: "p2", Name: "Linen Top", Price: money("80"), Cost: money("50"), Category: "women"},
		{ProductID: "p3", Name: "Silk Top", Price: money("60"), Cost: money("30"), Category: "women"},
		{ProductID: "p4", Name: "Basic Top", Price: money("40"), Cost: money("20"), Category: "women"},
	})

	now := time.Now()
	var events []models.BehavioralEvent
	for i := 0; i < 6; i++ {
		events = append(events, models.BehavioralEvent{ProductID: "p1", Kind: models.EventCart, Time: now})
	}
	events = append(events,
		models.BehavioralEvent{ProductID: "p1", Kind: models.EventPurchase, Time: now},
		models.BehavioralEvent{ProductID: "p1", Kind: models.EventPurchase, Time: now},
		models.BehavioralEvent{ProductID: "p3", Kind: models.EventView, Time: now},
	)
	eventStore := store.NewEventStore(events)

	cfg := &config.Config{}
	return NewHandler(engine.New(catalog, eventStore), catalog, eventStore, cfg)
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v\nbody: %s", err, body.String())
	}
	return resp
}

func TestCatalogHandler(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	h.Catalog(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag header missing")
	}

	resp := decodeEnvelope(t, rec.Body)
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}

	products, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("data is %T, want array", resp.Data)
	}
	if len(products) != 4 {
		t.Errorf("len(products) = %d, want 4", len(products))
	}

	first, _ := products[0].(map[string]interface{})
	if first["product_id"] != "p1" || first["product_name"] != "Cotton Top" {
		t.Errorf("first product = %v", first)
	}
	if first["price"] != float64(100) {
		t.Errorf("price = %v, want 100", first["price"])
	}
}

func TestDiscountHandlerGranted(t *testing.T) {
	h := newTestHandler()

	body := strings.NewReader(`{"product_id": "p1"}`)
	req := httptest.NewRequest("POST", "/api/v1/discount", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Discount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec.Body)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want object", resp.Data)
	}

	if data["product_id"] != "p1" {
		t.Errorf("product_id = %v", data["product_id"])
	}
	if data["carts"] != float64(6) || data["purchases"] != float64(2) {
		t.Errorf("counts = carts:%v purchases:%v", data["carts"], data["purchases"])
	}
	if data["suggested_discount_amount"] != float64(15) {
		t.Errorf("suggested_discount_amount = %v, want 15", data["suggested_discount_amount"])
	}
	if data["suggested_discount_percent"] != float64(15) {
		t.Errorf("suggested_discount_percent = %v, want 15", data["suggested_discount_percent"])
	}
	if data["max_safe_discount"] != float64(42) {
		t.Errorf("max_safe_discount = %v, want 42", data["max_safe_discount"])
	}

	alternatives, ok := data["cheaper_alternatives"].([]interface{})
	if !ok {
		t.Fatalf("cheaper_alternatives is %T, want array", data["cheaper_alternatives"])
	}
	if len(alternatives) != 0 {
		t.Errorf("granted discount should carry no alternatives, got %d", len(alternatives))
	}
}

func TestDiscountHandlerAlternatives(t *testing.T) {
	h := newTestHandler()

	body := strings.NewReader(`{"product_id": "p3"}`)
	req := httptest.NewRequest("POST", "/api/v1/discount", body)
	rec := httptest.NewRecorder()
	h.Discount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec.Body)
	data := resp.Data.(map[string]interface{})

	if data["suggested_discount_amount"] != float64(0) {
		t.Errorf("suggested_discount_amount = %v, want 0", data["suggested_discount_amount"])
	}

	alternatives, _ := data["cheaper_alternatives"].([]interface{})
	if len(alternatives) != 1 {
		t.Fatalf("len(alternatives) = %d, want 1", len(alternatives))
	}
	alt := alternatives[0].(map[string]interface{})
	if alt["product_id"] != "p4" || alt["product_name"] != "Basic Top" || alt["price"] != float64(40) {
		t.Errorf("alternative = %v", alt)
	}
}

func TestDiscountHandlerNotFound(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name      string
		productID string
	}{
		{"absent from catalog", "p99"},
		{"cataloged but no events", "p2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(`{"product_id": "` + tt.productID + `"}`)
			req := httptest.NewRequest("POST", "/api/v1/discount", body)
			rec := httptest.NewRecorder()
			h.Discount(rec, req)

			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}

			resp := decodeEnvelope(t, rec.Body)
			if resp.Status != "error" || resp.Error == nil {
				t.Fatalf("expected error envelope, got %+v", resp)
			}
			if resp.Error.Code != "NOT_FOUND" {
				t.Errorf("code = %q, want NOT_FOUND", resp.Error.Code)
			}
			if resp.Error.Message != "Product not found in event data or catalog" {
				t.Errorf("message = %q", resp.Error.Message)
			}
		})
	}
}

func TestDiscountHandlerValidation(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"missing product_id", `{}`},
		{"empty product_id", `{"product_id": ""}`},
		{"malformed json", `{"product_id": `},
		{"oversized product_id", `{"product_id": "` + strings.Repeat("x", 65) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/discount", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Discount(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			resp := decodeEnvelope(t, rec.Body)
			if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("error = %+v, want VALIDATION_ERROR", resp.Error)
			}
		})
	}
}

func TestScanHandler(t *testing.T) {
	h := newTestHandler()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "shirt.jpg")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("not really a jpeg"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/scan", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Scan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec.Body)
	data := resp.Data.(map[string]interface{})
	matches, _ := data["matches"].([]interface{})
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	first := matches[0].(map[string]interface{})
	if first["name"] != "Women Round Neck Cotton Top" || first["price"] != float64(100) {
		t.Errorf("first match = %v", first)
	}
}

func TestScanHandlerMissingFile(t *testing.T) {
	h := newTestHandler()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("note", "no image here")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/scan", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Scan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	resp := decodeEnvelope(t, rec.Body)
	if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", resp.Error)
	}
}

func TestHealthHandlers(t *testing.T) {
	h := newTestHandler()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest("GET", "/api/v1/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		resp := decodeEnvelope(t, rec.Body)
		data := resp.Data.(map[string]interface{})
		if data["status"] != "healthy" {
			t.Errorf("health status = %v", data["status"])
		}
		if data["catalog_products"] != float64(4) {
			t.Errorf("catalog_products = %v, want 4", data["catalog_products"])
		}
		if data["behavioral_events"] != float64(9) {
			t.Errorf("behavioral_events = %v, want 9", data["behavioral_events"])
		}
	})

	t.Run("live", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HealthLive(rec, httptest.NewRequest("GET", "/api/v1/health/live", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("ready", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HealthReady(rec, httptest.NewRequest("GET", "/api/v1/health/ready", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("ready with empty catalog", func(t *testing.T) {
		empty := store.NewCatalogStore(nil)
		events := store.NewEventStore(nil)
		handler := NewHandler(engine.New(empty, events), empty, events, &config.Config{})

		rec := httptest.NewRecorder()
		handler.HealthReady(rec, httptest.NewRequest("GET", "/api/v1/health/ready", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}

		resp := decodeEnvelope(t, rec.Body)
		if resp.Error == nil || resp.Error.Code != "NOT_READY" {
			t.Errorf("error = %+v, want NOT_READY", resp.Error)
		}
	})
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"p1", "p1"},
		{"line1\nline2", `line1\x0aline2`},
		{"tab\there", `tab\x09here`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.input); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
