package infra

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lowtide-records/label-api/internal/ports"
)

func TestPrintifyMissingTokenFailsFast(t *testing.T) {
	c := NewPrintifyClient("", "")

	_, err := c.GetProduct(context.Background(), "1", "p1")
	if !errors.Is(err, ports.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestPrintifyDefaultShopPrefersConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected call to %s", r.URL.Path)
	}))
	defer srv.Close()

	c := NewPrintifyClientWithBaseURL("token", "configured-shop", srv.URL)

	shopID, err := c.DefaultShopID(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if shopID != "configured-shop" {
		t.Errorf("shopID = %q", shopID)
	}
}

func TestPrintifyDefaultShopResolvesFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shops.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("auth = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 8675309, "title": "Lowtide Merch"},
			{"id": 999, "title": "Old shop"},
		})
	}))
	defer srv.Close()

	c := NewPrintifyClientWithBaseURL("token", "", srv.URL)

	shopID, err := c.DefaultShopID(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if shopID != "8675309" {
		t.Errorf("shopID = %q, want 8675309", shopID)
	}
}

func TestPrintifyGetProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shops/42/products/p1.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "p1",
			"title": "Tour Tee",
			"variants": []map[string]any{
				{"id": 11, "title": "M / Black", "price": 2500, "is_enabled": true},
			},
		})
	}))
	defer srv.Close()

	c := NewPrintifyClientWithBaseURL("token", "", srv.URL)

	p, err := c.GetProduct(context.Background(), "42", "p1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Tour Tee" {
		t.Errorf("title = %q", p.Title)
	}
	if len(p.Variants) != 1 || p.Variants[0].Price != 2500 {
		t.Errorf("variants = %+v", p.Variants)
	}
}

func TestPrintifyErrorNormalization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer srv.Close()

	c := NewPrintifyClientWithBaseURL("token", "", srv.URL)

	_, err := c.ListProducts(context.Background(), "42", 1, 24)

	var upstream *ports.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstream.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", upstream.Status)
	}
	detail, ok := upstream.Detail.(map[string]any)
	if !ok || detail["error"] != "invalid token" {
		t.Errorf("detail = %v", upstream.Detail)
	}
}

func TestPrintifyNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>nginx</html>"))
	}))
	defer srv.Close()

	c := NewPrintifyClientWithBaseURL("token", "", srv.URL)

	_, err := c.ListProducts(context.Background(), "42", 1, 24)

	var upstream *ports.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstream.Detail != "<html>nginx</html>" {
		t.Errorf("detail = %v", upstream.Detail)
	}
}
