package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"empty accept defaults", "", DefaultAPIVersion},
		{"non-vendor accept defaults", "application/json", DefaultAPIVersion},
		{"vendor v1", "application/vnd.asenum.v1+json", "v1"},
		{"vendor v1 in list", "text/html, application/vnd.asenum.v1+json", "v1"},
		{"vendor v2 unsupported defaults", "application/vnd.asenum.v2+json", DefaultAPIVersion},
		{"vendor malformed defaults", "application/vnd.asenum.vBAD+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Fatalf("negotiateAPIVersion(Accept=%q) = %q, want %q", tt.accept, got, tt.want)
			}
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1", true},
		{"v2", false},
		{"", false},
		{"nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			if got := isValidAPIVersion(tt.version); got != tt.want {
				t.Fatalf("isValidAPIVersion(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestAPIVersionFromContext(t *testing.T) {
	if got := APIVersionFromContext(context.Background()); got != DefaultAPIVersion {
		t.Errorf("expected default version, got %q", got)
	}

	ctx := context.WithValue(context.Background(), contextKeyAPIVersion, "v1")
	if got := APIVersionFromContext(ctx); got != "v1" {
		t.Errorf("expected v1, got %q", got)
	}
}
