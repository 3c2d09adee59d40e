// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flamego/flamego"
)

func TestTemplateFuncs(t *testing.T) {
	t.Parallel()

	funcs := templateFuncs()

	deref := funcs["deref"].(func(*bool) bool)
	if deref(nil) {
		t.Fatal("expected nil pointer to be false")
	}

	truthy := true
	if !deref(&truthy) {
		t.Fatal("expected true pointer to be true")
	}

	falsy := false
	if deref(&falsy) {
		t.Fatal("expected false pointer to be false")
	}

	fmtValue := funcs["fmtValue"].(func(*float64) string)
	if got := fmtValue(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}

	value := 5.6
	if got := fmtValue(&value); got != "5.6" {
		t.Fatalf("unexpected formatted value: %q", got)
	}

	whole := 92.0
	if got := fmtValue(&whole); got != "92" {
		t.Fatalf("expected trailing zeros dropped, got %q", got)
	}
}

func TestConfigureEmptyNotFoundHandlerReturnsStatusOnly(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestNewWebAppServesLogin(t *testing.T) {
	f, err := newWebApp()
	if err != nil {
		t.Fatalf("newWebApp failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected login page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "passphrase") {
		t.Fatalf("expected passphrase form in login page")
	}
}

func TestNewWebAppRedirectsUnauthenticated(t *testing.T) {
	f, err := newWebApp()
	if err != nil {
		t.Fatalf("newWebApp failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("expected redirect to login, got %d %q", rec.Code, got)
	}
}
