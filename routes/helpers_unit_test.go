// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/vitalboard/biomarkers"
)

type testSession struct {
	id    string
	data  map[interface{}]interface{}
	flash interface{}
}

func newTestSession() *testSession {
	return &testSession{
		id:   "test-session",
		data: make(map[interface{}]interface{}),
	}
}

func (s *testSession) ID() string {
	return s.id
}

func (s *testSession) RegenerateID(http.ResponseWriter, *http.Request) error {
	return nil
}

func (s *testSession) Get(key interface{}) interface{} {
	return s.data[key]
}

func (s *testSession) Set(key, val interface{}) {
	s.data[key] = val
}

func (s *testSession) SetFlash(val interface{}) {
	s.flash = val
}

func (s *testSession) Delete(key interface{}) {
	delete(s.data, key)
}

func (s *testSession) Flush() {
	s.data = make(map[interface{}]interface{})
}

func (s *testSession) Encode() ([]byte, error) {
	return nil, nil
}

func (s *testSession) HasChanged() bool {
	return true
}

type testCSRF struct {
	token string
}

func (c testCSRF) Token() string {
	return c.token
}

func (c testCSRF) ValidToken(string) bool {
	return true
}

func (c testCSRF) Error(http.ResponseWriter) {}

func (c testCSRF) Validate(flamego.Context) {}

func TestSetFlashHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     func(session.Session, string)
		wantTyp FlashType
	}{
		{name: "error", set: SetErrorFlash, wantTyp: FlashError},
		{name: "success", set: SetSuccessFlash, wantTyp: FlashSuccess},
		{name: "warning", set: SetWarningFlash, wantTyp: FlashWarning},
		{name: "info", set: SetInfoFlash, wantTyp: FlashInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			tt.set(s, "hello")

			msg, ok := s.flash.(FlashMessage)
			if !ok {
				t.Fatalf("flash has unexpected type: %T", s.flash)
			}

			if msg.Type != tt.wantTyp || msg.Message != "hello" {
				t.Fatalf("unexpected flash message: %#v", msg)
			}
		})
	}
}

func TestCSRFInjector(t *testing.T) {
	t.Parallel()

	handler, ok := CSRFInjector().(func(csrf.CSRF, template.Data))
	if !ok {
		t.Fatalf("unexpected CSRFInjector handler type")
	}

	data := template.Data{}
	handler(testCSRF{token: "csrf-123"}, data)

	if got, ok := data["csrf_token"].(string); !ok || got != "csrf-123" {
		t.Fatalf("unexpected csrf_token value: %#v", data["csrf_token"])
	}
}

func TestNoCacheHeaders(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	f.Use(NoCacheHeaders())
	f.Get("/", func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})
	f.Post("/", func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})

	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	f.ServeHTTP(getRec, getReq)

	if got := getRec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Fatalf("unexpected Cache-Control for GET: %q", got)
	}

	postReq := httptest.NewRequest(http.MethodPost, "/", nil)
	postRec := httptest.NewRecorder()
	f.ServeHTTP(postRec, postReq)

	if got := postRec.Header().Get("Cache-Control"); got != "" {
		t.Fatalf("expected no Cache-Control for POST, got %q", got)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	withXFF := &flamego.Request{Request: httptest.NewRequest(http.MethodGet, "http://example.test", nil)}
	withXFF.Header.Set("X-Forwarded-For", " 203.0.113.4, 198.51.100.2 ")

	withXFF.RemoteAddr = "10.0.0.1:1234"
	if got := clientIP(withXFF); got != "203.0.113.4" {
		t.Fatalf("expected X-Forwarded-For IP, got %q", got)
	}

	withRealIP := &flamego.Request{Request: httptest.NewRequest(http.MethodGet, "http://example.test", nil)}
	withRealIP.Header.Set("X-Real-IP", "198.51.100.9")

	withRealIP.RemoteAddr = "10.0.0.2:1234"
	if got := clientIP(withRealIP); got != "198.51.100.9" {
		t.Fatalf("expected X-Real-IP, got %q", got)
	}

	withRemoteAddr := &flamego.Request{Request: httptest.NewRequest(http.MethodGet, "http://example.test", nil)}

	withRemoteAddr.RemoteAddr = "192.0.2.10:8080"
	if got := clientIP(withRemoteAddr); got != "192.0.2.10" {
		t.Fatalf("expected host from RemoteAddr, got %q", got)
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func panelTestStore() biomarkers.Store {
	return biomarkers.Store{
		Categories: []biomarkers.Category{
			{
				ID:   "metabolic-health",
				Name: "Metabolic Health",
				Biomarkers: []biomarkers.Biomarker{
					{ID: "fasting-glucose", Name: "Fasting Glucose", OptimalRange: "70-99"},
					{ID: "hba1c", Name: "HbA1c", OptimalRange: "4.0-5.6"},
				},
			},
		},
	}
}

func TestParsePanelForm(t *testing.T) {
	t.Parallel()

	store := panelTestStore()

	form := url.Values{}
	form.Set("date", "2024-03-01")
	form.Set("provider", " Beta Labs ")
	form.Set("result_fasting-glucose", "88")
	form.Set("result_hba1c", "X")

	panel, err := parsePanelForm(form, store)
	if err != nil {
		t.Fatalf("parsePanelForm failed: %v", err)
	}

	if panel.Date != "2024-03-01" || panel.Provider != "Beta Labs" {
		t.Fatalf("unexpected panel header: %+v", panel)
	}
	if len(panel.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(panel.Results))
	}
	if panel.Results[0].BiomarkerID != "fasting-glucose" || panel.Results[0].Value == nil || *panel.Results[0].Value != 88 {
		t.Fatalf("unexpected first result: %+v", panel.Results[0])
	}
	// "X" records an explicit no-data result.
	if panel.Results[1].BiomarkerID != "hba1c" || panel.Results[1].Value != nil {
		t.Fatalf("unexpected second result: %+v", panel.Results[1])
	}
}

func TestParsePanelFormErrors(t *testing.T) {
	t.Parallel()

	store := panelTestStore()

	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantErr error
	}{
		{name: "missing date", mutate: func(f url.Values) { f.Del("date") }, wantErr: errMissingDate},
		{name: "bad date", mutate: func(f url.Values) { f.Set("date", "01/03/2024") }, wantErr: errInvalidDate},
		{name: "missing provider", mutate: func(f url.Values) { f.Del("provider") }, wantErr: errMissingProvider},
		{name: "bad value", mutate: func(f url.Values) { f.Set("result_fasting-glucose", "eighty") }, wantErr: errInvalidResultValue},
		{name: "no results", mutate: func(f url.Values) { f.Del("result_fasting-glucose") }, wantErr: errNoPanelResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := url.Values{}
			form.Set("date", "2024-03-01")
			form.Set("provider", "Beta Labs")
			form.Set("result_fasting-glucose", "88")
			tt.mutate(form)

			if _, err := parsePanelForm(form, store); err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParsePanelFormIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	form := url.Values{}
	form.Set("date", "2024-03-01")
	form.Set("provider", "Beta Labs")
	form.Set("result_fasting-glucose", "1,025")
	form.Set("result_not-a-biomarker", "42")

	panel, err := parsePanelForm(form, panelTestStore())
	if err != nil {
		t.Fatalf("parsePanelForm failed: %v", err)
	}

	if len(panel.Results) != 1 {
		t.Fatalf("expected unknown field ignored, got %+v", panel.Results)
	}
	if *panel.Results[0].Value != 1025 {
		t.Fatalf("expected comma-stripped value, got %v", *panel.Results[0].Value)
	}
}
