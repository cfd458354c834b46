// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/gnouvdev/libreria/internal/catalog"
	"github.com/gnouvdev/libreria/internal/recommend"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	books := []catalog.Book{
		{
			ID:          "kids",
			Title:       "Truyện Tranh Thiếu Nhi",
			Description: "Truyện tranh dành cho trẻ em",
			Rating:      4.2,
			NumReviews:  300,
		},
		{
			ID:          "novel",
			Title:       "Tiểu Thuyết Trinh Thám",
			Description: "Vụ án bí ẩn trong thành phố",
			Rating:      4.8,
			NumReviews:  1500,
			Trending:    true,
		},
	}

	engine, err := recommend.NewEngine(nil, catalog.NewStaticProvider(books), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return NewRouter(engine, DefaultRouterConfig()).Handler()
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rec.Body.String())
	}
	return resp
}

func TestHandleContextual(t *testing.T) {
	handler := newTestRouter(t)

	// June 1 carries occasion tags; the catalog has a matching children's
	// title.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/contextual?date=2026-06-01", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Fatalf("Success = false: %+v", resp.Error)
	}

	payload, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var ranked recommend.Response
	if err := json.Unmarshal(payload, &ranked); err != nil {
		t.Fatalf("decode ranked response: %v", err)
	}

	if ranked.UsedModel != recommend.ModelContextual {
		t.Errorf("UsedModel = %q, want %q", ranked.UsedModel, recommend.ModelContextual)
	}
	if len(ranked.Books) == 0 || ranked.Books[0].ID != "kids" {
		t.Errorf("Books = %+v, want the children's title first", ranked.Books)
	}
	if !ranked.Context.IsExactDay {
		t.Error("Context.IsExactDay = false, want true for June 1")
	}
}

func TestHandleContextual_FallbackDate(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/contextual?date=2026-07-15", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	payload, _ := json.Marshal(decodeResponse(t, rec).Data)
	var ranked recommend.Response
	if err := json.Unmarshal(payload, &ranked); err != nil {
		t.Fatalf("decode ranked response: %v", err)
	}
	if ranked.UsedModel != recommend.ModelPopularity {
		t.Errorf("UsedModel = %q, want %q", ranked.UsedModel, recommend.ModelPopularity)
	}
	if len(ranked.Books) != 2 || ranked.Books[0].ID != "novel" {
		t.Errorf("Books = %+v, want popularity order with the novel first", ranked.Books)
	}
}

func TestHandleContextual_DefaultLimit(t *testing.T) {
	// Without a limit parameter the handler supplies the engine default.
	var books []catalog.Book
	for i := 0; i < 20; i++ {
		books = append(books, catalog.Book{
			ID:     fmt.Sprintf("b%02d", i),
			Title:  "Sách Tham Khảo",
			Rating: float64(i%5) + 0.5,
		})
	}
	engine, err := recommend.NewEngine(nil, catalog.NewStaticProvider(books), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	handler := NewRouter(engine, DefaultRouterConfig()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/contextual?date=2026-07-15", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	payload, _ := json.Marshal(decodeResponse(t, rec).Data)
	var ranked recommend.Response
	if err := json.Unmarshal(payload, &ranked); err != nil {
		t.Fatalf("decode ranked response: %v", err)
	}
	if len(ranked.Books) != 12 {
		t.Errorf("got %d books, want the default 12", len(ranked.Books))
	}
}

func TestHandleContextual_BadParams(t *testing.T) {
	handler := newTestRouter(t)

	tests := []struct {
		name string
		url  string
	}{
		{name: "bad limit", url: "/api/v1/recommendations/contextual?limit=abc"},
		{name: "negative limit", url: "/api/v1/recommendations/contextual?limit=-1"},
		{name: "bad date", url: "/api/v1/recommendations/contextual?date=June-1st"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if resp := decodeResponse(t, rec); resp.Error == nil || resp.Error.Code != ErrCodeBadRequest {
				t.Errorf("error = %+v, want %s", resp.Error, ErrCodeBadRequest)
			}
		})
	}
}

func TestHandleOccasions(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/occasions?date=2026-12-24", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{"2026-12-24", "is_exact_day", "Giáng Sinh"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}

func TestHandleStatus(t *testing.T) {
	handler := newTestRouter(t)

	// Warm the model so status reports a built index.
	warm := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/contextual?date=2026-07-15", nil)
	handler.ServeHTTP(httptest.NewRecorder(), warm)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	payload, _ := json.Marshal(decodeResponse(t, rec).Data)
	var st recommend.Status
	if err := json.Unmarshal(payload, &st); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if !st.Ready {
		t.Error("Ready = false after a warmed model")
	}
	if st.Books != 2 || st.IndexedDocuments != 2 {
		t.Errorf("status = %+v, want 2 books indexed", st)
	}
}

func TestHandleRebuild(t *testing.T) {
	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/rebuild", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 (body %s)", rec.Code, rec.Body.String())
	}
	if resp := decodeResponse(t, rec); !resp.Success {
		t.Errorf("Success = false: %+v", resp.Error)
	}
}

func TestHandleRebuild_FailingCatalog(t *testing.T) {
	engine, err := recommend.NewEngine(nil, catalog.NewFailingProvider(errFetch), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	handler := NewRouter(engine, DefaultRouterConfig()).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/rebuild", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body %q missing status ok", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response should carry an X-Request-ID header")
	}
}

var errFetch = errors.New("catalog down")

