package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mydictionary/backend/internal/domain"
)

type stubDictionaryService struct {
	lookupFunc func(ctx context.Context, word string) (*domain.WordDefinition, error)
}

func (s *stubDictionaryService) Lookup(ctx context.Context, word string) (*domain.WordDefinition, error) {
	return s.lookupFunc(ctx, word)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDictionarySearch_Success(t *testing.T) {
	svc := &stubDictionaryService{
		lookupFunc: func(ctx context.Context, word string) (*domain.WordDefinition, error) {
			return &domain.WordDefinition{
				Word:          word,
				PartsOfSpeech: []string{"noun"},
				Definitions:   map[string][]string{"noun": {"a feeling of happiness"}},
			}, nil
		},
	}
	h := NewDictionaryHandler(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/search?q=felicity", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body searchEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.StatusCode != http.StatusOK || body.Message != "success" {
		t.Errorf("envelope = %+v, want status_code 200 and success message", body)
	}
	if len(body.Data) != 1 || body.Data[0].Word != "felicity" {
		t.Errorf("data = %+v, want one definition for felicity", body.Data)
	}
}

func TestDictionarySearch_NotFound(t *testing.T) {
	svc := &stubDictionaryService{
		lookupFunc: func(ctx context.Context, word string) (*domain.WordDefinition, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewDictionaryHandler(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/search?q=xyzzyq", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body searchEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.StatusCode != http.StatusNotFound {
		t.Errorf("status_code = %d, want 404 in body", body.StatusCode)
	}
	if body.Data == nil || len(body.Data) != 0 {
		t.Errorf("data = %v, want empty array", body.Data)
	}
}

func TestDictionarySearch_MissingQuery(t *testing.T) {
	svc := &stubDictionaryService{
		lookupFunc: func(ctx context.Context, word string) (*domain.WordDefinition, error) {
			return nil, domain.NewValidationError("word", "required")
		},
	}
	h := NewDictionaryHandler(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/search", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var body validationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Errors["word"] != "required" {
		t.Errorf("errors = %v, want word: required", body.Errors)
	}
}

func TestDictionarySearch_UpstreamFailure(t *testing.T) {
	svc := &stubDictionaryService{
		lookupFunc: func(ctx context.Context, word string) (*domain.WordDefinition, error) {
			return nil, domain.NewUpstreamError(errors.New("dial tcp: connection refused"))
		},
	}
	h := NewDictionaryHandler(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/search?q=word", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body apiResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	// The upstream message is surfaced, never masked.
	if body.Message == "internal server error" || body.Message == "" {
		t.Errorf("message = %q, want the underlying upstream message", body.Message)
	}
}
