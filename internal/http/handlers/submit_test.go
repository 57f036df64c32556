package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudsitefy/inquiry-service/internal/inquiry"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

type brokenStore struct{}

func (brokenStore) Create(context.Context, inquiry.Submission) (*inquiry.Inquiry, error) {
	return nil, inquiry.ErrStoreUnavailable
}
func (brokenStore) Get(context.Context, string) (*inquiry.Inquiry, error) {
	return nil, inquiry.ErrStoreUnavailable
}
func (brokenStore) List(context.Context, inquiry.ListFilter) ([]*inquiry.Inquiry, error) {
	return nil, inquiry.ErrStoreUnavailable
}
func (brokenStore) Update(context.Context, string, inquiry.UpdateRequest) error {
	return inquiry.ErrStoreUnavailable
}
func (brokenStore) Delete(context.Context, string) error {
	return inquiry.ErrStoreUnavailable
}

func newSubmitFixture(store inquiry.Store) *SubmitHandler {
	pipeline := inquiry.NewPipeline(store, nil, logging.Default(), nil)
	return NewSubmitHandler(pipeline, logging.Default())
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestSubmitSuccess(t *testing.T) {
	store := inquiry.NewMemoryStore()
	h := newSubmitFixture(store)

	rr := postJSON(t, h.Submit, "/api", map[string]string{
		"name":    "Jane",
		"email":   "jane@x.com",
		"phone":   "555-123-4567",
		"message": "Hello",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp SubmitResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.InquiryID == "" {
		t.Fatalf("expected success with inquiryId, got %+v", resp)
	}

	stored, err := store.Get(context.Background(), resp.InquiryID)
	if err != nil {
		t.Fatalf("inquiry not persisted: %v", err)
	}
	if stored.Status != inquiry.StatusNew {
		t.Errorf("expected status new, got %q", stored.Status)
	}
}

func TestSubmitFillsRequestMetadata(t *testing.T) {
	store := inquiry.NewMemoryStore()
	h := newSubmitFixture(store)

	raw, _ := json.Marshal(map[string]string{
		"name":    "Jane",
		"email":   "jane@x.com",
		"phone":   "555-123-4567",
		"message": "Hello",
	})
	req := httptest.NewRequest(http.MethodPost, "/api", bytes.NewReader(raw))
	req.Header.Set("User-Agent", "test-agent/1.0")
	req.RemoteAddr = "203.0.113.9:4410"
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	var resp SubmitResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	stored, err := store.Get(context.Background(), resp.InquiryID)
	if err != nil {
		t.Fatalf("inquiry not persisted: %v", err)
	}
	if stored.UserAgent != "test-agent/1.0" {
		t.Errorf("expected request user agent, got %q", stored.UserAgent)
	}
	if stored.IP == "" || stored.IP == "unknown" {
		t.Errorf("expected request address recorded, got %q", stored.IP)
	}
}

func TestSubmitValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    map[string]string
		message string
	}{
		{
			name:    "missing email",
			body:    map[string]string{"name": "Jane", "phone": "555-123-4567", "message": "Hello"},
			message: "email",
		},
		{
			name:    "bad email",
			body:    map[string]string{"name": "Jane", "email": "not-an-email", "phone": "555-123-4567", "message": "Hello"},
			message: "email",
		},
		{
			name:    "short phone",
			body:    map[string]string{"name": "Jane", "email": "jane@x.com", "phone": "123", "message": "Hello"},
			message: "phone",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newSubmitFixture(inquiry.NewMemoryStore())
			rr := postJSON(t, h.Submit, "/api", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			if !strings.Contains(strings.ToLower(rr.Body.String()), tc.message) {
				t.Errorf("expected message about %s, got %s", tc.message, rr.Body.String())
			}
		})
	}
}

func TestSubmitHoneypotGenericError(t *testing.T) {
	store := inquiry.NewMemoryStore()
	h := newSubmitFixture(store)

	rr := postJSON(t, h.Submit, "/api", map[string]string{
		"name":     "Jane",
		"email":    "jane@x.com",
		"phone":    "555-123-4567",
		"message":  "Hello",
		"honeypot": "gotcha",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := strings.ToLower(rr.Body.String())
	if strings.Contains(body, "bot") || strings.Contains(body, "honeypot") {
		t.Errorf("bot detection must not be revealed in the response: %s", rr.Body.String())
	}

	all, _ := store.List(context.Background(), inquiry.ListFilter{})
	if len(all) != 0 {
		t.Error("honeypot submission must not be stored")
	}
}

func TestSubmitMalformedJSON(t *testing.T) {
	h := newSubmitFixture(inquiry.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSubmitStoreUnavailable(t *testing.T) {
	h := newSubmitFixture(brokenStore{})

	rr := postJSON(t, h.Submit, "/api", map[string]string{
		"name":    "Jane",
		"email":   "jane@x.com",
		"phone":   "555-123-4567",
		"message": "Hello",
	})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", rr.Code, rr.Body.String())
	}
}
