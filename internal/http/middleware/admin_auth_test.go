package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func protected(token string) http.Handler {
	return AdminToken(token)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminTokenAcceptsMatchingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/adminInquiries", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rr := httptest.NewRecorder()

	protected("s3cret").ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
}

func TestAdminTokenRejectsWrongToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/adminInquiries", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()

	protected("s3cret").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Unauthorized") {
		t.Errorf("expected Unauthorized body, got %q", rr.Body.String())
	}
}

func TestAdminTokenRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/adminInquiries", nil)
	rr := httptest.NewRecorder()

	protected("s3cret").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with missing header, got %d", rr.Code)
	}
}

func TestAdminTokenEmptyConfigDisablesAccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/adminInquiries", nil)
	req.Header.Set("Authorization", "Bearer ")
	rr := httptest.NewRecorder()

	protected("").ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no token configured, got %d", rr.Code)
	}
}
