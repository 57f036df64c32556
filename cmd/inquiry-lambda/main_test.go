package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func apiGatewayEvent(method, path string) events.APIGatewayV2HTTPRequest {
	evt := events.APIGatewayV2HTTPRequest{RawPath: path}
	evt.RequestContext.HTTP.Method = method
	return evt
}

func TestTranslateBasics(t *testing.T) {
	evt := apiGatewayEvent("post", "/api")
	evt.RawQueryString = "debug=1"
	evt.Body = `{"name":"Jane"}`
	evt.Headers = map[string]string{"Content-Type": "application/json"}
	evt.RequestContext.HTTP.SourceIP = "203.0.113.9"

	req, err := translate(context.Background(), evt)
	if err != nil {
		t.Fatalf("translate returned error: %v", err)
	}
	if req.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", req.Method)
	}
	if req.URL.Path != "/api" || req.URL.RawQuery != "debug=1" {
		t.Errorf("unexpected url: %s", req.URL)
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Error("expected headers carried over")
	}
	if req.RemoteAddr != "203.0.113.9:0" {
		t.Errorf("expected source ip as remote addr, got %s", req.RemoteAddr)
	}
	body, _ := io.ReadAll(req.Body)
	if string(body) != `{"name":"Jane"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestTranslateBase64Body(t *testing.T) {
	evt := apiGatewayEvent("POST", "/api")
	evt.Body = base64.StdEncoding.EncodeToString([]byte(`{"name":"Jane"}`))
	evt.IsBase64Encoded = true

	req, err := translate(context.Background(), evt)
	if err != nil {
		t.Fatalf("translate returned error: %v", err)
	}
	body, _ := io.ReadAll(req.Body)
	if string(body) != `{"name":"Jane"}` {
		t.Errorf("expected decoded body, got %s", body)
	}
}

func TestTranslateBadBase64(t *testing.T) {
	evt := apiGatewayEvent("POST", "/api")
	evt.Body = "not base64!"
	evt.IsBase64Encoded = true

	if _, err := translate(context.Background(), evt); err == nil {
		t.Fatal("expected error for malformed base64 body")
	}
}

func TestTranslateDefaults(t *testing.T) {
	req, err := translate(context.Background(), events.APIGatewayV2HTTPRequest{})
	if err != nil {
		t.Fatalf("translate returned error: %v", err)
	}
	if req.Method != http.MethodGet || req.URL.Path != "/" {
		t.Errorf("expected GET /, got %s %s", req.Method, req.URL.Path)
	}
}

func TestServeRoundTrip(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_ = json.NewEncoder(w).Encode(map[string]string{"path": r.URL.Path})
	})

	resp, err := serve(context.Background(), handler, apiGatewayEvent("GET", "/health"))
	if err != nil {
		t.Fatalf("serve returned error: %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("expected handler status, got %d", resp.StatusCode)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("expected handler headers, got %v", resp.Headers)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["path"] != "/health" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestServeBadEvent(t *testing.T) {
	evt := apiGatewayEvent("POST", "/api")
	evt.Body = "not base64!"
	evt.IsBase64Encoded = true

	resp, err := serve(context.Background(), http.NotFoundHandler(), evt)
	if err != nil {
		t.Fatalf("serve must not return an error to the runtime: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
