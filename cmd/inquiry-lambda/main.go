package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/cloudsitefy/inquiry-service/internal/app/bootstrap"
	appconfig "github.com/cloudsitefy/inquiry-service/internal/config"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// Serves the same router as cmd/api behind API Gateway, for deployments that
// run the inquiry backend as a function instead of a long-lived server.
func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	handler, err := bootstrap.BuildRouter(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build application", "error", err)
		panic(err)
	}

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return serve(ctx, handler, evt)
	})
}

func serve(ctx context.Context, handler http.Handler, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := translate(ctx, evt)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"Invalid request"}`,
		}, nil
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	headers := make(map[string]string, len(rec.Header()))
	for name, values := range rec.Header() {
		headers[name] = strings.Join(values, ",")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: rec.Code,
		Headers:    headers,
		Body:       rec.Body.String(),
	}, nil
}

func translate(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))
	if method == "" {
		method = http.MethodGet
	}

	path := evt.RawPath
	if path == "" {
		path = "/"
	}
	url := path
	if evt.RawQueryString != "" {
		url = fmt.Sprintf("%s?%s", path, evt.RawQueryString)
	}

	body := []byte(evt.Body)
	if evt.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(evt.Body)
		if err != nil {
			return nil, fmt.Errorf("decode body: %w", err)
		}
		body = decoded
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for name, value := range evt.Headers {
		req.Header.Set(name, value)
	}
	if sourceIP := evt.RequestContext.HTTP.SourceIP; sourceIP != "" {
		req.RemoteAddr = sourceIP + ":0"
	}
	return req, nil
}
