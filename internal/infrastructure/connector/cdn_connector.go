// Package connector holds the clients for external collaborators: the CDN
// photo upload endpoint and the payment-slip QR generator.
package connector

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/xaosao/xaosao-service/internal/pkg/config"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// CDNConnector uploads profile photos and returns their public URLs.
type CDNConnector interface {
	// Upload pushes the image bytes and returns the public URL.
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

type uploadResponse struct {
	URL string `json:"url"`
}

type errorBody struct {
	Message string `json:"message"`
}

type httpCDNConnector struct {
	client *resty.Client
	logger logger.Logger
}

// NewHTTPCDNConnector creates a CDNConnector against the configured upload
// endpoint.
func NewHTTPCDNConnector(settings *config.CDNSettings, logger logger.Logger) (CDNConnector, error) {
	if settings.BaseURL == "" {
		return nil, fmt.Errorf("cdn base url is required")
	}

	timeout := 10 * time.Second
	if settings.TimeoutMS > 0 {
		timeout = time.Duration(settings.TimeoutMS) * time.Millisecond
	}

	client := resty.New().
		SetBaseURL(settings.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2)
	if settings.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+settings.APIKey)
	}

	return &httpCDNConnector{
		client: client,
		logger: logger,
	}, nil
}

func (c *httpCDNConnector) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	var result uploadResponse
	var apiErr errorBody

	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", fileName, bytes.NewReader(data)).
		SetResult(&result).
		SetError(&apiErr).
		Post("/v1/uploads")
	if err != nil {
		return "", fmt.Errorf("cdn upload failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("cdn upload rejected: status %d: %s", resp.StatusCode(), apiErr.Message)
	}
	if result.URL == "" {
		return "", fmt.Errorf("cdn upload returned no url")
	}

	c.logger.Info("Uploaded ", fileName, " to CDN")
	return result.URL, nil
}
