package pollinations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://image.pollinations.ai"

type client struct {
	baseURL string
	model   string
	hc      *http.Client
}

// NewClient creates an image synthesis client for the Pollinations
// API. Generation parameters are fixed: square resolution, logo
// suppression and prompt enhancement enabled.
func NewClient(baseURL, model string, timeout time.Duration) *client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		baseURL: baseURL,
		model:   model,
		hc:      &http.Client{Timeout: timeout},
	}
}

// GenerateImage synthesizes one image for the prompt and returns its
// raw bytes in the format reported by the server, JPEG assumed
// otherwise.
func (c *client) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	u := fmt.Sprintf("%s/prompt/%s?model=%s&width=1024&height=1024&nologo=true&enhance=true",
		c.baseURL, url.PathEscape(prompt), url.QueryEscape(c.model))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, "", fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(bodyBytes))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}

	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image response")
	}

	return data, imageFormat(resp.Header.Get("Content-Type")), nil
}

func imageFormat(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return "jpeg"
	}
}
