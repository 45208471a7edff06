package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goatkit/contactform/internal/thread"
)

// SubmitPath is the server endpoint submissions are posted to.
const SubmitPath = "/api/contact-form/"

// HTTPSender posts submission requests to a running contact form server.
type HTTPSender struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSender creates a sender for the server at baseURL.
func NewHTTPSender(baseURL string) *HTTPSender {
	return &HTTPSender{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send posts the request and returns an error for transport failures and for
// any non-2xx response, carrying the server's error message when present.
func (s *HTTPSender) Send(ctx context.Context, req *thread.Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+SubmitPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(resp.Body)
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("submission rejected: %s", payload.Error)
	}
	return fmt.Errorf("submission rejected with status %d", resp.StatusCode)
}
