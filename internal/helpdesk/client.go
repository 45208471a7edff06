package helpdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is the hosted helpdesk endpoint used when no override is
// configured.
const DefaultAPIURL = "https://api.helpdesk.example.com"

const (
	upsertCustomerPath = "/v1/customers/upsert"
	createThreadPath   = "/v1/threads"
)

// HTTPClient talks to the helpdesk REST API with bearer-token auth.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// HTTPClientOption configures an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client, e.g. for tests.
func WithHTTPClient(c *http.Client) HTTPClientOption {
	return func(h *HTTPClient) { h.client = c }
}

// NewHTTPClient creates a client for the helpdesk API at baseURL.
func NewHTTPClient(baseURL, apiKey string, opts ...HTTPClientOption) *HTTPClient {
	h := &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// UpsertCustomer creates the customer if the identifier matches nothing,
// otherwise applies the onUpdate set to the existing record.
func (h *HTTPClient) UpsertCustomer(ctx context.Context, input UpsertCustomerInput) (*Customer, error) {
	var customer Customer
	if err := h.post(ctx, upsertCustomerPath, input, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateThread opens a new thread for an existing customer.
func (h *HTTPClient) CreateThread(ctx context.Context, input CreateThreadInput) (*Thread, error) {
	var thread Thread
	if err := h.post(ctx, createThreadPath, input, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (h *HTTPClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError turns a non-2xx response into an *APIError, falling back to
// the HTTP status when the body carries no usable message.
func decodeAPIError(status int, body []byte) error {
	var wrapper struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Error != nil && wrapper.Error.Message != "" {
		return wrapper.Error
	}
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return &apiErr
	}
	return &APIError{Message: fmt.Sprintf("helpdesk API returned status %d", status)}
}
