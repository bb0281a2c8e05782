package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"cloudboard/internal/catalog"
)

// DefaultTimeout bounds a detection round trip. The ingestion layer performs
// no retries, so a hung endpoint would otherwise pin its loading state
// forever.
const DefaultTimeout = 15 * time.Second

// Client calls the cloud-detection endpoint over HTTP. The endpoint accepts
// {"url": "..."} and answers {"provider": "..."} with a 2xx status.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the given endpoint base URL. A non-positive
// timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type detectRequest struct {
	URL string `json:"url"`
}

type detectResponse struct {
	Provider string `json:"provider"`
}

// Detect issues exactly one lookup for rawURL and maps the answer onto the
// provider enum. rawURL is passed through untouched; the endpoint does its
// own parsing.
func (c *Client) Detect(ctx context.Context, rawURL string) (catalog.Provider, error) {
	var response detectResponse
	if err := c.postJSON(ctx, "/detect", detectRequest{URL: rawURL}, &response); err != nil {
		return catalog.ProviderOther, err
	}
	return catalog.ParseProvider(response.Provider), nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("detect request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return formatHTTPError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode detect response: %w", err)
	}
	return nil
}

func formatHTTPError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("detect status: %s", resp.Status)
	}
	return fmt.Errorf("detect status: %s: %s", resp.Status, msg)
}
