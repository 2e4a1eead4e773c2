// Package clients wraps the backend HTTP APIs (catalog, users, orders,
// payments, inventory) as typed request/response calls.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out anonymous.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx backend response with the remote-reported message.
type APIError struct {
	Service string `json:"-"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Service, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: request failed with status %d", e.Service, e.Status)
}

// Client is the shared plumbing for one upstream service.
type Client struct {
	name    string
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
}

func NewClient(name, baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid %s base url %q: %v", name, baseURL, err))
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{name: name, baseURL: u, http: httpClient, tokens: tokens}
}

// do sends method+path(+query) with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	// Paths are appended to the base URL, so a base of "…/api" plus
	// "/orders" requests "…/api/orders".
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", c.name, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w", c.name, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.name, err)
	}
	return nil
}

func (c *Client) asAPIError(resp *http.Response) error {
	apiErr := &APIError{Service: c.name, Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(data) > 0 {
		// Backend error bodies look like {"status":..,"message":..}; anything
		// else is kept verbatim as the message.
		if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = string(bytes.TrimSpace(data))
		}
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodPatch, path, query, nil, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
