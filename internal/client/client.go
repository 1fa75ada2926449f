// Package client talks to the job board REST API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/baxromumarov/job-board/internal/core"
)

const offersPath = "/api/offreEmploi/"

// FetchError is returned for non-2xx responses.
type FetchError struct {
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("fetch error (status %d)", e.Status)
	}
	return fmt.Sprintf("fetch error (status %d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("empty base url")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{baseURL: u, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListOffers fetches the full offer collection using token as bearer credential.
func (c *Client) ListOffers(ctx context.Context, token string) ([]core.JobOffer, error) {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: offersPath})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	var offers []core.JobOffer
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	if offers == nil {
		offers = []core.JobOffer{}
	}
	return offers, nil
}

// errorMessage extracts {"error": "..."} from a failed response, falling
// back to the raw body.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
