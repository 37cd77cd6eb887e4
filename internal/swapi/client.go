package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Searcher defines the API operations used by character lookups.
type Searcher interface {
	SearchPeople(ctx context.Context, name string) (*Character, error)
	GetPlanet(ctx context.Context, planetURL string) (*Planet, error)
}

// Client provides access to the Star Wars API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets a client-wide request timeout. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a Star Wars API client rooted at baseURL (for example
// https://www.swapi.tech/api).
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("swapi base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchPeople returns the first person matching name. It returns ErrNotFound
// when the result list is empty and a *StatusError for non-200 responses.
func (c *Client) SearchPeople(ctx context.Context, name string) (*Character, error) {
	if name == "" {
		return nil, errors.New("name must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/people/")
	if err != nil {
		return nil, fmt.Errorf("parse swapi url: %w", err)
	}
	params := url.Values{}
	params.Set("name", name)
	endpoint.RawQuery = params.Encode()

	var payload peopleResponse
	if err := c.getJSON(ctx, endpoint.String(), "people search", &payload); err != nil {
		return nil, err
	}
	if len(payload.Result) == 0 {
		return nil, ErrNotFound
	}

	character := payload.Result[0].Properties
	if err := character.Validate(); err != nil {
		return nil, fmt.Errorf("character %q: %w", name, err)
	}
	return &character, nil
}

// GetPlanet dereferences a homeworld URL taken from a character record.
func (c *Client) GetPlanet(ctx context.Context, planetURL string) (*Planet, error) {
	planetURL = strings.TrimSpace(planetURL)
	if planetURL == "" {
		return nil, errors.New("planet url must not be empty")
	}
	if _, err := url.ParseRequestURI(planetURL); err != nil {
		return nil, fmt.Errorf("parse planet url: %w", err)
	}

	var payload planetResponse
	if err := c.getJSON(ctx, planetURL, "planet fetch", &payload); err != nil {
		return nil, err
	}
	if payload.Result == nil {
		return nil, fmt.Errorf("planet %s: %w: result", planetURL, ErrMissingField)
	}

	planet := payload.Result.Properties
	if err := planet.Validate(); err != nil {
		return nil, fmt.Errorf("planet %s: %w", planetURL, err)
	}
	return &planet, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, label string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute %s (latency=%v): %w", label, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: label, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", label, err)
	}
	return nil
}
