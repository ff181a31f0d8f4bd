// Package dictionaryapi implements the outbound client for the free
// dictionary lookup API (dictionaryapi.dev compatible).
package dictionaryapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"lexibook/internal/domain"
)

// emptyWordPlaceholder is sent when the caller provides an empty word so
// the API responds with its regular not-found payload instead of a routing
// error.
const emptyWordPlaceholder = "***"

// Client implements repository.DictionaryGateway over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a dictionary API client for the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// FetchWord looks up a single word and returns its entries.
// A non-200 response is returned as *domain.LookupError carrying the
// upstream payload when it can be decoded.
func (c *Client) FetchWord(ctx context.Context, word string) ([]domain.Word, error) {
	if word == "" {
		word = emptyWordPlaceholder
	}

	endpoint := fmt.Sprintf("%s/api/v2/entries/en/%s", c.baseURL, url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeLookupError(resp)
	}

	var words []domain.Word
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	return words, nil
}

// decodeLookupError extracts the API's error payload from a failed response.
// A body that does not parse yields a generic error with the HTTP status.
func decodeLookupError(resp *http.Response) error {
	var payload domain.LookupError
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Title != "" {
		return &payload
	}

	return &domain.LookupError{
		Title:      "Lookup Failed",
		Message:    fmt.Sprintf("The dictionary service responded with status %s.", resp.Status),
		Resolution: "Please try again later.",
	}
}
