package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Failure classes. Handlers collapse all three into one user-facing message;
// metrics and logs keep them apart.
var (
	ErrLookupFailed    = errors.New("lookup request failed")
	ErrNotFound        = errors.New("address not found")
	ErrInvalidResponse = errors.New("invalid geocode response")
)

// Client resolves a street address to coordinates via an address-search
// endpoint (nominatim-style: GET /search?format=json&q=..., JSON array reply
// with string lat/lon on each hit).
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type searchHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve looks up the address and returns its coordinates. The query is the
// free-text join of the address fields; empty parts are skipped.
func (c *Client) Resolve(ctx context.Context, line, city, state, zip string) (lat, lon float64, err error) {
	q := buildQuery(line, city, state, zip)
	u := fmt.Sprintf("%s/search?format=json&q=%s", c.baseURL, url.QueryEscape(q))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var hits []searchHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(hits) == 0 {
		return 0, 0, ErrNotFound
	}

	lat, latErr := strconv.ParseFloat(hits[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(hits[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return 0, 0, fmt.Errorf("%w: non-numeric coordinates", ErrInvalidResponse)
	}
	return lat, lon, nil
}

// FailureReason maps a Resolve error to a short metric label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	default:
		return "lookup_failed"
	}
}

func buildQuery(line, city, state, zip string) string {
	parts := make([]string, 0, 3)
	if line != "" {
		parts = append(parts, line)
	}
	if city != "" {
		parts = append(parts, city)
	}
	tail := strings.TrimSpace(state + " " + zip)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}
