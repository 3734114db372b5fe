package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Value is one typed cell of a result row. Type is "uri", "literal" or,
// from Virtuoso, "typed-literal".
type Value struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"xml:lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// Binding is one result row, mapping variable names to values.
type Binding map[string]Value

// Result is a SPARQL-results-JSON document: either a binding set or, for
// ASK queries, a bare boolean.
type Result struct {
	Results *struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results,omitempty"`
	Boolean *bool `json:"boolean,omitempty"`
}

// Empty reports whether a binding set is present and has zero rows. A
// missing results section (e.g. an ASK response) is not considered empty.
func (r *Result) Empty() bool {
	return r != nil && r.Results != nil && len(r.Results.Bindings) == 0
}

// Client executes queries against a single SPARQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Execute runs a full SPARQL query string (prefixes included) and decodes
// the JSON response. A non-200 status is an error.
func (c *Client) Execute(ctx context.Context, query string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("format", "application/sparql-results+json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sparql endpoint returned status %d: %s", resp.StatusCode, body)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode sparql response: %w", err)
	}
	return &result, nil
}
