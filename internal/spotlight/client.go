package spotlight

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const resourceNS = "http://dbpedia.org/resource/"

// Entity is one annotation: the surface form found in the text and the
// DBpedia resource it links to, in prefixed form (dbr:...).
// Slice order preserves the order returned by the service.
type Entity struct {
	Surface string `json:"surface"`
	URI     string `json:"uri"`
}

type annotateResponse struct {
	Resources []struct {
		SurfaceForm string `json:"@surfaceForm"`
		URI         string `json:"@URI"`
	} `json:"Resources"`
}

// Client calls a DBpedia Spotlight annotate endpoint.
type Client struct {
	endpoint   string
	confidence float64
	http       *http.Client
}

func NewClient(endpoint string, confidence float64) *Client {
	return &Client{
		endpoint:   endpoint,
		confidence: confidence,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Annotate links entities in text. No entities found is a valid empty
// result; a non-2xx status is a hard error.
func (c *Client) Annotate(ctx context.Context, text string) ([]Entity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("text", text)
	q.Set("confidence", strconv.FormatFloat(c.confidence, 'f', -1, 64))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotlight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("spotlight request failed with status code %d", resp.StatusCode)
	}

	var data annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode spotlight response: %w", err)
	}

	entities := make([]Entity, 0, len(data.Resources))
	for _, r := range data.Resources {
		entities = append(entities, Entity{
			Surface: r.SurfaceForm,
			URI:     strings.Replace(r.URI, resourceNS, "dbr:", 1),
		})
	}
	return entities, nil
}
