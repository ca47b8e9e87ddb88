package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxFeedBytes caps a single feed response; the weekly USGS feed is a few MB.
const maxFeedBytes = 64 << 20

// Client fetches the public GeoJSON feeds.
type Client struct {
	httpClient *http.Client
	maxBytes   int64
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxFeedBytes,
	}
}

// NewClientWithHTTP uses hc for all requests.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc, maxBytes: maxFeedBytes}
}

// featureEnvelope is the part of a FeatureCollection shared by both feeds.
// Features are kept raw so one malformed feature can be skipped on its own.
type featureEnvelope struct {
	Type     string                `json:"type"`
	Features []jsoniter.RawMessage `json:"features"`
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading resp.Body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("feed exceeds %d bytes", c.maxBytes)
	}
	return body, nil
}

func decodeEnvelope(body []byte) (*featureEnvelope, error) {
	var env featureEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("error decoding feature collection: %w", err)
	}
	if env.Type != "FeatureCollection" {
		return nil, fmt.Errorf("unexpected GeoJSON type: %q", env.Type)
	}
	return &env, nil
}
