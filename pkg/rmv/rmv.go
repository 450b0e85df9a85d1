package rmv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.rmv.de/hapi"

var (
	// ErrStopNotFound is returned when the location search has no usable match
	ErrStopNotFound = errors.New("no matching stop")

	// ErrNoItinerary is returned when the trip service has no itinerary for the requested stops
	ErrNoItinerary = errors.New("no itinerary found")

	// ErrMalformedResponse is returned when a service response body does not decode into the expected shape
	ErrMalformedResponse = errors.New("malformed response")
)

// Client talks to the RMV HAFAS ReST API
type Client struct {
	AccessID string
	BaseURL  string

	httpClient *http.Client
}

func NewClient(accessID string) *Client {
	return &Client{
		AccessID: accessID,
		BaseURL:  defaultBaseURL,

		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, response any) error {
	params.Set("accessId", c.AccessID)
	params.Set("format", "json")

	requestURL := fmt.Sprintf("%s/%s?%s", c.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned HTTP %d", endpoint, resp.StatusCode)
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(jsonBytes, response); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}

	return nil
}
