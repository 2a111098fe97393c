package genderize

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.genderize.io"

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		BaseURL:    baseURL,
		APIKey:     apiKey,
	}
}

// Classify asks the service for the likely gender of a first name.
func (c *Client) Classify(ctx context.Context, name string) (*Guess, error) {
	params := url.Values{}
	params.Set("name", name)
	if c.APIKey != "" {
		params.Set("apikey", c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("genderize request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		json.NewDecoder(resp.Body).Decode(&apiErr)
		log.Printf("❌ [Genderize] status %d: %s", resp.StatusCode, apiErr.Error)
		return nil, fmt.Errorf("genderize error: status %d", resp.StatusCode)
	}

	var guess Guess
	if err := json.NewDecoder(resp.Body).Decode(&guess); err != nil {
		return nil, fmt.Errorf("genderize decode failed: %w", err)
	}

	return &guess, nil
}
