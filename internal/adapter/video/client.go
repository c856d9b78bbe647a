// Package video reads asset state from the Mux video API.
package video

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"localreach/internal/core/domain"
	"localreach/internal/core/port"
)

type assetResponse struct {
	Data struct {
		ID          string  `json:"id"`
		Status      string  `json:"status"`
		Duration    float64 `json:"duration"`
		PlaybackIDs []struct {
			ID     string `json:"id"`
			Policy string `json:"policy"`
		} `json:"playback_ids"`
	} `json:"data"`
}

// Client implements port.VideoHost.
type Client struct {
	baseURL     string
	tokenID     string
	tokenSecret string
	http        *http.Client
}

// NewClient creates a client for the API at baseURL. A nil httpClient uses
// one with a 10 second timeout.
func NewClient(baseURL, tokenID, tokenSecret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokenID:     tokenID,
		tokenSecret: tokenSecret,
		http:        httpClient,
	}
}

// GetAsset returns the asset with its first public playback id.
func (c *Client) GetAsset(ctx context.Context, assetID string) (*domain.VideoAsset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/video/v1/assets/"+url.PathEscape(assetID), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.tokenID, c.tokenSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get asset %s: %w", assetID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("asset %s: %w", assetID, port.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("get asset %s: unexpected status %d", assetID, resp.StatusCode)
	}

	var body assetResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", assetID, err)
	}
	asset := &domain.VideoAsset{
		ID:       body.Data.ID,
		Status:   domain.VideoStatus(body.Data.Status),
		Duration: body.Data.Duration,
	}
	for _, p := range body.Data.PlaybackIDs {
		if p.Policy == "public" {
			asset.PlaybackID = p.ID
			break
		}
	}
	return asset, nil
}
