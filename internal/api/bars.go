package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListBars retrieves bar listings, optionally filtered by city.
func (c *Client) ListBars(ctx context.Context, city string) ([]Bar, error) {
	path := "/bars"
	if city != "" {
		path += "?city=" + url.QueryEscape(city)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var bars []Bar
	if err := parseResponse(resp, &bars); err != nil {
		return nil, err
	}

	return bars, nil
}

// GetBar retrieves a single bar by ID.
func (c *Client) GetBar(ctx context.Context, barID string) (*Bar, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/bars/%s", url.PathEscape(barID)), nil)
	if err != nil {
		return nil, err
	}

	var bar Bar
	if err := parseResponse(resp, &bar); err != nil {
		return nil, err
	}

	return &bar, nil
}
