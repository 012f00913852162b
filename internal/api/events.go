package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListEvents retrieves upcoming events across all bars.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/events", nil)
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := parseResponse(resp, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// ListBarEvents retrieves events for a single bar.
func (c *Client) ListBarEvents(ctx context.Context, barID string) ([]Event, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/bars/%s/events", url.PathEscape(barID)), nil)
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := parseResponse(resp, &events); err != nil {
		return nil, err
	}

	return events, nil
}
