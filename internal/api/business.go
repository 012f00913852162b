package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Business endpoints live under /business and operate on resources owned by
// the authenticated business account. This is the single endpoint contract;
// an older ownership-keyed variant of these paths existed server-side and is
// intentionally not supported here.

// MyBars retrieves the bars owned by the current business account.
func (c *Client) MyBars(ctx context.Context) ([]Bar, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/business/bars", nil)
	if err != nil {
		return nil, err
	}

	var bars []Bar
	if err := parseResponse(resp, &bars); err != nil {
		return nil, err
	}

	return bars, nil
}

// CreateBar creates a bar owned by the current business account.
func (c *Client) CreateBar(ctx context.Context, req CreateBarRequest) (*Bar, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/business/bars", req)
	if err != nil {
		return nil, err
	}

	var bar Bar
	if err := parseResponse(resp, &bar); err != nil {
		return nil, err
	}

	return &bar, nil
}

// UpdateBar updates a bar owned by the current business account.
func (c *Client) UpdateBar(ctx context.Context, barID string, req UpdateBarRequest) (*Bar, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/business/bars/%s", url.PathEscape(barID)), req)
	if err != nil {
		return nil, err
	}

	var bar Bar
	if err := parseResponse(resp, &bar); err != nil {
		return nil, err
	}

	return &bar, nil
}

// DeleteBar removes a bar owned by the current business account.
func (c *Client) DeleteBar(ctx context.Context, barID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/business/bars/%s", url.PathEscape(barID)), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// CreateEvent creates an event at one of the current business account's bars.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/business/events", req)
	if err != nil {
		return nil, err
	}

	var event Event
	if err := parseResponse(resp, &event); err != nil {
		return nil, err
	}

	return &event, nil
}
