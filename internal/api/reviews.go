package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListReviews retrieves the reviews for a bar.
func (c *Client) ListReviews(ctx context.Context, barID string) ([]Review, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/bars/%s/reviews", url.PathEscape(barID)), nil)
	if err != nil {
		return nil, err
	}

	var reviews []Review
	if err := parseResponse(resp, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// CreateReview posts a review of a bar as the current user.
func (c *Client) CreateReview(ctx context.Context, barID string, req CreateReviewRequest) (*Review, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/bars/%s/reviews", url.PathEscape(barID)), req)
	if err != nil {
		return nil, err
	}

	var review Review
	if err := parseResponse(resp, &review); err != nil {
		return nil, err
	}

	return &review, nil
}
