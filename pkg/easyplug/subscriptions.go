package easyplug

import (
	"context"
	"encoding/json"
	"fmt"
)

// CreateSubscription creates a subscription tier via POST /subscriptions.
func (c *Client) CreateSubscription(ctx context.Context, fields map[string]any) (Subscription, error) {
	resp, err := c.req(ctx).
		SetBody(fields).
		Post("/subscriptions")
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to call create subscription API: %w", err)
	}
	if resp.IsError() {
		return Subscription{}, apiError(resp)
	}
	return normalizeSubscription(resp.Body())
}

// UpdateSubscription updates a subscription tier via PUT /subscriptions/{id}.
func (c *Client) UpdateSubscription(ctx context.Context, id string, fields map[string]any) (Subscription, error) {
	resp, err := c.req(ctx).
		SetBody(fields).
		Put(fmt.Sprintf("/subscriptions/%s", id))
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to call update subscription API: %w", err)
	}
	if resp.IsError() {
		return Subscription{}, apiError(resp)
	}
	return normalizeSubscription(resp.Body())
}

// GetSubscription fetches one subscription via GET /subscriptions/{id}.
func (c *Client) GetSubscription(ctx context.Context, id string) (Subscription, error) {
	resp, err := c.req(ctx).Get(fmt.Sprintf("/subscriptions/%s", id))
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to call get subscription API: %w", err)
	}
	if resp.IsError() {
		return Subscription{}, apiError(resp)
	}
	return normalizeSubscription(resp.Body())
}

// ListSubscriptions fetches the subscription reference list via
// GET /subscriptions and normalizes the response shape.
func (c *Client) ListSubscriptions(ctx context.Context, params map[string]string) ([]Subscription, error) {
	resp, err := c.req(ctx).
		SetQueryParams(params).
		Get("/subscriptions")
	if err != nil {
		return nil, fmt.Errorf("failed to call list subscriptions API: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return NormalizeSubscriptions(resp.Body())
}

// normalizeSubscription unwraps a detail response that may nest the record
// under a "subscription" key.
func normalizeSubscription(raw []byte) (Subscription, error) {
	var wrapped struct {
		Subscription json.RawMessage `json:"subscription"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Subscription) > 0 && string(wrapped.Subscription) != "null" {
		raw = wrapped.Subscription
	}

	var sub Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return Subscription{}, fmt.Errorf("failed to decode subscription response: %w", err)
	}
	return sub, nil
}

// NormalizeSubscriptions accepts the three list shapes the API is known to
// return — {subscriptions: [...]}, a bare array, or {data: [...]} — and
// produces one canonical slice.
func NormalizeSubscriptions(raw []byte) ([]Subscription, error) {
	var list []Subscription
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Subscriptions []Subscription `json:"subscriptions"`
		Data          []Subscription `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode subscription list response: %w", err)
	}
	if wrapped.Subscriptions != nil {
		return wrapped.Subscriptions, nil
	}
	return wrapped.Data, nil
}
