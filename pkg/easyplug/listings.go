package easyplug

import (
	"context"
	"encoding/json"
	"fmt"
)

// CreateListing creates a listing via POST /listings with a multipart body.
func (c *Client) CreateListing(ctx context.Context, payload ListingPayload) (Listing, error) {
	r := c.req(ctx).SetMultipartFormData(payload.Fields)
	for _, img := range payload.Images {
		r.SetFileReader("images", img.Name, img.Reader)
	}

	resp, err := r.Post("/listings")
	if err != nil {
		return Listing{}, fmt.Errorf("failed to call create listing API: %w", err)
	}
	if resp.IsError() {
		return Listing{}, apiError(resp)
	}
	return normalizeListing(resp.Body())
}

// UpdateListing updates a listing via PUT /listings/{id} with a multipart body.
func (c *Client) UpdateListing(ctx context.Context, id string, payload ListingPayload) (Listing, error) {
	r := c.req(ctx).SetMultipartFormData(payload.Fields)
	for _, img := range payload.Images {
		r.SetFileReader("images", img.Name, img.Reader)
	}

	resp, err := r.Put(fmt.Sprintf("/listings/%s", id))
	if err != nil {
		return Listing{}, fmt.Errorf("failed to call update listing API: %w", err)
	}
	if resp.IsError() {
		return Listing{}, apiError(resp)
	}
	return normalizeListing(resp.Body())
}

// GetListing fetches one listing via GET /listings/{id}. The record may come
// back bare or wrapped under a "subscription" key; both are normalized.
func (c *Client) GetListing(ctx context.Context, id string) (Listing, error) {
	resp, err := c.req(ctx).Get(fmt.Sprintf("/listings/%s", id))
	if err != nil {
		return Listing{}, fmt.Errorf("failed to call get listing API: %w", err)
	}
	if resp.IsError() {
		return Listing{}, apiError(resp)
	}
	return normalizeListing(resp.Body())
}

// ListListings fetches the caller's listings via GET /listings.
func (c *Client) ListListings(ctx context.Context, params map[string]string) ([]Listing, error) {
	resp, err := c.req(ctx).
		SetQueryParams(params).
		Get("/listings")
	if err != nil {
		return nil, fmt.Errorf("failed to call list listings API: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return normalizeListingList(resp.Body())
}

// ListAdminListings fetches every listing via GET /listings/admin/all.
func (c *Client) ListAdminListings(ctx context.Context, params map[string]string) ([]Listing, error) {
	resp, err := c.req(ctx).
		SetQueryParams(params).
		Get("/listings/admin/all")
	if err != nil {
		return nil, fmt.Errorf("failed to call admin listings API: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return normalizeListingList(resp.Body())
}

// DeleteListing removes a listing via DELETE /listings/{id}.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	resp, err := c.req(ctx).Delete(fmt.Sprintf("/listings/%s", id))
	if err != nil {
		return fmt.Errorf("failed to call delete listing API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// normalizeListing unwraps the detail shapes the API is known to return:
// a bare record, or the record nested under "subscription".
func normalizeListing(raw []byte) (Listing, error) {
	var wrapped struct {
		Subscription json.RawMessage `json:"subscription"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Subscription) > 0 && string(wrapped.Subscription) != "null" {
		raw = wrapped.Subscription
	}

	var listing Listing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return Listing{}, fmt.Errorf("failed to decode listing response: %w", err)
	}
	return listing, nil
}

// normalizeListingList accepts a bare array, {listings: [...]} or {data: [...]}.
func normalizeListingList(raw []byte) ([]Listing, error) {
	var list []Listing
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Listings []Listing `json:"listings"`
		Data     []Listing `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode listing list response: %w", err)
	}
	if wrapped.Listings != nil {
		return wrapped.Listings, nil
	}
	return wrapped.Data, nil
}
