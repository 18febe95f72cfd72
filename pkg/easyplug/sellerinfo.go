package easyplug

import (
	"context"
	"fmt"
)

// UpdateSellerInfo updates a seller record via PUT /seller-info/{id}.
func (c *Client) UpdateSellerInfo(ctx context.Context, id string, fields map[string]any) (SellerInfo, error) {
	var out SellerInfo

	resp, err := c.req(ctx).
		SetBody(fields).
		SetResult(&out).
		Put(fmt.Sprintf("/seller-info/%s", id))
	if err != nil {
		return SellerInfo{}, fmt.Errorf("failed to call update seller info API: %w", err)
	}
	if resp.IsError() {
		return SellerInfo{}, apiError(resp)
	}
	return out, nil
}

// UpdateSellerInfoMe updates the current user's seller record via
// PUT /seller-info/me.
func (c *Client) UpdateSellerInfoMe(ctx context.Context, fields map[string]any) (SellerInfo, error) {
	var out SellerInfo

	resp, err := c.req(ctx).
		SetBody(fields).
		SetResult(&out).
		Put("/seller-info/me")
	if err != nil {
		return SellerInfo{}, fmt.Errorf("failed to call update seller info API: %w", err)
	}
	if resp.IsError() {
		return SellerInfo{}, apiError(resp)
	}
	return out, nil
}

// UploadBusinessPicture uploads the current user's business picture via
// POST /seller-info/me/business-picture, multipart field "businessPicture".
func (c *Client) UploadBusinessPicture(ctx context.Context, file ImageFile) error {
	resp, err := c.req(ctx).
		SetFileReader("businessPicture", file.Name, file.Reader).
		Post("/seller-info/me/business-picture")
	if err != nil {
		return fmt.Errorf("failed to call business picture API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
