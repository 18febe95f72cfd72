package easyplug

import (
	"context"
	"fmt"
)

// Login authenticates with email and password via POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (TokenEnvelope, error) {
	var out TokenEnvelope

	resp, err := c.req(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return TokenEnvelope{}, fmt.Errorf("failed to call login API: %w", err)
	}
	if resp.IsError() {
		return TokenEnvelope{}, apiError(resp)
	}
	return out, nil
}

// GoogleLogin exchanges a Google ID token credential for an API token via
// POST /auth/login/google.
func (c *Client) GoogleLogin(ctx context.Context, credential string) (TokenEnvelope, error) {
	var out TokenEnvelope

	resp, err := c.req(ctx).
		SetBody(map[string]string{"credential": credential}).
		SetResult(&out).
		Post("/auth/login/google")
	if err != nil {
		return TokenEnvelope{}, fmt.Errorf("failed to call google login API: %w", err)
	}
	if resp.IsError() {
		return TokenEnvelope{}, apiError(resp)
	}
	return out, nil
}

// RegisterSeller registers a new seller via POST /auth/register/seller.
// The body is multipart: plain fields plus optional picture files appended
// under their declared field names.
func (c *Client) RegisterSeller(ctx context.Context, fields map[string]string, files map[string]ImageFile) (TokenEnvelope, error) {
	var out TokenEnvelope

	r := c.req(ctx).
		SetMultipartFormData(fields).
		SetResult(&out)
	for fieldName, f := range files {
		r.SetFileReader(fieldName, f.Name, f.Reader)
	}

	resp, err := r.Post("/auth/register/seller")
	if err != nil {
		return TokenEnvelope{}, fmt.Errorf("failed to call seller register API: %w", err)
	}
	if resp.IsError() {
		return TokenEnvelope{}, apiError(resp)
	}
	return out, nil
}

// SendCode requests an email verification code via POST /auth/send-code.
func (c *Client) SendCode(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}

	resp, err := c.req(ctx).
		SetBody(map[string]string{"email": email}).
		SetResult(&out).
		Post("/auth/send-code")
	if err != nil {
		return "", fmt.Errorf("failed to call send code API: %w", err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return out.Message, nil
}

// Me verifies the current token via GET /auth/me. A 401 means the token is
// invalid or expired.
func (c *Client) Me(ctx context.Context) (Identity, error) {
	var out Identity

	resp, err := c.req(ctx).
		SetResult(&out).
		Get("/auth/me")
	if err != nil {
		return Identity{}, fmt.Errorf("failed to call identity API: %w", err)
	}
	if resp.IsError() {
		return Identity{}, apiError(resp)
	}
	return out, nil
}

// MeFull fetches the full profile (user + seller info) via GET /auth/me/full.
func (c *Client) MeFull(ctx context.Context) (Profile, error) {
	var out Profile

	resp, err := c.req(ctx).
		SetResult(&out).
		Get("/auth/me/full")
	if err != nil {
		return Profile{}, fmt.Errorf("failed to call full profile API: %w", err)
	}
	if resp.IsError() {
		return Profile{}, apiError(resp)
	}
	return out, nil
}

// UpdateUser updates user fields via PUT /users/{id}.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) (User, error) {
	var out User

	resp, err := c.req(ctx).
		SetBody(fields).
		SetResult(&out).
		Put(fmt.Sprintf("/users/%s", id))
	if err != nil {
		return User{}, fmt.Errorf("failed to call update user API: %w", err)
	}
	if resp.IsError() {
		return User{}, apiError(resp)
	}
	return out, nil
}

// UploadProfilePicture uploads the current user's profile picture via
// POST /users/me/profile-picture, multipart field "profilePicture".
func (c *Client) UploadProfilePicture(ctx context.Context, file ImageFile) error {
	resp, err := c.req(ctx).
		SetFileReader("profilePicture", file.Name, file.Reader).
		Post("/users/me/profile-picture")
	if err != nil {
		return fmt.Errorf("failed to call profile picture API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}
