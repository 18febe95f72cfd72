package auth

import "easyplug-admin/pkg/easyplug"

type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the Google ID token credential from the sign-in
// button.
type GoogleLoginInput struct {
	Credential string
}

// RegisterInput is the seller registration form. Files travel under their
// multipart field names (profilePicture, businessPicture).
type RegisterInput struct {
	Fields map[string]string
	Files  map[string]easyplug.ImageFile
}

// SessionOutput reports where the client should land after an auth action.
type SessionOutput struct {
	Redirect string
}

type SendCodeOutput struct {
	Message string
}
