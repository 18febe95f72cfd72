package auth

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrEmptyToken              = errors.New("auth response carried no token")
	ErrInvalidGoogleCredential = errors.New("google credential failed verification")
)
