package http

import (
	"errors"

	"easyplug-admin/internal/auth"
	"easyplug-admin/pkg/easyplug"
	pkgErrors "easyplug-admin/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(401, easyplug.ServerMessage(err, "Invalid email or password"))
	case errors.Is(err, auth.ErrInvalidGoogleCredential):
		return pkgErrors.NewHTTPError(401, "Google credential failed verification")
	case errors.Is(err, auth.ErrEmptyToken):
		return pkgErrors.NewHTTPError(502, "auth service returned no token")
	case easyplug.IsUnauthorized(err):
		return pkgErrors.NewHTTPError(401, easyplug.ServerMessage(err, "Unauthorized"))
	}
	return pkgErrors.NewHTTPError(502, easyplug.ServerMessage(err, "EasyPlug API request failed"))
}
