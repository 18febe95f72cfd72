package http

import (
	"errors"

	"easyplug-admin/internal/account"
	"easyplug-admin/pkg/easyplug"
	pkgErrors "easyplug-admin/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, account.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	case errors.Is(err, account.ErrNoChanges):
		return pkgErrors.NewHTTPError(400, "no fields to update")
	}
	return pkgErrors.NewHTTPError(502, easyplug.ServerMessage(err, "EasyPlug API request failed"))
}
