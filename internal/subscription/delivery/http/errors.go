package http

import (
	"easyplug-admin/internal/subscription"
	"easyplug-admin/pkg/easyplug"
	pkgErrors "easyplug-admin/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case subscription.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "subscription not found")
	}
	return pkgErrors.NewHTTPError(502, easyplug.ServerMessage(err, "EasyPlug API request failed"))
}
