package http

import (
	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/easyplug"
	pkgErrors "easyplug-admin/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Upstream API errors surface the server's own message.
func (h *handler) mapError(err error) error {
	switch err {
	case inventory.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(404, "wizard session not found")
	case inventory.ErrPreviewNotFound:
		return pkgErrors.NewHTTPError(404, "preview not found")
	case inventory.ErrListingNotFound:
		return pkgErrors.NewHTTPError(404, "listing not found")
	case inventory.ErrImageOutOfRange:
		return pkgErrors.NewHTTPError(400, "image index out of range")
	case inventory.ErrWrongStep:
		return pkgErrors.NewHTTPError(409, "operation not valid on this wizard step")
	case inventory.ErrNextRequiresEdit:
		return pkgErrors.NewHTTPError(409, "only edit sessions can skip ahead to payment")
	case inventory.ErrCardIncomplete:
		return pkgErrors.NewHTTPError(422, "card details are incomplete or invalid")
	case inventory.ErrUnknownPayMethod:
		return pkgErrors.NewHTTPError(400, "unknown payment method")
	}
	return pkgErrors.NewHTTPError(502, easyplug.ServerMessage(err, "EasyPlug API request failed"))
}
