package inventory

import "errors"

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrPreviewNotFound  = errors.New("preview not found")
	ErrImageOutOfRange  = errors.New("image index out of range")
	ErrWrongStep        = errors.New("operation not valid on this wizard step")
	ErrNextRequiresEdit = errors.New("only edit sessions can skip ahead to payment")
	ErrValidation       = errors.New("validation failed")
	ErrCardIncomplete   = errors.New("card details are incomplete or invalid")
	ErrUnknownPayMethod = errors.New("unknown payment method")
	ErrListingNotFound  = errors.New("listing not found")
)
