package subscription

import "easyplug-admin/pkg/easyplug"

// CreateInput is the subscription form as typed. Numeric fields stay strings
// so a bad number is a field error, not a bind failure.
type CreateInput struct {
	Name            string
	DurationInHours string
	Price           string
	Description     string
	Status          string
}

// UpdateInput carries the same form for an existing tier.
type UpdateInput = CreateInput

type ListOutput struct {
	Subscriptions []easyplug.Subscription
}

type DetailOutput struct {
	Subscription easyplug.Subscription
}
