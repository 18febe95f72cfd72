package account

import "easyplug-admin/pkg/easyplug"

// UserInput is a partial user update; nil fields stay untouched.
type UserInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

// Fields renders the set fields for the wire.
func (in UserInput) Fields() map[string]any {
	fields := make(map[string]any)
	if in.FirstName != nil {
		fields["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["lastName"] = *in.LastName
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.PhoneNumber != nil {
		fields["phoneNumber"] = *in.PhoneNumber
	}
	return fields
}

// SellerInfoInput is a partial seller-info update; nil fields stay untouched.
type SellerInfoInput struct {
	BusinessName    *string
	BusinessAddress *string
	Description     *string
}

// Fields renders the set fields for the wire.
func (in SellerInfoInput) Fields() map[string]any {
	fields := make(map[string]any)
	if in.BusinessName != nil {
		fields["businessName"] = *in.BusinessName
	}
	if in.BusinessAddress != nil {
		fields["businessAddress"] = *in.BusinessAddress
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	return fields
}

type ProfileOutput struct {
	Profile easyplug.Profile
}
