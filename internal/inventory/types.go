package inventory

import (
	"io"

	"easyplug-admin/pkg/card"
	"easyplug-admin/pkg/easyplug"
)

// Step is the wizard position.
type Step string

const (
	StepDetails Step = "details"
	StepPayment Step = "payment"
)

// Listing type values.
const (
	TypeServices = "SERVICES"
	TypeProducts = "PRODUCTS"
)

// Condition values.
const (
	ConditionOld = "Old"
	ConditionNew = "New"
)

// Payment methods offered on the mock payment step.
const (
	PayMethodMasterCard = "mastercard"
	PayMethodCapitec    = "capitec"
)

// MaxImages and MinImages bound the image set at submit time.
const (
	MaxImages = 6
	MinImages = 3
)

// FormValues is the listing draft as held by the wizard. Price stays a string
// until submit so "not a number" is a validation error, not a bind failure.
type FormValues struct {
	Title           string
	Description     string
	Price           string
	Category        string
	Type            string
	IsAdvertisement bool
	SubscriptionID  string
	Condition       string
	Status          string
	ExpiresAt       string
}

// DefaultFormValues are the create-mode defaults.
func DefaultFormValues() FormValues {
	return FormValues{
		Type:            TypeProducts,
		Condition:       ConditionNew,
		Status:          "active",
		IsAdvertisement: false,
	}
}

// FormValuesFromListing prefills the wizard from an existing listing.
func FormValuesFromListing(l easyplug.Listing) FormValues {
	v := DefaultFormValues()
	v.Title = l.Title
	v.Description = l.Description
	if l.Price != 0 {
		v.Price = trimFloat(l.Price)
	}
	v.Category = l.Category
	if l.Type != "" {
		v.Type = l.Type
	}
	v.IsAdvertisement = l.IsAdvertisement
	v.SubscriptionID = l.SubscriptionID
	if l.Condition != "" {
		v.Condition = l.Condition
	}
	if l.Status != "" {
		v.Status = l.Status
	}
	v.ExpiresAt = l.ExpiresAt
	return v
}

// FieldChanges is a partial update of FormValues; nil fields stay untouched.
type FieldChanges struct {
	Title           *string
	Description     *string
	Price           *string
	Category        *string
	Type            *string
	IsAdvertisement *bool
	SubscriptionID  *string
	Condition       *string
	Status          *string
	ExpiresAt       *string
}

// Apply copies the set fields onto v.
func (c FieldChanges) Apply(v *FormValues) {
	if c.Title != nil {
		v.Title = *c.Title
	}
	if c.Description != nil {
		v.Description = *c.Description
	}
	if c.Price != nil {
		v.Price = *c.Price
	}
	if c.Category != nil {
		v.Category = *c.Category
	}
	if c.Type != nil {
		v.Type = *c.Type
	}
	if c.IsAdvertisement != nil {
		v.IsAdvertisement = *c.IsAdvertisement
	}
	if c.SubscriptionID != nil {
		v.SubscriptionID = *c.SubscriptionID
	}
	if c.Condition != nil {
		v.Condition = *c.Condition
	}
	if c.Status != nil {
		v.Status = *c.Status
	}
	if c.ExpiresAt != nil {
		v.ExpiresAt = *c.ExpiresAt
	}
}

// ImageUpload is one picked file on its way into the wizard.
type ImageUpload struct {
	Name   string
	Reader io.Reader
}

// ImageInfo describes one held image and its current preview handle.
type ImageInfo struct {
	Name       string
	PreviewURL string
}

// --- UseCase inputs ---

type OpenWizardInput struct {
	ListingID string // non-empty opens the wizard in edit mode
}

type PayInput struct {
	Method string
	Card   card.Details
}

type ListInput struct {
	Status string
	Type   string
	Limit  int
	Offset int
}

// --- UseCase outputs ---

// WizardOutput is the wizard session as rendered to the admin surface.
type WizardOutput struct {
	SessionID       string
	Edit            bool
	Step            Step
	Values          FormValues
	Images          []ImageInfo
	ImageWarning    string
	ConditionLocked bool
	Subscriptions   []easyplug.Subscription
}

// SubmitOutput reports the result of a details-step submission.
type SubmitOutput struct {
	Wizard      WizardOutput
	FieldErrors map[string]string
	Message     string
	Redirect    string // set on terminal transitions
	Listing     easyplug.Listing
}

// PayOutput reports the result of the mock payment.
type PayOutput struct {
	Message  string
	Redirect string
}

type PreviewOutput struct {
	Name string
	Path string // local temp-file path backing the preview
}

type ListOutput struct {
	Listings []easyplug.Listing
	Total    int
}

type DetailOutput struct {
	Listing easyplug.Listing
}
