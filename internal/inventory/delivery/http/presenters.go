package http

import (
	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/card"
	"easyplug-admin/pkg/easyplug"
)

// --- Request DTOs ---

type openWizardReq struct {
	ListingID string `json:"listingId"`
}

func (r openWizardReq) toInput() inventory.OpenWizardInput {
	return inventory.OpenWizardInput{ListingID: r.ListingID}
}

type updateFieldsReq struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Price           *string `json:"price"`
	Category        *string `json:"category"`
	Type            *string `json:"type"            binding:"omitempty,oneof=PRODUCTS SERVICES"`
	IsAdvertisement *bool   `json:"isAdvertisement"`
	SubscriptionID  *string `json:"subscriptionId"`
	Condition       *string `json:"condition"       binding:"omitempty,oneof=New Old"`
	Status          *string `json:"status"          binding:"omitempty,oneof=active draft sold expired"`
	ExpiresAt       *string `json:"expires_at"`
}

func (r updateFieldsReq) toChanges() inventory.FieldChanges {
	return inventory.FieldChanges{
		Title:           r.Title,
		Description:     r.Description,
		Price:           r.Price,
		Category:        r.Category,
		Type:            r.Type,
		IsAdvertisement: r.IsAdvertisement,
		SubscriptionID:  r.SubscriptionID,
		Condition:       r.Condition,
		Status:          r.Status,
		ExpiresAt:       r.ExpiresAt,
	}
}

type payReq struct {
	Method string  `json:"method" binding:"required"`
	Card   cardReq `json:"card"`
}

type cardReq struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

func (r payReq) toInput() inventory.PayInput {
	return inventory.PayInput{
		Method: r.Method,
		Card: card.Details{
			Number: r.Card.Number,
			Name:   r.Card.Name,
			Expiry: r.Card.Expiry,
			CVV:    r.Card.CVV,
		},
	}
}

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=active draft sold expired"`
	Type   string `form:"type"   binding:"omitempty,oneof=PRODUCTS SERVICES"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() inventory.ListInput {
	limit := r.Limit
	if limit < 0 || limit > 100 {
		limit = 0
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return inventory.ListInput{
		Status: r.Status,
		Type:   r.Type,
		Limit:  limit,
		Offset: offset,
	}
}

// --- Response DTOs ---

type formValuesResp struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	Category        string `json:"category"`
	Type            string `json:"type"`
	IsAdvertisement bool   `json:"isAdvertisement"`
	SubscriptionID  string `json:"subscriptionId"`
	Condition       string `json:"condition"`
	Status          string `json:"status"`
	ExpiresAt       string `json:"expires_at"`
}

type imageResp struct {
	Name       string `json:"name"`
	PreviewURL string `json:"previewUrl"`
}

type wizardResp struct {
	SessionID       string                  `json:"sessionId"`
	Edit            bool                    `json:"edit"`
	Step            string                  `json:"step"`
	Values          formValuesResp          `json:"values"`
	Images          []imageResp             `json:"images"`
	ImageWarning    string                  `json:"imageWarning,omitempty"`
	ConditionLocked bool                    `json:"conditionLocked"`
	Subscriptions   []easyplug.Subscription `json:"subscriptions"`
}

func (h *handler) newWizardResp(out inventory.WizardOutput) wizardResp {
	images := make([]imageResp, 0, len(out.Images))
	for _, img := range out.Images {
		images = append(images, imageResp{Name: img.Name, PreviewURL: img.PreviewURL})
	}
	return wizardResp{
		SessionID: out.SessionID,
		Edit:      out.Edit,
		Step:      string(out.Step),
		Values: formValuesResp{
			Title:           out.Values.Title,
			Description:     out.Values.Description,
			Price:           out.Values.Price,
			Category:        out.Values.Category,
			Type:            out.Values.Type,
			IsAdvertisement: out.Values.IsAdvertisement,
			SubscriptionID:  out.Values.SubscriptionID,
			Condition:       out.Values.Condition,
			Status:          out.Values.Status,
			ExpiresAt:       out.Values.ExpiresAt,
		},
		Images:          images,
		ImageWarning:    out.ImageWarning,
		ConditionLocked: out.ConditionLocked,
		Subscriptions:   out.Subscriptions,
	}
}

type submitResp struct {
	Wizard   *wizardResp      `json:"wizard,omitempty"`
	Message  string           `json:"message"`
	Redirect string           `json:"redirect,omitempty"`
	Listing  easyplug.Listing `json:"listing"`
}

func (h *handler) newSubmitResp(out inventory.SubmitOutput) submitResp {
	resp := submitResp{
		Message:  out.Message,
		Redirect: out.Redirect,
		Listing:  out.Listing,
	}
	if out.Wizard.SessionID != "" {
		w := h.newWizardResp(out.Wizard)
		resp.Wizard = &w
	}
	return resp
}

type payResp struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type listResp struct {
	Listings []easyplug.Listing `json:"listings"`
	Total    int                `json:"total"`
}

type detailResp struct {
	Listing easyplug.Listing `json:"listing"`
}
