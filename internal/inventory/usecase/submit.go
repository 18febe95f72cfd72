package usecase

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/easyplug"
)

func (uc *implUseCase) Submit(ctx context.Context, sessionID string) (inventory.SubmitOutput, error) {
	uc.mu.Lock()
	s, ok := uc.session(ctx, sessionID)
	if !ok {
		uc.mu.Unlock()
		return inventory.SubmitOutput{}, inventory.ErrSessionNotFound
	}
	if s.step != inventory.StepDetails {
		uc.mu.Unlock()
		return inventory.SubmitOutput{}, inventory.ErrWrongStep
	}

	if errs := inventory.ValidateDetails(s.values, len(s.images), s.subs); len(errs) > 0 {
		out := inventory.SubmitOutput{Wizard: uc.snapshot(s), FieldErrors: errs}
		uc.mu.Unlock()
		return out, inventory.ErrValidation
	}

	payload, err := uc.buildPayload(s)
	edit, listingID := s.edit, s.listingID
	uc.mu.Unlock()
	if err != nil {
		return inventory.SubmitOutput{}, err
	}

	// The session stays untouched while the upstream call is in flight so a
	// failed submit can be retried as-is.
	var listing easyplug.Listing
	if edit {
		listing, err = uc.api.UpdateListing(ctx, listingID, payload)
	} else {
		listing, err = uc.api.CreateListing(ctx, payload)
	}
	if err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.Submit: %v", err)
		return inventory.SubmitOutput{}, fmt.Errorf("failed to save listing: %w", err)
	}

	uc.listCache.Purge()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok = uc.session(ctx, sessionID)
	if !ok {
		return inventory.SubmitOutput{}, inventory.ErrSessionNotFound
	}

	if edit {
		uc.teardown(ctx, s)
		delete(uc.sessions, sessionID)
		return inventory.SubmitOutput{
			Message:  "Item updated",
			Redirect: "/inventory",
			Listing:  listing,
		}, nil
	}

	s.step = inventory.StepPayment
	return inventory.SubmitOutput{
		Wizard:  uc.snapshot(s),
		Message: "Item created - continue to payment",
		Listing: listing,
	}, nil
}

// buildPayload renders the session as a multipart payload. Every field goes
// on the wire, empty or not; isAdvertisement only travels on edits. Caller
// holds uc.mu.
func (uc *implUseCase) buildPayload(s *wizardSession) (easyplug.ListingPayload, error) {
	fields := map[string]string{
		"title":          s.values.Title,
		"description":    s.values.Description,
		"price":          s.values.Price,
		"category":       s.values.Category,
		"type":           s.values.Type,
		"condition":      s.values.Condition,
		"status":         s.values.Status,
		"subscriptionId": s.values.SubscriptionID,
		"expires_at":     s.values.ExpiresAt,
	}
	if s.edit {
		fields["isAdvertisement"] = strconv.FormatBool(s.values.IsAdvertisement)
	}

	images := make([]easyplug.ImageFile, 0, len(s.images))
	for _, img := range s.images {
		data, err := os.ReadFile(img.path)
		if err != nil {
			return easyplug.ListingPayload{}, fmt.Errorf("failed to read image %s: %w", img.name, err)
		}
		images = append(images, easyplug.ImageFile{
			Name:   img.name,
			Reader: bytes.NewReader(data),
		})
	}

	return easyplug.ListingPayload{Fields: fields, Images: images}, nil
}
