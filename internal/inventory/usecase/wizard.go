package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/easyplug"
)

func (uc *implUseCase) OpenWizard(ctx context.Context, input inventory.OpenWizardInput) (inventory.WizardOutput, error) {
	subs, err := uc.subs.Subscriptions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.OpenWizard.Subscriptions: %v", err)
		return inventory.WizardOutput{}, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	s := &wizardSession{
		id:     uuid.NewString(),
		step:   inventory.StepDetails,
		values: inventory.DefaultFormValues(),
		subs:   subs,
	}

	if input.ListingID != "" {
		listing, err := uc.api.GetListing(ctx, input.ListingID)
		if err != nil {
			if easyplug.IsNotFound(err) {
				return inventory.WizardOutput{}, inventory.ErrListingNotFound
			}
			uc.l.Errorf(ctx, "inventory.usecase.OpenWizard.GetListing: %v", err)
			return inventory.WizardOutput{}, fmt.Errorf("failed to load listing %s: %w", input.ListingID, err)
		}
		s.edit = true
		s.listingID = input.ListingID
		s.values = inventory.FormValuesFromListing(listing)
		if s.values.SubscriptionID != "" {
			inventory.DeriveOnSubscriptionChange(&s.values, s.subs)
		}
		s.prevSubscription = s.values.SubscriptionID
	}

	uc.mu.Lock()
	uc.expireStale(ctx)
	s.lastTouched = time.Now()
	uc.sessions[s.id] = s
	out := uc.snapshot(s)
	uc.mu.Unlock()

	return out, nil
}

func (uc *implUseCase) Wizard(ctx context.Context, sessionID string) (inventory.WizardOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.WizardOutput{}, inventory.ErrSessionNotFound
	}
	return uc.snapshot(s), nil
}

func (uc *implUseCase) UpdateFields(ctx context.Context, sessionID string, changes inventory.FieldChanges) (inventory.WizardOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.WizardOutput{}, inventory.ErrSessionNotFound
	}

	changes.Apply(&s.values)

	// Derived fields only react to an actual selection change so an edit
	// session keeps its loaded state across unrelated updates.
	if s.values.SubscriptionID != s.prevSubscription {
		inventory.DeriveOnSubscriptionChange(&s.values, s.subs)
		s.prevSubscription = s.values.SubscriptionID
	}

	return uc.snapshot(s), nil
}

func (uc *implUseCase) AddImages(ctx context.Context, sessionID string, uploads []inventory.ImageUpload) (inventory.WizardOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.WizardOutput{}, inventory.ErrSessionNotFound
	}
	if s.step != inventory.StepDetails {
		return inventory.WizardOutput{}, inventory.ErrWrongStep
	}

	room := inventory.MaxImages - len(s.images)
	overflow := len(uploads) > room

	var spooled []storedImage
	for i, up := range uploads {
		if i >= room {
			break
		}
		img, err := uc.spoolImage(up)
		if err != nil {
			for _, prev := range spooled {
				uc.releaseImage(ctx, prev)
			}
			uc.l.Errorf(ctx, "inventory.usecase.AddImages.spoolImage: %v", err)
			return inventory.WizardOutput{}, fmt.Errorf("failed to store image %s: %w", up.Name, err)
		}
		spooled = append(spooled, img)
	}
	s.images = append(s.images, spooled...)

	if overflow {
		s.imageWarning = "Maximum 6 images allowed"
	}
	uc.regeneratePreviews(ctx, s)

	return uc.snapshot(s), nil
}

func (uc *implUseCase) RemoveImage(ctx context.Context, sessionID string, index int) (inventory.WizardOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.WizardOutput{}, inventory.ErrSessionNotFound
	}
	if index < 0 || index >= len(s.images) {
		return inventory.WizardOutput{}, inventory.ErrImageOutOfRange
	}

	uc.releaseImage(ctx, s.images[index])
	s.images = append(s.images[:index], s.images[index+1:]...)
	s.imageWarning = ""
	uc.regeneratePreviews(ctx, s)

	return uc.snapshot(s), nil
}

func (uc *implUseCase) Preview(ctx context.Context, sessionID, previewID string) (inventory.PreviewOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.PreviewOutput{}, inventory.ErrSessionNotFound
	}
	for i, p := range s.previews {
		if p.id == previewID {
			return inventory.PreviewOutput{
				Name: s.images[i].name,
				Path: s.images[i].path,
			}, nil
		}
	}
	return inventory.PreviewOutput{}, inventory.ErrPreviewNotFound
}

func (uc *implUseCase) Next(ctx context.Context, sessionID string) (inventory.WizardOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.WizardOutput{}, inventory.ErrSessionNotFound
	}
	// Creating reaches the payment step through a successful submit only.
	if !s.edit {
		return inventory.WizardOutput{}, inventory.ErrNextRequiresEdit
	}
	s.step = inventory.StepPayment
	return uc.snapshot(s), nil
}

func (uc *implUseCase) CancelWizard(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.ErrSessionNotFound
	}
	uc.teardown(ctx, s)
	delete(uc.sessions, sessionID)
	return nil
}
