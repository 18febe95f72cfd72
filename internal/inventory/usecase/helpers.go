package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"easyplug-admin/internal/inventory"
)

// spoolImage copies an upload into a temp file that lives until the image is
// removed or the session torn down.
func (uc *implUseCase) spoolImage(up inventory.ImageUpload) (storedImage, error) {
	f, err := os.CreateTemp("", "easyplug-wizard-*")
	if err != nil {
		return storedImage{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(f, up.Reader); err != nil {
		f.Close()
		os.Remove(f.Name())
		return storedImage{}, fmt.Errorf("failed to spool %s: %w", up.Name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return storedImage{}, fmt.Errorf("failed to close temp file: %w", err)
	}
	return storedImage{name: up.Name, path: f.Name()}, nil
}

// releaseImage deletes the backing temp file. Best effort; a leftover temp
// file is not worth failing the operation over.
func (uc *implUseCase) releaseImage(ctx context.Context, img storedImage) {
	if err := os.Remove(img.path); err != nil && !os.IsNotExist(err) {
		uc.l.Warnf(ctx, "inventory.usecase.releaseImage: %v", err)
	}
}

// regeneratePreviews drops every current preview handle and mints fresh ones,
// one per held image. Handles from before the call stop resolving.
func (uc *implUseCase) regeneratePreviews(ctx context.Context, s *wizardSession) {
	s.previews = s.previews[:0]
	for range s.images {
		id := uuid.NewString()
		s.previews = append(s.previews, previewHandle{
			id:  id,
			url: fmt.Sprintf("/api/v1/inventory/wizard/%s/previews/%s", s.id, id),
		})
	}
}

// session looks a wizard session up, reaping any that sat idle past the
// session TTL first. A hit refreshes the session's idle clock. Caller holds
// uc.mu.
func (uc *implUseCase) session(ctx context.Context, id string) (*wizardSession, bool) {
	uc.expireStale(ctx)
	s, ok := uc.sessions[id]
	if ok {
		s.lastTouched = time.Now()
	}
	return s, ok
}

// expireStale tears down every session whose last touch is older than the
// session TTL. There is no client-side unmount signal for an abandoned tab,
// so idle expiry is what releases its temp files. Caller holds uc.mu.
func (uc *implUseCase) expireStale(ctx context.Context) {
	cutoff := time.Now().Add(-uc.sessionTTL)
	for id, s := range uc.sessions {
		if s.lastTouched.Before(cutoff) {
			uc.teardown(ctx, s)
			delete(uc.sessions, id)
		}
	}
}

// teardown releases every preview handle and spooled image. Callers remove
// the session from the registry themselves.
func (uc *implUseCase) teardown(ctx context.Context, s *wizardSession) {
	s.previews = nil
	for _, img := range s.images {
		uc.releaseImage(ctx, img)
	}
	s.images = nil
}

// snapshot renders the session for delivery. Caller holds uc.mu.
func (uc *implUseCase) snapshot(s *wizardSession) inventory.WizardOutput {
	images := make([]inventory.ImageInfo, 0, len(s.images))
	for i, img := range s.images {
		images = append(images, inventory.ImageInfo{
			Name:       img.name,
			PreviewURL: s.previews[i].url,
		})
	}
	return inventory.WizardOutput{
		SessionID:       s.id,
		Edit:            s.edit,
		Step:            s.step,
		Values:          s.values,
		Images:          images,
		ImageWarning:    s.imageWarning,
		ConditionLocked: inventory.IsStandardTier(s.subs, s.values.SubscriptionID),
		Subscriptions:   s.subs,
	}
}
