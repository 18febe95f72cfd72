package inventory

import "context"

// UseCase drives the inventory screens: the listing collection and the
// two-step listing wizard with its mock payment.
type UseCase interface {
	// Collection
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Delete(ctx context.Context, id string) error

	// Wizard lifecycle
	OpenWizard(ctx context.Context, input OpenWizardInput) (WizardOutput, error)
	Wizard(ctx context.Context, sessionID string) (WizardOutput, error)
	UpdateFields(ctx context.Context, sessionID string, changes FieldChanges) (WizardOutput, error)
	AddImages(ctx context.Context, sessionID string, files []ImageUpload) (WizardOutput, error)
	RemoveImage(ctx context.Context, sessionID string, index int) (WizardOutput, error)
	Preview(ctx context.Context, sessionID, previewID string) (PreviewOutput, error)
	Next(ctx context.Context, sessionID string) (WizardOutput, error)
	Submit(ctx context.Context, sessionID string) (SubmitOutput, error)
	Pay(ctx context.Context, sessionID string, input PayInput) (PayOutput, error)
	CancelWizard(ctx context.Context, sessionID string) error
}
