package subscription

import (
	"context"

	"easyplug-admin/pkg/easyplug"
)

// UseCase manages the subscription tiers offered on the marketplace. The
// cached reference list also feeds the listing wizard's tier rules.
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (DetailOutput, error)
	Update(ctx context.Context, id string, input UpdateInput) (DetailOutput, error)

	// Subscriptions is the reference-list view consumed by other domains.
	Subscriptions(ctx context.Context) ([]easyplug.Subscription, error)
}
