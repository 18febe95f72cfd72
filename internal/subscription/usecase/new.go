package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// SubscriptionAPI is the slice of the EasyPlug client this usecase talks to.
type SubscriptionAPI interface {
	ListSubscriptions(ctx context.Context, params map[string]string) ([]easyplug.Subscription, error)
	GetSubscription(ctx context.Context, id string) (easyplug.Subscription, error)
	CreateSubscription(ctx context.Context, fields map[string]any) (easyplug.Subscription, error)
	UpdateSubscription(ctx context.Context, id string, fields map[string]any) (easyplug.Subscription, error)
}

const listKey = "all"

type implUseCase struct {
	l   log.Logger
	api SubscriptionAPI

	cache *expirable.LRU[string, []easyplug.Subscription]
}

// New creates a new subscription UseCase implementation. listTTL bounds how
// long the tier list is served from cache.
func New(l log.Logger, api SubscriptionAPI, listTTL time.Duration) *implUseCase {
	if listTTL <= 0 {
		listTTL = time.Minute
	}
	return &implUseCase{
		l:     l,
		api:   api,
		cache: expirable.NewLRU[string, []easyplug.Subscription](1, nil, listTTL),
	}
}
