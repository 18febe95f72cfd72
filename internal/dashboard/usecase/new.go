package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"easyplug-admin/internal/dashboard"
	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// ListingSource provides the listing collection the metrics are derived from.
type ListingSource interface {
	ListAdminListings(ctx context.Context, params map[string]string) ([]easyplug.Listing, error)
}

const metricsKey = "metrics"

type implUseCase struct {
	l   log.Logger
	api ListingSource

	cache *expirable.LRU[string, dashboard.Metrics]
}

// New creates a new dashboard UseCase implementation. metricsTTL bounds how
// long a computed snapshot is served from cache.
func New(l log.Logger, api ListingSource, metricsTTL time.Duration) *implUseCase {
	if metricsTTL <= 0 {
		metricsTTL = 30 * time.Second
	}
	return &implUseCase{
		l:     l,
		api:   api,
		cache: expirable.NewLRU[string, dashboard.Metrics](1, nil, metricsTTL),
	}
}
