package usecase

import (
	"context"
	"fmt"

	"easyplug-admin/internal/dashboard"
)

func (uc *implUseCase) Metrics(ctx context.Context) (dashboard.MetricsOutput, error) {
	if m, ok := uc.cache.Get(metricsKey); ok {
		return dashboard.MetricsOutput{Metrics: m}, nil
	}

	listings, err := uc.api.ListAdminListings(ctx, nil)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Metrics: %v", err)
		return dashboard.MetricsOutput{}, fmt.Errorf("failed to load listings for metrics: %w", err)
	}

	var m dashboard.Metrics
	m.TotalListings = len(listings)
	for _, l := range listings {
		switch l.Status {
		case "active":
			m.Active++
		case "draft":
			m.Draft++
		case "sold":
			m.Sold++
		case "expired":
			m.Expired++
		}
		switch l.Type {
		case "PRODUCTS":
			m.Products++
		case "SERVICES":
			m.Services++
		}
		if l.IsAdvertisement {
			m.Advertisements++
		}
	}

	uc.cache.Add(metricsKey, m)
	return dashboard.MetricsOutput{Metrics: m}, nil
}
