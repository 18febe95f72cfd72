package dashboard

import "context"

// UseCase derives the dashboard metrics from the listing collection.
type UseCase interface {
	Metrics(ctx context.Context) (MetricsOutput, error)
}

// Metrics summarizes the admin listing collection.
type Metrics struct {
	TotalListings  int
	Active         int
	Draft          int
	Sold           int
	Expired        int
	Products       int
	Services       int
	Advertisements int
}

type MetricsOutput struct {
	Metrics Metrics
}
