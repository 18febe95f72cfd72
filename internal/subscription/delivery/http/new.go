package http

import (
	"easyplug-admin/internal/subscription"
	"easyplug-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc subscription.UseCase
}

// New creates a new HTTP handler for the subscription domain.
func New(l log.Logger, uc subscription.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
