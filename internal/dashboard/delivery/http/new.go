package http

import (
	"easyplug-admin/internal/dashboard"
	"easyplug-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for the dashboard domain.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
