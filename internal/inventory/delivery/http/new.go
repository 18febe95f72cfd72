package http

import (
	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc inventory.UseCase
}

// New creates a new HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
