package usecase

import (
	"context"

	"google.golang.org/api/idtoken"

	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// AuthAPI is the slice of the EasyPlug client this usecase talks to.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (easyplug.TokenEnvelope, error)
	GoogleLogin(ctx context.Context, credential string) (easyplug.TokenEnvelope, error)
	RegisterSeller(ctx context.Context, fields map[string]string, files map[string]easyplug.ImageFile) (easyplug.TokenEnvelope, error)
	SendCode(ctx context.Context, email string) (string, error)
	Me(ctx context.Context) (easyplug.Identity, error)
}

// TokenStore persists the bearer token between processes.
type TokenStore interface {
	Set(token string) error
	Clear() error
}

type implUseCase struct {
	l     log.Logger
	api   AuthAPI
	store TokenStore

	// googleClientID gates local credential verification; empty skips it
	// and defers entirely to the upstream API.
	googleClientID string
	verifyGoogle   func(ctx context.Context, credential, audience string) error
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, api AuthAPI, store TokenStore, googleClientID string) *implUseCase {
	return &implUseCase{
		l:              l,
		api:            api,
		store:          store,
		googleClientID: googleClientID,
		verifyGoogle: func(ctx context.Context, credential, audience string) error {
			_, err := idtoken.Validate(ctx, credential, audience)
			return err
		},
	}
}
