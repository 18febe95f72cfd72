package auth

import (
	"context"

	"easyplug-admin/pkg/easyplug"
)

// UseCase handles sign-in, sign-out and seller onboarding against the
// EasyPlug auth endpoints, persisting the bearer token in between.
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (SessionOutput, error)
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (SessionOutput, error)
	RegisterSeller(ctx context.Context, input RegisterInput) (SessionOutput, error)
	SendCode(ctx context.Context, email string) (SendCodeOutput, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (easyplug.Identity, error)
}
