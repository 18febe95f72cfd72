package usecase

import (
	"context"
	"fmt"

	"easyplug-admin/internal/auth"
	"easyplug-admin/pkg/easyplug"
)

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	env, err := uc.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		if easyplug.IsUnauthorized(err) {
			return auth.SessionOutput{}, fmt.Errorf("%w: %s", auth.ErrInvalidCredentials, easyplug.ServerMessage(err, "login failed"))
		}
		uc.l.Errorf(ctx, "auth.usecase.Login: %v", err)
		return auth.SessionOutput{}, fmt.Errorf("failed to log in: %w", err)
	}
	return uc.openSession(ctx, env)
}

func (uc *implUseCase) GoogleLogin(ctx context.Context, input auth.GoogleLoginInput) (auth.SessionOutput, error) {
	if uc.googleClientID != "" {
		if err := uc.verifyGoogle(ctx, input.Credential, uc.googleClientID); err != nil {
			uc.l.Warnf(ctx, "auth.usecase.GoogleLogin.verify: %v", err)
			return auth.SessionOutput{}, auth.ErrInvalidGoogleCredential
		}
	}

	env, err := uc.api.GoogleLogin(ctx, input.Credential)
	if err != nil {
		if easyplug.IsUnauthorized(err) {
			return auth.SessionOutput{}, fmt.Errorf("%w: %s", auth.ErrInvalidCredentials, easyplug.ServerMessage(err, "google login failed"))
		}
		uc.l.Errorf(ctx, "auth.usecase.GoogleLogin: %v", err)
		return auth.SessionOutput{}, fmt.Errorf("failed to log in with google: %w", err)
	}
	return uc.openSession(ctx, env)
}

func (uc *implUseCase) RegisterSeller(ctx context.Context, input auth.RegisterInput) (auth.SessionOutput, error) {
	env, err := uc.api.RegisterSeller(ctx, input.Fields, input.Files)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.RegisterSeller: %v", err)
		return auth.SessionOutput{}, fmt.Errorf("failed to register seller: %w", err)
	}

	// Registration may or may not sign the new seller in; only a returned
	// token opens a session.
	if env.BearerToken() == "" {
		return auth.SessionOutput{Redirect: "/login"}, nil
	}
	return uc.openSession(ctx, env)
}

func (uc *implUseCase) SendCode(ctx context.Context, email string) (auth.SendCodeOutput, error) {
	msg, err := uc.api.SendCode(ctx, email)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SendCode: %v", err)
		return auth.SendCodeOutput{}, fmt.Errorf("failed to send verification code: %w", err)
	}
	return auth.SendCodeOutput{Message: msg}, nil
}

func (uc *implUseCase) Logout(ctx context.Context) error {
	if err := uc.store.Clear(); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Logout: %v", err)
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (uc *implUseCase) Me(ctx context.Context) (easyplug.Identity, error) {
	identity, err := uc.api.Me(ctx)
	if err != nil {
		return easyplug.Identity{}, fmt.Errorf("failed to fetch identity: %w", err)
	}
	return identity, nil
}

// openSession persists the token from a successful auth exchange.
func (uc *implUseCase) openSession(ctx context.Context, env easyplug.TokenEnvelope) (auth.SessionOutput, error) {
	token := env.BearerToken()
	if token == "" {
		return auth.SessionOutput{}, auth.ErrEmptyToken
	}
	if err := uc.store.Set(token); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.openSession: %v", err)
		return auth.SessionOutput{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return auth.SessionOutput{Redirect: "/dashboard"}, nil
}
