package usecase_test

import (
	"context"
	"errors"
	"testing"

	"easyplug-admin/internal/auth"
	"easyplug-admin/internal/auth/usecase"
	"easyplug-admin/pkg/easyplug"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockAPI struct {
	loginFn    func(ctx context.Context, email, password string) (easyplug.TokenEnvelope, error)
	googleFn   func(ctx context.Context, credential string) (easyplug.TokenEnvelope, error)
	registerFn func(ctx context.Context, fields map[string]string, files map[string]easyplug.ImageFile) (easyplug.TokenEnvelope, error)
	sendCodeFn func(ctx context.Context, email string) (string, error)
	meFn       func(ctx context.Context) (easyplug.Identity, error)
}

func (m *mockAPI) Login(ctx context.Context, email, password string) (easyplug.TokenEnvelope, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAPI) GoogleLogin(ctx context.Context, credential string) (easyplug.TokenEnvelope, error) {
	return m.googleFn(ctx, credential)
}

func (m *mockAPI) RegisterSeller(ctx context.Context, fields map[string]string, files map[string]easyplug.ImageFile) (easyplug.TokenEnvelope, error) {
	return m.registerFn(ctx, fields, files)
}

func (m *mockAPI) SendCode(ctx context.Context, email string) (string, error) {
	return m.sendCodeFn(ctx, email)
}

func (m *mockAPI) Me(ctx context.Context) (easyplug.Identity, error) {
	return m.meFn(ctx)
}

type mockStore struct {
	token   string
	cleared bool
	setErr  error
}

func (m *mockStore) Set(token string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.token = token
	return nil
}

func (m *mockStore) Clear() error {
	m.cleared = true
	m.token = ""
	return nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists the token and redirects", func(t *testing.T) {
		api := &mockAPI{
			loginFn: func(ctx context.Context, email, password string) (easyplug.TokenEnvelope, error) {
				return easyplug.TokenEnvelope{Token: "legacy", AccessToken: "preferred"}, nil
			},
		}
		store := &mockStore{}
		uc := usecase.New(&mockLogger{}, api, store, "")

		out, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.c", Password: "pw"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if out.Redirect != "/dashboard" {
			t.Errorf("redirect: got %q", out.Redirect)
		}
		if store.token != "preferred" {
			t.Errorf("accessToken should win, stored %q", store.token)
		}
	})

	t.Run("401 maps to invalid credentials with server message", func(t *testing.T) {
		api := &mockAPI{
			loginFn: func(ctx context.Context, email, password string) (easyplug.TokenEnvelope, error) {
				return easyplug.TokenEnvelope{}, &easyplug.APIError{StatusCode: 401, Message: "Wrong password"}
			},
		}
		store := &mockStore{}
		uc := usecase.New(&mockLogger{}, api, store, "")

		_, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.c", Password: "bad"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if store.token != "" {
			t.Errorf("nothing should be stored, got %q", store.token)
		}
	})

	t.Run("empty token envelope is rejected", func(t *testing.T) {
		api := &mockAPI{
			loginFn: func(ctx context.Context, email, password string) (easyplug.TokenEnvelope, error) {
				return easyplug.TokenEnvelope{}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, api, &mockStore{}, "")

		if _, err := uc.Login(ctx, auth.LoginInput{Email: "a@b.c", Password: "pw"}); !errors.Is(err, auth.ErrEmptyToken) {
			t.Fatalf("expected ErrEmptyToken, got %v", err)
		}
	})
}

func TestGoogleLogin(t *testing.T) {
	ctx := context.Background()

	// No client ID configured: verification is skipped and the credential
	// goes straight upstream.
	api := &mockAPI{
		googleFn: func(ctx context.Context, credential string) (easyplug.TokenEnvelope, error) {
			if credential != "google-cred" {
				t.Errorf("credential: got %q", credential)
			}
			return easyplug.TokenEnvelope{AccessToken: "tok"}, nil
		},
	}
	store := &mockStore{}
	uc := usecase.New(&mockLogger{}, api, store, "")

	out, err := uc.GoogleLogin(ctx, auth.GoogleLoginInput{Credential: "google-cred"})
	if err != nil {
		t.Fatalf("GoogleLogin: %v", err)
	}
	if out.Redirect != "/dashboard" || store.token != "tok" {
		t.Errorf("got redirect %q, token %q", out.Redirect, store.token)
	}
}

func TestRegisterSeller(t *testing.T) {
	ctx := context.Background()

	t.Run("token in response opens a session", func(t *testing.T) {
		api := &mockAPI{
			registerFn: func(ctx context.Context, fields map[string]string, files map[string]easyplug.ImageFile) (easyplug.TokenEnvelope, error) {
				return easyplug.TokenEnvelope{Token: "fresh"}, nil
			},
		}
		store := &mockStore{}
		uc := usecase.New(&mockLogger{}, api, store, "")

		out, err := uc.RegisterSeller(ctx, auth.RegisterInput{Fields: map[string]string{"email": "a@b.c"}})
		if err != nil {
			t.Fatalf("RegisterSeller: %v", err)
		}
		if out.Redirect != "/dashboard" || store.token != "fresh" {
			t.Errorf("got redirect %q, token %q", out.Redirect, store.token)
		}
	})

	t.Run("no token redirects to login", func(t *testing.T) {
		api := &mockAPI{
			registerFn: func(ctx context.Context, fields map[string]string, files map[string]easyplug.ImageFile) (easyplug.TokenEnvelope, error) {
				return easyplug.TokenEnvelope{}, nil
			},
		}
		store := &mockStore{}
		uc := usecase.New(&mockLogger{}, api, store, "")

		out, err := uc.RegisterSeller(ctx, auth.RegisterInput{})
		if err != nil {
			t.Fatalf("RegisterSeller: %v", err)
		}
		if out.Redirect != "/login" {
			t.Errorf("redirect: got %q", out.Redirect)
		}
		if store.token != "" {
			t.Errorf("nothing should be stored, got %q", store.token)
		}
	})
}

func TestLogout(t *testing.T) {
	store := &mockStore{token: "tok"}
	uc := usecase.New(&mockLogger{}, &mockAPI{}, store, "")

	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if !store.cleared {
		t.Error("store should be cleared")
	}
}
