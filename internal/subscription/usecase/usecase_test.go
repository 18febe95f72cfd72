package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"easyplug-admin/internal/subscription"
	"easyplug-admin/internal/subscription/usecase"
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
	listFn   func(ctx context.Context, params map[string]string) ([]easyplug.Subscription, error)
	getFn    func(ctx context.Context, id string) (easyplug.Subscription, error)
	createFn func(ctx context.Context, fields map[string]any) (easyplug.Subscription, error)
	updateFn func(ctx context.Context, id string, fields map[string]any) (easyplug.Subscription, error)

	listCalls int
}

func (m *mockAPI) ListSubscriptions(ctx context.Context, params map[string]string) ([]easyplug.Subscription, error) {
	m.listCalls++
	return m.listFn(ctx, params)
}

func (m *mockAPI) GetSubscription(ctx context.Context, id string) (easyplug.Subscription, error) {
	return m.getFn(ctx, id)
}

func (m *mockAPI) CreateSubscription(ctx context.Context, fields map[string]any) (easyplug.Subscription, error) {
	return m.createFn(ctx, fields)
}

func (m *mockAPI) UpdateSubscription(ctx context.Context, id string, fields map[string]any) (easyplug.Subscription, error) {
	return m.updateFn(ctx, id, fields)
}

func validInput() subscription.CreateInput {
	return subscription.CreateInput{
		Name:            "Gold",
		DurationInHours: "720",
		Price:           "199.99",
		Description:     "Top placement",
		Status:          "active",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		if errs := validInput().Validate(); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	cases := []struct {
		name    string
		mutate  func(*subscription.CreateInput)
		field   string
		message string
	}{
		{"name required", func(in *subscription.CreateInput) { in.Name = "  " }, "name", "Required"},
		{"duration required", func(in *subscription.CreateInput) { in.DurationInHours = "" }, "durationInHours", "Required"},
		{"duration integer", func(in *subscription.CreateInput) { in.DurationInHours = "24.5" }, "durationInHours", "Must be an integer"},
		{"duration minimum", func(in *subscription.CreateInput) { in.DurationInHours = "0" }, "durationInHours", "Must be >= 1"},
		{"price numeric", func(in *subscription.CreateInput) { in.Price = "free" }, "price", "Must be a number"},
		{"price non-negative", func(in *subscription.CreateInput) { in.Price = "-1" }, "price", "Must be >= 0"},
		{"status constrained", func(in *subscription.CreateInput) { in.Status = "paused" }, "status", "Must be active or inactive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if got := in.Validate()[tc.field]; got != tc.message {
				t.Errorf("%s: got %q, want %q", tc.field, got, tc.message)
			}
		})
	}
}

func TestListCaching(t *testing.T) {
	ctx := context.Background()
	api := &mockAPI{
		listFn: func(ctx context.Context, params map[string]string) ([]easyplug.Subscription, error) {
			return []easyplug.Subscription{{SubscriptionID: "s-1", Name: "Standard"}}, nil
		},
		createFn: func(ctx context.Context, fields map[string]any) (easyplug.Subscription, error) {
			return easyplug.Subscription{SubscriptionID: "s-2"}, nil
		},
	}
	uc := usecase.New(&mockLogger{}, api, time.Minute)

	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if api.listCalls != 1 {
		t.Errorf("second list should hit the cache, upstream calls = %d", api.listCalls)
	}

	if _, err := uc.Create(ctx, validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if api.listCalls != 2 {
		t.Errorf("create should invalidate the cache, upstream calls = %d", api.listCalls)
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("validation failure carries field errors", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockAPI{}, time.Minute)
		in := validInput()
		in.Name = ""
		_, err := uc.Create(ctx, in)
		if !errors.Is(err, subscription.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		var vErr *subscription.ValidationError
		if !errors.As(err, &vErr) || vErr.Fields["name"] != "Required" {
			t.Errorf("field errors: %v", err)
		}
	})

	t.Run("numbers travel as numbers", func(t *testing.T) {
		var sent map[string]any
		api := &mockAPI{
			createFn: func(ctx context.Context, fields map[string]any) (easyplug.Subscription, error) {
				sent = fields
				return easyplug.Subscription{SubscriptionID: "s-3"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, api, time.Minute)
		if _, err := uc.Create(ctx, validInput()); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if sent["durationInHours"] != 720 {
			t.Errorf("durationInHours: got %v (%T)", sent["durationInHours"], sent["durationInHours"])
		}
		if sent["price"] != 199.99 {
			t.Errorf("price: got %v", sent["price"])
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	api := &mockAPI{
		updateFn: func(ctx context.Context, id string, fields map[string]any) (easyplug.Subscription, error) {
			return easyplug.Subscription{}, &easyplug.APIError{StatusCode: 404, Message: "not found"}
		},
	}
	uc := usecase.New(&mockLogger{}, api, time.Minute)
	if _, err := uc.Update(ctx, "gone", validInput()); !errors.Is(err, subscription.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
