package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/inventory"
	inventoryHTTP "easyplug-admin/internal/inventory/delivery/http"
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

// mockUseCase implements inventory.UseCase with per-call overrides.
type mockUseCase struct {
	openOutput   inventory.WizardOutput
	openErr      error
	updateErr    error
	submitOutput inventory.SubmitOutput
	submitErr    error
	payOutput    inventory.PayOutput
	payErr       error
}

func (m *mockUseCase) List(ctx context.Context, input inventory.ListInput) (inventory.ListOutput, error) {
	return inventory.ListOutput{}, nil
}
func (m *mockUseCase) Detail(ctx context.Context, id string) (inventory.DetailOutput, error) {
	return inventory.DetailOutput{}, nil
}
func (m *mockUseCase) Delete(ctx context.Context, id string) error { return nil }
func (m *mockUseCase) OpenWizard(ctx context.Context, input inventory.OpenWizardInput) (inventory.WizardOutput, error) {
	return m.openOutput, m.openErr
}
func (m *mockUseCase) Wizard(ctx context.Context, sessionID string) (inventory.WizardOutput, error) {
	return m.openOutput, m.openErr
}
func (m *mockUseCase) UpdateFields(ctx context.Context, sessionID string, changes inventory.FieldChanges) (inventory.WizardOutput, error) {
	return m.openOutput, m.updateErr
}
func (m *mockUseCase) AddImages(ctx context.Context, sessionID string, files []inventory.ImageUpload) (inventory.WizardOutput, error) {
	return m.openOutput, nil
}
func (m *mockUseCase) RemoveImage(ctx context.Context, sessionID string, index int) (inventory.WizardOutput, error) {
	return m.openOutput, nil
}
func (m *mockUseCase) Preview(ctx context.Context, sessionID, previewID string) (inventory.PreviewOutput, error) {
	return inventory.PreviewOutput{}, inventory.ErrPreviewNotFound
}
func (m *mockUseCase) Next(ctx context.Context, sessionID string) (inventory.WizardOutput, error) {
	return m.openOutput, nil
}
func (m *mockUseCase) Submit(ctx context.Context, sessionID string) (inventory.SubmitOutput, error) {
	return m.submitOutput, m.submitErr
}
func (m *mockUseCase) Pay(ctx context.Context, sessionID string, input inventory.PayInput) (inventory.PayOutput, error) {
	return m.payOutput, m.payErr
}
func (m *mockUseCase) CancelWizard(ctx context.Context, sessionID string) error { return nil }

func newTestRouter(uc inventory.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := inventoryHTTP.New(&mockLogger{}, uc)

	r := gin.New()
	r.GET("/inventory", h.List)
	wizard := r.Group("/wizard")
	wizard.POST("", h.OpenWizard)
	wizard.PUT("/:sid/fields", h.UpdateFields)
	wizard.POST("/:sid/submit", h.Submit)
	wizard.POST("/:sid/pay", h.Pay)
	return r
}

type envelope struct {
	ErrorCode int               `json:"error_code"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Errors    map[string]string `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	return env
}

func TestOpenWizardHandler(t *testing.T) {
	t.Run("empty body opens create mode", func(t *testing.T) {
		uc := &mockUseCase{openOutput: inventory.WizardOutput{
			SessionID: "s-1",
			Step:      inventory.StepDetails,
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wizard", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
		}
		env := decode(t, w)
		if !strings.Contains(string(env.Data), `"sessionId":"s-1"`) {
			t.Errorf("data: %s", env.Data)
		}
	})

	t.Run("missing edit target maps to 404", func(t *testing.T) {
		uc := &mockUseCase{openErr: inventory.ErrListingNotFound}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"listingId":"gone"}`)
		req := httptest.NewRequest(http.MethodPost, "/wizard", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status: got %d", w.Code)
		}
	})
}

func TestUpdateFieldsHandler(t *testing.T) {
	t.Run("unknown session maps to 404", func(t *testing.T) {
		uc := &mockUseCase{updateErr: inventory.ErrSessionNotFound}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"title":"Couch"}`)
		req := httptest.NewRequest(http.MethodPut, "/wizard/nope/fields", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
		}
	})

	t.Run("accepts every listing status", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		for _, status := range []string{"active", "draft", "sold", "expired"} {
			w := httptest.NewRecorder()
			body := bytes.NewBufferString(`{"status":"` + status + `"}`)
			req := httptest.NewRequest(http.MethodPut, "/wizard/s-1/fields", body)
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status %q: got %d, body %s", status, w.Code, w.Body.String())
			}
		}
	})

	t.Run("rejects a status outside the listing domain", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"status":"inactive"}`)
		req := httptest.NewRequest(http.MethodPut, "/wizard/s-1/fields", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
		}
	})
}

func TestListHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	for _, status := range []string{"active", "draft", "sold", "expired"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/inventory?status="+status, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("filter %q: got %d, body %s", status, w.Code, w.Body.String())
		}
	}
}

func TestSubmitHandler(t *testing.T) {
	t.Run("validation failure returns 422 with field errors", func(t *testing.T) {
		uc := &mockUseCase{
			submitOutput: inventory.SubmitOutput{FieldErrors: map[string]string{"title": "Required"}},
			submitErr:    inventory.ErrValidation,
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wizard/s-1/submit", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status: got %d", w.Code)
		}
		env := decode(t, w)
		if env.Errors["title"] != "Required" {
			t.Errorf("errors: %v", env.Errors)
		}
	})

	t.Run("create success carries the payment-step wizard", func(t *testing.T) {
		uc := &mockUseCase{submitOutput: inventory.SubmitOutput{
			Wizard:  inventory.WizardOutput{SessionID: "s-1", Step: inventory.StepPayment},
			Message: "Item created - continue to payment",
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wizard/s-1/submit", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d", w.Code)
		}
		env := decode(t, w)
		if !strings.Contains(string(env.Data), `"step":"payment"`) {
			t.Errorf("data: %s", env.Data)
		}
		if !strings.Contains(string(env.Data), "Item created - continue to payment") {
			t.Errorf("data: %s", env.Data)
		}
	})
}

func TestPayHandler(t *testing.T) {
	t.Run("incomplete card maps to 422", func(t *testing.T) {
		uc := &mockUseCase{payErr: inventory.ErrCardIncomplete}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"method":"mastercard","card":{"number":"4111"}}`)
		req := httptest.NewRequest(http.MethodPost, "/wizard/s-1/pay", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
		}
	})

	t.Run("capitec succeeds with redirect", func(t *testing.T) {
		uc := &mockUseCase{payOutput: inventory.PayOutput{
			Message:  "Capitec Pay simulated",
			Redirect: "/inventory",
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"method":"capitec"}`)
		req := httptest.NewRequest(http.MethodPost, "/wizard/s-1/pay", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d", w.Code)
		}
		env := decode(t, w)
		if !strings.Contains(string(env.Data), `"redirect":"/inventory"`) {
			t.Errorf("data: %s", env.Data)
		}
	})
}
