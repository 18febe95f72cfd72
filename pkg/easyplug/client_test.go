package easyplug_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"easyplug-admin/pkg/easyplug"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (*easyplug.Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return easyplug.NewClient(ts.URL, easyplug.StaticToken(token), 5*time.Second), ts
}

func TestAuthEndpoints(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		// legacy field spelling
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-legacy"})
	})

	mux.HandleFunc("/auth/login/google", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-google"})
	})

	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-valid" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(easyplug.Identity{UserID: "u1", Email: "admin@easyplug.test"})
	})

	mux.HandleFunc("/auth/send-code", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Code sent"})
	})

	ctx := context.Background()

	t.Run("Login returns legacy token field", func(t *testing.T) {
		client, _ := newTestClient(t, mux, "")
		env, err := client.Login(ctx, "admin@easyplug.test", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.BearerToken() != "tok-legacy" {
			t.Errorf("unexpected token: %q", env.BearerToken())
		}
	})

	t.Run("Login surfaces server message", func(t *testing.T) {
		client, _ := newTestClient(t, mux, "")
		_, err := client.Login(ctx, "admin@easyplug.test", "wrong")
		if err == nil {
			t.Fatal("expected error")
		}
		if got := easyplug.ServerMessage(err, "fallback"); got != "Invalid credentials" {
			t.Errorf("unexpected message: %q", got)
		}
		if !easyplug.IsUnauthorized(err) {
			t.Errorf("expected unauthorized error, got %v", err)
		}
	})

	t.Run("GoogleLogin returns accessToken field", func(t *testing.T) {
		client, _ := newTestClient(t, mux, "")
		env, err := client.GoogleLogin(ctx, "google-credential")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.BearerToken() != "tok-google" {
			t.Errorf("unexpected token: %q", env.BearerToken())
		}
	})

	t.Run("Me attaches bearer token", func(t *testing.T) {
		client, _ := newTestClient(t, mux, "tok-valid")
		id, err := client.Me(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.UserID != "u1" {
			t.Errorf("unexpected identity: %+v", id)
		}
	})

	t.Run("Me rejects bad token", func(t *testing.T) {
		client, _ := newTestClient(t, mux, "tok-bad")
		_, err := client.Me(ctx)
		if !easyplug.IsUnauthorized(err) {
			t.Errorf("expected unauthorized, got %v", err)
		}
	})

	t.Run("SendCode", func(t *testing.T) {
		client, _ := newTestClient(t, mux, "")
		msg, err := client.SendCode(ctx, "admin@easyplug.test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Code sent" {
			t.Errorf("unexpected message: %q", msg)
		}
	})

	t.Run("Server down", func(t *testing.T) {
		client := easyplug.NewClient("http://localhost:59999", nil, time.Second)
		_, err := client.Me(ctx)
		if err == nil {
			t.Error("expected connection error")
		}
		if easyplug.IsUnauthorized(err) {
			t.Error("transport error must not count as unauthorized")
		}
	})
}

func TestListSubscriptionsShapes(t *testing.T) {
	subs := []easyplug.Subscription{
		{SubscriptionID: "s1", Name: "Standard", Price: 10},
		{SubscriptionID: "s2", Name: "Premium", Price: 50},
	}

	shapes := map[string]any{
		"wrapped": map[string]any{"subscriptions": subs},
		"bare":    subs,
		"data":    map[string]any{"data": subs},
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/subscriptions", func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(body)
			})
			client, _ := newTestClient(t, mux, "tok")

			got, err := client.ListSubscriptions(context.Background(), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 2 || got[0].Name != "Standard" || got[1].SubscriptionID != "s2" {
				t.Errorf("unexpected list: %+v", got)
			}
		})
	}
}

func TestGetListingNormalization(t *testing.T) {
	listing := easyplug.Listing{ListingID: "l1", Title: "Couch", Price: 120}

	t.Run("bare record", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/listings/l1", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(listing)
		})
		client, _ := newTestClient(t, mux, "tok")

		got, err := client.GetListing(context.Background(), "l1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "Couch" {
			t.Errorf("unexpected listing: %+v", got)
		}
	})

	t.Run("wrapped under subscription key", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/listings/l1", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": true, "subscription": listing})
		})
		client, _ := newTestClient(t, mux, "tok")

		got, err := client.GetListing(context.Background(), "l1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ListingID != "l1" || got.Price != 120 {
			t.Errorf("unexpected listing: %+v", got)
		}
	})
}

func TestCreateListingMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/listings", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart content type, got %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("title"); got != "Garden bench" {
			t.Errorf("unexpected title field: %q", got)
		}
		if got := len(r.MultipartForm.File["images"]); got != 3 {
			t.Errorf("expected 3 image parts, got %d", got)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer token")
		}
		json.NewEncoder(w).Encode(easyplug.Listing{ListingID: "new-1", Title: "Garden bench"})
	})
	client, _ := newTestClient(t, mux, "tok")

	payload := easyplug.ListingPayload{
		Fields: map[string]string{"title": "Garden bench", "price": "45"},
		Images: []easyplug.ImageFile{
			{Name: "a.jpg", Reader: strings.NewReader("aaa")},
			{Name: "b.jpg", Reader: strings.NewReader("bbb")},
			{Name: "c.jpg", Reader: strings.NewReader("ccc")},
		},
	}

	got, err := client.CreateListing(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ListingID != "new-1" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestDeleteListing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/listings/gone", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Listing not found"})
	})
	client, _ := newTestClient(t, mux, "tok")

	err := client.DeleteListing(context.Background(), "gone")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := easyplug.ServerMessage(err, "fallback"); got != "Listing not found" {
		t.Errorf("unexpected message: %q", got)
	}
}
