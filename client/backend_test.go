package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
)

func TestClassifyStatusTaxonomy(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrAuthorization},
		{http.StatusForbidden, ErrAuthorization},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrNetwork},
		{http.StatusBadGateway, ErrNetwork},
	}

	for _, c := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(c.status)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}))

		api := NewAPI(srv.URL)
		_, err := api.FetchEntries(context.Background(), testSession, time.Now())
		if !errors.Is(err, c.want) {
			t.Errorf("status %d: error = %v, want %v", c.status, err, c.want)
		}
		srv.Close()
	}
}

func TestFetchEntriesDecodesAndSendsDate(t *testing.T) {
	day := mustDate(t, "2024-03-02")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("date"); got != "2024-03-02" {
			t.Errorf("date param = %q, want 2024-03-02", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer t" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		e := models.FoodEntry{UserID: 1, FoodName: "Oats", Calories: 380, Quantity: 1}
		e.ID = 1
		e.CreatedAt = day.Add(8 * time.Hour)
		json.NewEncoder(w).Encode([]models.FoodEntry{e})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	entries, err := api.FetchEntries(context.Background(), testSession, day)
	if err != nil {
		t.Fatalf("FetchEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].FoodName != "Oats" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	api := NewAPI("http://127.0.0.1:1") // nothing listens here
	_, err := api.FetchEntries(context.Background(), testSession, time.Now())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestWSURL(t *testing.T) {
	api := NewAPI("http://example.com:8080/")
	sess := &Session{UserID: 1, Token: "abc"}
	if got := api.WSURL(sess); got != "ws://example.com:8080/ws?token=abc" {
		t.Errorf("WSURL = %q", got)
	}
}
