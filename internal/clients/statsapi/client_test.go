package statsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clientdesk/backend/internal/clients/statsapi"
	"github.com/clientdesk/backend/internal/entity"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "sk-stats", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totals":{"sent":400,"responses":100,"connections":25}}`))
	}))
	defer srv.Close()

	c := statsapi.NewClient(0, 5*time.Second)

	stats, err := c.Fetch(context.Background(), srv.URL, "sk-stats")
	require.NoError(t, err)
	require.Equal(t, 400, stats.Sent)
}

func TestClient_Fetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := statsapi.NewClient(0, 5*time.Second)

	_, err := c.Fetch(context.Background(), srv.URL, "")
	require.ErrorIs(t, err, entity.ErrUpstream)
}

func TestClient_Fetch_UnknownShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"rows":[]}`))
	}))
	defer srv.Close()

	c := statsapi.NewClient(0, 5*time.Second)

	_, err := c.Fetch(context.Background(), srv.URL, "")
	require.ErrorIs(t, err, statsapi.ErrUnknownShape)
}
