package calendly_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clientdesk/backend/internal/clients/calendly"
	"github.com/clientdesk/backend/internal/entity"
)

func TestClient_Me(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resource":{
			"uri": "https://api.calendly.com/users/USER1",
			"name": "Jamie Rivera",
			"email": "jamie@example.com",
			"timezone": "America/Denver",
			"current_organization": "https://api.calendly.com/organizations/ORG1"
		}}`))
	}))
	defer srv.Close()

	c := calendly.NewClient(srv.URL)

	user, err := c.Me(context.Background(), "tok-123")
	require.NoError(t, err)

	require.Equal(t, "https://api.calendly.com/users/USER1", user.URI)
	require.Equal(t, "Jamie Rivera", user.Name)
	require.Equal(t, "America/Denver", user.Timezone)
	require.Equal(t, "https://api.calendly.com/organizations/ORG1", user.CurrentOrganization)
}

func TestClient_Me_BadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"title":"Unauthenticated"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := calendly.NewClient(srv.URL)

	_, err := c.Me(context.Background(), "bad")
	require.ErrorIs(t, err, entity.ErrUpstream)
}

func TestClient_CreateWebhookSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/webhook_subscriptions", r.URL.Path)

		var req struct {
			URL          string   `json:"url"`
			Events       []string `json:"events"`
			Organization string   `json:"organization"`
			User         string   `json:"user"`
			Scope        string   `json:"scope"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		require.Equal(t, "https://app.clientdesk.io/webhooks/calendly", req.URL)
		require.ElementsMatch(t, []string{"invitee.created", "invitee.canceled"}, req.Events)
		require.Equal(t, "user", req.Scope)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"resource":{"uri":"https://api.calendly.com/webhook_subscriptions/SUB1"}}`))
	}))
	defer srv.Close()

	c := calendly.NewClient(srv.URL)

	uri, err := c.CreateWebhookSubscription(context.Background(), "tok-123",
		"https://api.calendly.com/organizations/ORG1",
		"https://api.calendly.com/users/USER1",
		"https://app.clientdesk.io/webhooks/calendly")
	require.NoError(t, err)
	require.Equal(t, "https://api.calendly.com/webhook_subscriptions/SUB1", uri)
}

func TestClient_DeleteWebhookSubscription(t *testing.T) {
	var deleted bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/webhook_subscriptions/SUB1", r.URL.Path)
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := calendly.NewClient(srv.URL)

	err := c.DeleteWebhookSubscription(context.Background(), "tok-123", srv.URL+"/webhook_subscriptions/SUB1")
	require.NoError(t, err)
	require.True(t, deleted)
}
