package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientdesk/backend/internal/api"
	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/mocks"
	"github.com/clientdesk/backend/internal/service"
	"github.com/clientdesk/backend/pkg/security"
)

const (
	testSigningKey = "whsec_test"
	testAPIKey     = "admin-key"
)

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)

	h := api.NewHandler(s, testSigningKey, 180*time.Second)
	mw := api.NewMiddleware(true, testAPIKey)

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return srv, s
}

func doJSON(t *testing.T, method, url string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestCalendlyWebhook_ValidSignature(t *testing.T) {
	srv, s := newTestServer(t)

	body := []byte(`{"event":"invitee.created","payload":{"email":"jamie@example.com"}}`)

	s.EXPECT().ProcessBookingEvent(gomock.Any(), gomock.Any(), body).
		Return(service.BookingEventResult{
			BookingID:  uuid.Must(uuid.NewV4()),
			Deliveries: []entity.DeliveryResult{entity.Delivered("slack")},
		}, nil)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/webhooks/calendly", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Calendly-Webhook-Signature", security.SignWebhookPayload(body, testSigningKey, time.Now()))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.WebhookResponse](t, resp)
	require.True(t, out.Success)
	require.False(t, out.Ignored)
	require.Len(t, out.Deliveries, 1)
}

func TestCalendlyWebhook_BadSignature(t *testing.T) {
	srv, s := newTestServer(t)
	_ = s // no expectations: a forged event must never reach the service

	body := []byte(`{"event":"invitee.created","payload":{}}`)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/webhooks/calendly", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Calendly-Webhook-Signature",
		security.SignWebhookPayload([]byte("other payload"), testSigningKey, time.Now()))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	out := decode[api.ErrorResponse](t, resp)
	require.False(t, out.Success)
	require.Equal(t, "invalid webhook signature", out.Message)
}

func TestCalendlyWebhook_StaleTimestamp(t *testing.T) {
	srv, _ := newTestServer(t)

	body := []byte(`{"event":"invitee.created","payload":{}}`)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/webhooks/calendly", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Calendly-Webhook-Signature",
		security.SignWebhookPayload(body, testSigningKey, time.Now().Add(-10*time.Minute)))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSetupClient(t *testing.T) {
	srv, s := newTestServer(t)

	conn := entity.ClientConnection{
		ID:            uuid.Must(uuid.NewV4()),
		ClientName:    "Acme Roofing",
		CalendlyToken: "cal-secret",
		AccessToken:   "ABC1234",
	}

	s.EXPECT().SetupClient(gomock.Any(), service.SetupRequest{
		ClientName:    "Acme Roofing",
		CalendlyToken: "cal-secret",
	}).Return(conn, []entity.DeliveryResult{entity.Delivered("slack")}, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/connections/setup", map[string]string{
		"client_name":    "Acme Roofing",
		"calendly_token": "cal-secret",
	}, map[string]string{"X-Api-Key": testAPIKey})

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[api.SetupClientResponse](t, resp)
	require.True(t, out.Success)
	require.Equal(t, conn.ID, out.Connection.ID)
	require.Empty(t, out.Connection.CalendlyToken)
	require.Equal(t, "ABC1234", out.Connection.AccessToken)
	require.Len(t, out.Deliveries, 1)
}

func TestSetupClient_ValidationError(t *testing.T) {
	srv, s := newTestServer(t)

	s.EXPECT().SetupClient(gomock.Any(), gomock.Any()).
		Return(entity.ClientConnection{}, nil, entity.ErrInvalidArgument)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/connections/setup",
		map[string]string{}, map[string]string{"X-Api-Key": testAPIKey})

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminRoutes_RequireAPIKey(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/admin/connections/", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/admin/connections/", nil,
		map[string]string{"X-Api-Key": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBookings_Filtered(t *testing.T) {
	srv, s := newTestServer(t)

	connID := uuid.Must(uuid.NewV4())

	s.EXPECT().Bookings(gomock.Any(), entity.BookingFilter{
		ConnectionID: connID,
		Status:       entity.BookingStatusScheduled,
		Limit:        10,
	}).Return([]entity.Booking{{ConnectionID: connID}}, nil)

	resp := doJSON(t, http.MethodGet,
		srv.URL+"/api/admin/bookings?connection_id="+connID.String()+"&status=scheduled&limit=10",
		nil, map[string]string{"X-Api-Key": testAPIKey})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.BookingsResponse](t, resp)
	require.True(t, out.Success)
	require.Len(t, out.Bookings, 1)
}

func TestBookings_UnknownStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/admin/bookings?status=no-show",
		nil, map[string]string{"X-Api-Key": testAPIKey})

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	srv, s := newTestServer(t)

	conn := entity.ClientConnection{ID: uuid.Must(uuid.NewV4()), AccessToken: "ABC1234"}

	s.EXPECT().Dashboard(gomock.Any(), "ABC1234").Return(service.DashboardPayload{
		Connection: conn,
		Bookings:   []entity.Booking{{ConnectionID: conn.ID}},
	}, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/dashboard/ABC1234", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.DashboardResponse](t, resp)
	require.True(t, out.Success)
	require.Equal(t, conn.ID, out.Connection.ID)
	require.Len(t, out.Bookings, 1)
}

func TestDashboard_UnknownCode(t *testing.T) {
	srv, s := newTestServer(t)

	s.EXPECT().Dashboard(gomock.Any(), "ZZZ0000").
		Return(service.DashboardPayload{}, entity.ErrNotFound)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/dashboard/ZZZ0000", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateDashboardBooking(t *testing.T) {
	srv, s := newTestServer(t)

	bookingID := uuid.Must(uuid.NewV4())
	status := entity.BookingStatusCompleted

	s.EXPECT().UpdateDashboardBooking(gomock.Any(), "ABC1234", bookingID, entity.BookingOutcome{Status: &status}).
		Return(entity.Booking{ID: bookingID, Status: status}, nil)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/dashboard/ABC1234/bookings/"+bookingID.String(),
		map[string]string{"status": "completed"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMoveCard(t *testing.T) {
	srv, s := newTestServer(t)

	cardID := uuid.Must(uuid.NewV4())
	columnID := uuid.Must(uuid.NewV4())

	s.EXPECT().MoveCard(gomock.Any(), cardID, columnID, 2).
		Return(entity.Card{ID: cardID, ColumnID: columnID, Position: 2},
			[]entity.DeliveryResult{entity.Delivered("column_webhook")}, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/kanban/cards/"+cardID.String()+"/move",
		map[string]any{"column_id": columnID.String(), "position": 2},
		map[string]string{"X-Api-Key": testAPIKey})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.MoveCardResponse](t, resp)
	require.True(t, out.Success)
	require.Equal(t, columnID, out.Card.ColumnID)
	require.Len(t, out.Deliveries, 1)
}

func TestMoveCard_BadCardID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/kanban/cards/not-a-uuid/move",
		map[string]any{"column_id": uuid.Must(uuid.NewV4()).String(), "position": 0},
		map[string]string{"X-Api-Key": testAPIKey})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
