package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clientdesk/backend/pkg/security"
)

func TestVerifyWebhookSignature(t *testing.T) {
	t.Parallel()

	const key = "test-signing-key"

	body := []byte(`{"event":"invitee.created","payload":{}}`)
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name    string
		header  string
		body    []byte
		now     time.Time
		wantErr error
	}{
		{
			name:   "valid signature inside replay window",
			header: security.SignWebhookPayload(body, key, now.Add(-time.Minute)),
			body:   body,
			now:    now,
		},
		{
			name:   "timestamp exactly at window edge",
			header: security.SignWebhookPayload(body, key, now.Add(-180*time.Second)),
			body:   body,
			now:    now,
		},
		{
			name:    "stale timestamp",
			header:  security.SignWebhookPayload(body, key, now.Add(-181*time.Second)),
			body:    body,
			now:     now,
			wantErr: security.ErrStaleTimestamp,
		},
		{
			name:    "tampered body",
			header:  security.SignWebhookPayload(body, key, now),
			body:    []byte(`{"event":"invitee.created","payload":{"x":1}}`),
			now:     now,
			wantErr: security.ErrSignatureMismatch,
		},
		{
			name:    "wrong key",
			header:  security.SignWebhookPayload(body, "other-key", now),
			body:    body,
			now:     now,
			wantErr: security.ErrSignatureMismatch,
		},
		{
			name:    "missing v1",
			header:  "t=1700000000",
			body:    body,
			now:     now,
			wantErr: security.ErrMalformedSignature,
		},
		{
			name:    "garbage header",
			header:  "not a signature",
			body:    body,
			now:     now,
			wantErr: security.ErrMalformedSignature,
		},
		{
			name:    "bad timestamp",
			header:  "t=yesterday,v1=deadbeef",
			body:    body,
			now:     now,
			wantErr: security.ErrMalformedSignature,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := security.VerifyWebhookSignature(tt.header, tt.body, key, 180*time.Second, tt.now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestVerifyWebhookSignature_NoReplayWindow(t *testing.T) {
	t.Parallel()

	const key = "k"

	body := []byte(`{}`)
	old := time.Unix(1500000000, 0)

	header := security.SignWebhookPayload(body, key, old)

	err := security.VerifyWebhookSignature(header, body, key, 0, time.Unix(1700000000, 0))
	require.NoError(t, err)
}
