package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/clientdesk/backend/internal/entity"
)

func TestOnboardingSubmission_AnswersRoundTripAsJSON(t *testing.T) {
	sub := entity.OnboardingSubmission{
		ID:           uuid.Must(uuid.NewV4()),
		BusinessName: "Acme Roofing",
		Answers:      json.RawMessage(`{"goal":"more booked calls","team_size":12}`),
	}

	b, err := json.Marshal(sub)
	require.NoError(t, err)

	var out struct {
		Answers json.RawMessage `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(b, &out))

	// The intake JSON comes back as JSON, not a base64 blob.
	require.JSONEq(t, `{"goal":"more booked calls","team_size":12}`, string(out.Answers))
}
