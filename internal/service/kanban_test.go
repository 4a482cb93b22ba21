package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clientdesk/backend/internal/entity"
	"github.com/clientdesk/backend/internal/service"
)

func TestService_MoveCard_FiresColumnWebhook(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	workspace := entity.Workspace{ID: uuid.Must(uuid.NewV4()), Name: "Ops"}
	board := entity.Board{ID: uuid.Must(uuid.NewV4()), WorkspaceID: workspace.ID, Name: "Pipeline"}
	column := entity.Column{
		ID:                 uuid.Must(uuid.NewV4()),
		BoardID:            board.ID,
		Name:               "Won",
		WebhookURL:         "https://hooks.example.com/won",
		WebhookTriggerMode: entity.TriggerEveryTime,
	}
	card := entity.Card{ID: uuid.Must(uuid.NewV4()), ColumnID: uuid.Must(uuid.NewV4()), Title: "Acme deal"}

	moved := card
	moved.ColumnID = column.ID

	ts.repo.EXPECT().Card(ctx, card.ID).Return(card, nil)
	ts.repo.EXPECT().Column(ctx, column.ID).Return(column, nil)
	ts.repo.EXPECT().MoveCard(ctx, card.ID, column.ID, 0, gomock.Any()).Return(moved, nil)
	ts.repo.EXPECT().Board(gomock.Any(), board.ID).Return(board, nil)
	ts.repo.EXPECT().Workspace(gomock.Any(), workspace.ID).Return(workspace, nil)

	var posted entity.CardWebhookPayload

	ts.poster.EXPECT().Post(gomock.Any(), column.WebhookURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			posted = payload.(entity.CardWebhookPayload)
			return nil
		})
	ts.repo.EXPECT().SetCardWebhookTriggered(gomock.Any(), card.ID, gomock.Any()).Return(nil)

	got, deliveries, err := ts.s.MoveCard(ctx, card.ID, column.ID, 0)
	require.NoError(t, err)
	require.True(t, got.WebhookTriggered)

	require.Len(t, deliveries, 1)
	require.True(t, deliveries[0].Delivered)
	require.Equal(t, "column_webhook", deliveries[0].Target)

	require.Equal(t, card.ID, posted.Card.ID)
	require.Equal(t, column.ID, posted.Column.ID)
	require.Equal(t, board.ID, posted.Board.ID)
	require.Equal(t, workspace.ID, posted.Workspace.ID)
}

func TestService_MoveCard_FirstTimeOnlyAlreadyTriggered(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	column := entity.Column{
		ID:                 uuid.Must(uuid.NewV4()),
		BoardID:            uuid.Must(uuid.NewV4()),
		WebhookURL:         "https://hooks.example.com/won",
		WebhookTriggerMode: entity.TriggerFirstTimeOnly,
	}
	card := entity.Card{
		ID:               uuid.Must(uuid.NewV4()),
		ColumnID:         uuid.Must(uuid.NewV4()),
		WebhookTriggered: true,
	}

	moved := card
	moved.ColumnID = column.ID

	ts.repo.EXPECT().Card(ctx, card.ID).Return(card, nil)
	ts.repo.EXPECT().Column(ctx, column.ID).Return(column, nil)
	ts.repo.EXPECT().MoveCard(ctx, card.ID, column.ID, 2, gomock.Any()).Return(moved, nil)
	// No poster call, no board/workspace load, no triggered flag write.

	_, deliveries, err := ts.s.MoveCard(ctx, card.ID, column.ID, 2)
	require.NoError(t, err)
	require.Empty(t, deliveries)
}

func TestService_MoveCard_NoWebhookURL(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	column := entity.Column{ID: uuid.Must(uuid.NewV4()), BoardID: uuid.Must(uuid.NewV4())}
	card := entity.Card{ID: uuid.Must(uuid.NewV4()), ColumnID: uuid.Must(uuid.NewV4())}

	moved := card
	moved.ColumnID = column.ID

	ts.repo.EXPECT().Card(ctx, card.ID).Return(card, nil)
	ts.repo.EXPECT().Column(ctx, column.ID).Return(column, nil)
	ts.repo.EXPECT().MoveCard(ctx, card.ID, column.ID, 1, gomock.Any()).Return(moved, nil)

	_, deliveries, err := ts.s.MoveCard(ctx, card.ID, column.ID, 1)
	require.NoError(t, err)
	require.Empty(t, deliveries)
}

func TestService_MoveCard_SameColumnReorder(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	column := entity.Column{
		ID:                 uuid.Must(uuid.NewV4()),
		BoardID:            uuid.Must(uuid.NewV4()),
		WebhookURL:         "https://hooks.example.com/won",
		WebhookTriggerMode: entity.TriggerEveryTime,
	}
	card := entity.Card{ID: uuid.Must(uuid.NewV4()), ColumnID: column.ID}

	moved := card
	moved.Position = 3

	ts.repo.EXPECT().Card(ctx, card.ID).Return(card, nil)
	ts.repo.EXPECT().Column(ctx, column.ID).Return(column, nil)
	ts.repo.EXPECT().MoveCard(ctx, card.ID, column.ID, 3, gomock.Any()).Return(moved, nil)
	// The card never enters a new column, so the webhook stays quiet even
	// with an every_time trigger mode.

	got, deliveries, err := ts.s.MoveCard(ctx, card.ID, column.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, got.Position)
	require.Empty(t, deliveries)
	require.False(t, got.WebhookTriggered)
}

func TestService_VerifyWorkspacePassword(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	id := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().Workspace(ctx, id).
		Return(entity.Workspace{ID: id, SharedLinkPassword: "hunter2", HasPassword: true}, nil).Times(2)

	ok, err := ts.s.VerifyWorkspacePassword(ctx, id, "hunter2")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ts.s.VerifyWorkspacePassword(ctx, id, "wrong")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestService_VerifyWorkspacePassword_NoneSet(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})
	ctx := context.Background()

	id := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().Workspace(ctx, id).Return(entity.Workspace{ID: id}, nil)

	ok, err := ts.s.VerifyWorkspacePassword(ctx, id, "anything")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestService_CreateColumn_BadTriggerMode(t *testing.T) {
	t.Parallel()

	ts := newTestService(t, service.Options{})

	_, err := ts.s.CreateColumn(context.Background(), uuid.Must(uuid.NewV4()), service.ColumnRequest{
		Name:               "Won",
		WebhookTriggerMode: "sometimes",
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
