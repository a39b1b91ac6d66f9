package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeclineOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	owner := newTestUser(t, "Bob", user.Restaurateur)
	stored := newStoredOrder(t, client, owner, order.Validating, nil)
	cancelled := newStoredOrder(t, client, owner, order.Cancelled, nil)
	cmd, _ := commands.NewDeclineOrderCommand(stored.ID(), owner)

	repo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	mock.InOrder(
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("ApplyTransition", mock.Anything, stored.ID(), mock.Anything).Return(cancelled, nil).Once(),
		notifier.On("Publish", mock.Anything, mock.Anything).Return(nil).Once(),
	)

	h := commands.NewDeclineOrderCommandHandler(repo, notifier, testLogger())
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())

	notification := notifier.Calls[0].Arguments.Get(1).(order.Notification)
	assert.True(t, notification.TargetUserID.IsEqual(client.ID()))
	assert.Equal(t, "order.declined", notification.Topic)
}

func TestDeclineOrderCommandHandler_Handle_ForbiddenForClient(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	owner := newTestUser(t, "Bob", user.Restaurateur)
	stored := newStoredOrder(t, client, owner, order.Validating, nil)
	cmd, _ := commands.NewDeclineOrderCommand(stored.ID(), client)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	h := commands.NewDeclineOrderCommandHandler(repo, new(MockNotifier), testLogger())
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestDeclineOrderCommandHandler_Handle_AfterAcceptance(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	owner := newTestUser(t, "Bob", user.Restaurateur)
	stored := newStoredOrder(t, client, owner, order.Preparating, nil)
	cmd, _ := commands.NewDeclineOrderCommand(stored.ID(), owner)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	h := commands.NewDeclineOrderCommandHandler(repo, new(MockNotifier), testLogger())
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything)
}
