package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle_OwnOrder(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	owner := newTestUser(t, "Bob", user.Restaurateur)
	stored := newTestOrder(t, client, owner, order.Validating, nil)
	query, err := queries.NewGetOrderQuery(stored.ID(), client)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.True(t, got.IsEqual(stored))
}

func TestGetOrderQueryHandler_Handle_ForbiddenOutsideScope(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	owner := newTestUser(t, "Bob", user.Restaurateur)
	other := newTestUser(t, "Eve", user.Client)
	stored := newTestOrder(t, client, owner, order.Validating, nil)
	query, _ := queries.NewGetOrderQuery(stored.ID(), other)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	_, err := h.Handle(ctx, query)

	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	id := kernel.NewUUID()
	query, _ := queries.NewGetOrderQuery(id, client)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	_, err := h.Handle(ctx, query)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_DelivererPoolVisibility(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	owner := newTestUser(t, "Bob", user.Restaurateur)
	deliverer := newTestUser(t, "Carol", user.Deliverer)
	other := newTestUser(t, "Dave", user.Deliverer)

	t.Run("unassigned pool order is visible to any deliverer", func(t *testing.T) {
		stored := newTestOrder(t, client, owner, order.WaitingDelivery, nil)
		query, _ := queries.NewGetOrderQuery(stored.ID(), other)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

		h := queries.NewGetOrderQueryHandler(repo)
		_, err := h.Handle(ctx, query)

		require.NoError(t, err)
	})

	t.Run("claimed order is hidden from other deliverers", func(t *testing.T) {
		stored := newTestOrder(t, client, owner, order.Delivering, &deliverer)
		query, _ := queries.NewGetOrderQuery(stored.ID(), other)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

		h := queries.NewGetOrderQueryHandler(repo)
		_, err := h.Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
