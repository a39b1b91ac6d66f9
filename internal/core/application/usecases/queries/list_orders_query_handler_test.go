package queries_test

import (
	"context"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ApplyTransition(ctx context.Context, id kernel.UUID, transition order.Transition) (*order.Order, error) {
	args := m.Called(ctx, id, transition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateFields(ctx context.Context, id kernel.UUID, patch order.Patch) (*order.Order, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, scope order.Scope, filter order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, scope order.Scope, filter order.Filter) (int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestUser(t *testing.T, firstName string, role user.Role) user.Snapshot {
	t.Helper()
	u, err := user.NewSnapshot(kernel.NewUUID(), firstName, "Doe", firstName+"@example.com", "+33600000000", role)
	require.NoError(t, err)
	return u
}

func newTestOrder(t *testing.T, client, owner user.Snapshot, status order.Status, deliverer *user.Snapshot) *order.Order {
	t.Helper()
	position, err := kernel.NewGeoPoint(2.35, 48.85)
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), owner, "Chez Momo", "", "1 rue du Four, Paris", position)
	require.NoError(t, err)
	product, err := order.NewProduct(kernel.NewUUID(), "Couscous royal", 15.5, "", "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), client, order.Draft{
		Restaurant: restaurant,
		Products:   []order.Product{product},
		Price:      15.5,
		Address:    "10 avenue des Gobelins, Paris",
		Position:   position,
	}, status, deliverer, nil)
	require.NoError(t, err)
	return o
}

func TestListOrdersQueryHandler_Handle_ClientScope(t *testing.T) {
	ctx := t.Context()
	client := newTestUser(t, "Alice", user.Client)
	owner := newTestUser(t, "Bob", user.Restaurateur)
	stored := newTestOrder(t, client, owner, order.Validating, nil)
	query, err := queries.NewListOrdersQuery(client, nil, order.PoolAll, 0, 20)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	wantScope := order.ClientScope{ClientID: client.ID()}
	repo.On("Count", mock.Anything, wantScope, mock.AnythingOfType("order.Filter")).Return(int64(1), nil).Once()
	repo.On("Find", mock.Anything, wantScope, mock.AnythingOfType("order.Filter")).
		Return([]*order.Order{stored}, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Orders, 1)
	assert.True(t, result.Orders[0].IsEqual(stored))
	repo.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_DelivererPoolSlice(t *testing.T) {
	ctx := t.Context()
	deliverer := newTestUser(t, "Carol", user.Deliverer)
	query, err := queries.NewListOrdersQuery(deliverer, nil, order.PoolUnassigned, 0, 20)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	wantScope := order.DelivererScope{DelivererID: deliverer.ID(), Pool: order.PoolUnassigned}
	repo.On("Count", mock.Anything, wantScope, mock.Anything).Return(int64(0), nil).Once()
	repo.On("Find", mock.Anything, wantScope, mock.Anything).Return([]*order.Order{}, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Empty(t, result.Orders)
	repo.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_StatusFilterAndPaging(t *testing.T) {
	ctx := t.Context()
	admin := newTestUser(t, "Root", user.Admin)
	query, err := queries.NewListOrdersQuery(admin, []order.Status{order.Delivering}, order.PoolAll, 40, 20)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	wantFilter := order.Filter{Statuses: []order.Status{order.Delivering}, Skip: 40, Size: 20}
	repo.On("Count", mock.Anything, order.AllScope{}, wantFilter).Return(int64(57), nil).Once()
	repo.On("Find", mock.Anything, order.AllScope{}, wantFilter).Return([]*order.Order{}, nil).Once()

	h := queries.NewListOrdersQueryHandler(repo)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(57), result.Total)
	repo.AssertExpectations(t)
}

func TestNewListOrdersQuery_Validation(t *testing.T) {
	client := newTestUser(t, "Alice", user.Client)

	t.Run("should reject negative skip", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(client, nil, order.PoolAll, -1, 20)
		require.Error(t, err)
	})

	t.Run("should reject non-positive size", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(client, nil, order.PoolAll, 0, 0)
		require.Error(t, err)
	})

	t.Run("should reject unknown status filter", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(client, []order.Status{order.UnknownStatus}, order.PoolAll, 0, 20)
		require.Error(t, err)
	})

	t.Run("zero value query should fail validation", func(t *testing.T) {
		var q queries.ListOrdersQuery
		assert.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}
