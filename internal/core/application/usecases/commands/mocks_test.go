package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"

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

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, notification order.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(t *testing.T, firstName string, role user.Role) user.Snapshot {
	t.Helper()
	u, err := user.NewSnapshot(kernel.NewUUID(), firstName, "Doe", firstName+"@example.com", "+33600000000", role)
	require.NoError(t, err)
	return u
}

func newTestDraft(t *testing.T, owner user.Snapshot) order.Draft {
	t.Helper()
	position, err := kernel.NewGeoPoint(2.35, 48.85)
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), owner, "Chez Momo", "", "1 rue du Four, Paris", position)
	require.NoError(t, err)
	product, err := order.NewProduct(kernel.NewUUID(), "Couscous royal", 15.5, "", "")
	require.NoError(t, err)

	return order.Draft{
		Restaurant:      restaurant,
		Products:        []order.Product{product},
		Price:           15.5,
		DeliveryPrice:   2.5,
		CommissionPrice: 1.5,
		Address:         "10 avenue des Gobelins, Paris",
		Position:        position,
	}
}

func newStoredOrder(t *testing.T, client, owner user.Snapshot, status order.Status, deliverer *user.Snapshot) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), client, newTestDraft(t, owner), status, deliverer, nil)
	require.NoError(t, err)
	return o
}
