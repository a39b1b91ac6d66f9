package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Lifecycle writes go through ApplyTransition: a single conditional UPDATE
// carrying both the expected state (status set, deliverer unset) and the
// delta, so a transition lost to a concurrent writer affects zero rows
// instead of overwriting it.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUnavailableError("order insert", err)
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewUnavailableError("order lookup", err)
	}

	return toDomain(dto)
}

// ApplyTransition applies a lifecycle transition as one conditional UPDATE.
// Zero affected rows means the stored record no longer matches the
// expectation (the caller lost a race) and yields a conflict. On success
// the post-write record is re-fetched and returned.
func (r *GormOrderRepository) ApplyTransition(
	ctx context.Context,
	id kernel.UUID,
	transition order.Transition,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var delta OrderDTO
	if transition.Change.Status != nil {
		delta.Status = transition.Change.Status.String()
	}
	if transition.Change.Deliverer != nil {
		raw := transition.Change.Deliverer.ID().Bytes()
		delta.DelivererID = &raw
		dto := userFromDomain(*transition.Change.Deliverer)
		delta.Deliverer = &dto
	}
	if transition.Change.ValidationCode != nil {
		delta.ValidationCode = transition.Change.ValidationCode
	}

	expected := make([]string, 0, len(transition.Expect.Statuses))
	for _, s := range transition.Expect.Statuses {
		expected = append(expected, s.String())
	}

	tx := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Where("status IN ?", expected)
	if transition.Expect.DelivererUnset {
		tx = tx.Where("deliverer_id IS NULL")
	}

	result := tx.Updates(&delta)
	if result.Error != nil {
		return nil, errs.NewUnavailableError("order update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewConflictError("order", id.String())
	}

	return r.Get(ctx, id)
}

// UpdateFields overwrites the patched fields without any state
// expectation. Administrative use only.
func (r *GormOrderRepository) UpdateFields(
	ctx context.Context,
	id kernel.UUID,
	patch order.Patch,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.Comment != nil {
		fields["comment"] = *patch.Comment
	}
	if patch.Position != nil {
		fields["position_lon"] = patch.Position.Lon()
		fields["position_lat"] = patch.Position.Lat()
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.DeliveryPrice != nil {
		fields["delivery_price"] = *patch.DeliveryPrice
	}
	if patch.CommissionPrice != nil {
		fields["commission_price"] = *patch.CommissionPrice
	}
	if patch.Status != nil {
		fields["status"] = patch.Status.String()
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(fields)
	if result.Error != nil {
		return nil, errs.NewUnavailableError("order update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return r.Get(ctx, id)
}

// Find returns the page of orders matching the scope and filter, newest
// first.
func (r *GormOrderRepository) Find(
	ctx context.Context,
	scope order.Scope,
	filter order.Filter,
) ([]*order.Order, error) {
	tx := applyFilter(applyScope(r.db.WithContext(ctx).Model(&OrderDTO{}), scope), filter)

	var dtos []OrderDTO
	if err := tx.Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Size).
		Find(&dtos).Error; err != nil {
		return nil, errs.NewUnavailableError("order search", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// Count returns the total number of orders matching the scope and filter.
func (r *GormOrderRepository) Count(
	ctx context.Context,
	scope order.Scope,
	filter order.Filter,
) (int64, error) {
	tx := applyFilter(applyScope(r.db.WithContext(ctx).Model(&OrderDTO{}), scope), filter)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, errs.NewUnavailableError("order count", err)
	}

	return total, nil
}

// applyScope translates a visibility scope into row predicates.
func applyScope(tx *gorm.DB, scope order.Scope) *gorm.DB {
	switch s := scope.(type) {
	case order.ClientScope:
		return tx.Where("client_id = ?", s.ClientID.Bytes())
	case order.RestaurateurScope:
		return tx.Where("restaurant_owner_id = ?", s.OwnerID.Bytes())
	case order.DelivererScope:
		switch s.Pool {
		case order.PoolMine:
			return tx.Where("deliverer_id = ?", s.DelivererID.Bytes())
		case order.PoolUnassigned:
			return tx.Where("deliverer_id IS NULL AND status IN ?", poolStatusNames())
		default:
			return tx.Where("deliverer_id = ? OR (deliverer_id IS NULL AND status IN ?)",
				s.DelivererID.Bytes(), poolStatusNames())
		}
	default:
		return tx
	}
}

func applyFilter(tx *gorm.DB, filter order.Filter) *gorm.DB {
	if len(filter.Statuses) > 0 {
		names := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			names = append(names, s.String())
		}
		tx = tx.Where("status IN ?", names)
	}
	return tx
}

func poolStatusNames() []string {
	statuses := order.PoolStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
