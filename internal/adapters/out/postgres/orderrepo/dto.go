// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The client and restaurant snapshots are flattened into
// prefixed columns so scope predicates can filter on them; the deliverer
// snapshot is serialized as JSON next to an indexed deliverer_id column
// used by claim-exclusivity and pool queries.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Client          UserDTO       `gorm:"embedded;embeddedPrefix:client_"`
	Restaurant      RestaurantDTO `gorm:"embedded;embeddedPrefix:restaurant_"`
	DelivererID     *uuid.UUID    `gorm:"type:uuid;index"`
	Deliverer       *UserDTO      `gorm:"serializer:json"`
	Products        []ProductDTO  `gorm:"serializer:json"`
	Menus           []MenuDTO     `gorm:"serializer:json"`
	Price           float64
	DeliveryPrice   float64
	CommissionPrice float64
	Address         string
	Position        GeoPointDTO `gorm:"embedded;embeddedPrefix:position_"`
	Comment         string
	Status          string `gorm:"index"`
	ValidationCode  *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// UserDTO is a denormalized user snapshot. Used both as prefixed columns
// (client, restaurant owner) and as a JSON document (deliverer).
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;index" json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
}

// RestaurantDTO is the denormalized restaurant snapshot embedded in the
// order row.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid"`
	Owner       UserDTO   `gorm:"embedded;embeddedPrefix:owner_"`
	Name        string
	Description string
	Address     string
	Position    GeoPointDTO `gorm:"embedded;embeddedPrefix:position_"`
}

// GeoPointDTO stores a WGS84 position as two columns.
type GeoPointDTO struct {
	Lon float64
	Lat float64
}

// ProductDTO is a product line item serialized into the order row.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

// MenuDTO is a menu line item serialized into the order row.
type MenuDTO struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Products    []ProductDTO `json:"products"`
}

func userFromDomain(snapshot user.Snapshot) UserDTO {
	return UserDTO{
		ID:        snapshot.ID().Bytes(),
		FirstName: snapshot.FirstName(),
		LastName:  snapshot.LastName(),
		Email:     snapshot.Email(),
		Phone:     snapshot.Phone(),
		Role:      snapshot.Role().String(),
	}
}

func userToDomain(dto UserDTO) (user.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return user.Snapshot{}, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return user.Snapshot{}, err
	}

	return user.NewSnapshot(id, dto.FirstName, dto.LastName, dto.Email, dto.Phone, role)
}

func productsFromDomain(products []order.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ProductDTO{
			ID:          p.ID().Bytes(),
			Name:        p.Name(),
			Price:       p.Price(),
			Description: p.Description(),
			Image:       p.Image(),
		})
	}
	return dtos
}

func productsToDomain(dtos []ProductDTO) ([]order.Product, error) {
	products := make([]order.Product, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		p, err := order.NewProduct(id, dto.Name, dto.Price, dto.Description, dto.Image)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func menusFromDomain(menus []order.Menu) []MenuDTO {
	dtos := make([]MenuDTO, 0, len(menus))
	for _, m := range menus {
		dtos = append(dtos, MenuDTO{
			ID:          m.ID().Bytes(),
			Name:        m.Name(),
			Price:       m.Price(),
			Description: m.Description(),
			Image:       m.Image(),
			Products:    productsFromDomain(m.Products()),
		})
	}
	return dtos
}

func menusToDomain(dtos []MenuDTO) ([]order.Menu, error) {
	menus := make([]order.Menu, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		products, err := productsToDomain(dto.Products)
		if err != nil {
			return nil, err
		}

		m, err := order.NewMenu(id, dto.Name, dto.Price, dto.Description, dto.Image, products)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, nil
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var delivererID *uuid.UUID
	var deliverer *UserDTO
	if snapshot := aggregate.Deliverer(); snapshot != nil {
		raw := snapshot.ID().Bytes()
		delivererID = &raw
		dto := userFromDomain(*snapshot)
		deliverer = &dto
	}

	restaurant := aggregate.Restaurant()
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Client:      userFromDomain(aggregate.Client()),
		DelivererID: delivererID,
		Deliverer:   deliverer,
		Restaurant: RestaurantDTO{
			ID:          restaurant.ID().Bytes(),
			Owner:       userFromDomain(restaurant.Owner()),
			Name:        restaurant.Name(),
			Description: restaurant.Description(),
			Address:     restaurant.Address(),
			Position: GeoPointDTO{
				Lon: restaurant.Position().Lon(),
				Lat: restaurant.Position().Lat(),
			},
		},
		Products:        productsFromDomain(aggregate.Products()),
		Menus:           menusFromDomain(aggregate.Menus()),
		Price:           aggregate.Price(),
		DeliveryPrice:   aggregate.DeliveryPrice(),
		CommissionPrice: aggregate.CommissionPrice(),
		Address:         aggregate.Address(),
		Position: GeoPointDTO{
			Lon: aggregate.Position().Lon(),
			Lat: aggregate.Position().Lat(),
		},
		Comment:        aggregate.Comment(),
		Status:         aggregate.Status().String(),
		ValidationCode: aggregate.ValidationCode(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, deliverer, and
// validation code using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	client, err := userToDomain(dto.Client)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.Restaurant.ID[:])
	if err != nil {
		return nil, err
	}

	owner, err := userToDomain(dto.Restaurant.Owner)
	if err != nil {
		return nil, err
	}

	restaurantPosition, err := kernel.NewGeoPoint(dto.Restaurant.Position.Lon, dto.Restaurant.Position.Lat)
	if err != nil {
		return nil, err
	}

	restaurant, err := order.NewRestaurant(
		restaurantID, owner,
		dto.Restaurant.Name, dto.Restaurant.Description, dto.Restaurant.Address,
		restaurantPosition,
	)
	if err != nil {
		return nil, err
	}

	products, err := productsToDomain(dto.Products)
	if err != nil {
		return nil, err
	}

	menus, err := menusToDomain(dto.Menus)
	if err != nil {
		return nil, err
	}

	position, err := kernel.NewGeoPoint(dto.Position.Lon, dto.Position.Lat)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var deliverer *user.Snapshot
	if dto.Deliverer != nil {
		snapshot, delivererErr := userToDomain(*dto.Deliverer)
		if delivererErr != nil {
			return nil, delivererErr
		}
		deliverer = &snapshot
	}

	return order.RestoreOrder(id, client, order.Draft{
		Restaurant:      restaurant,
		Products:        products,
		Menus:           menus,
		Price:           dto.Price,
		DeliveryPrice:   dto.DeliveryPrice,
		CommissionPrice: dto.CommissionPrice,
		Address:         dto.Address,
		Position:        position,
		Comment:         dto.Comment,
	}, status, deliverer, dto.ValidationCode)
}
