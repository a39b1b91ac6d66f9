package http

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
)

func parseUUID(paramName, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// Wire representations of the API. Field names follow the persisted wire
// names used across the service (statuses and roles as lowercase strings,
// user names as firstname/lastname).

type GeoPointDTO struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type UserDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type RestaurantDTO struct {
	ID          string      `json:"id"`
	Owner       UserDTO     `json:"owner"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Position    GeoPointDTO `json:"position"`
}

type ProductDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type MenuDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Products    []ProductDTO `json:"products"`
}

// SubmitOrderRequest is the draft of a new order. The client identity is
// deliberately absent from the body: it is taken from the authenticated
// actor.
type SubmitOrderRequest struct {
	Restaurant      RestaurantDTO `json:"restaurant"`
	Products        []ProductDTO  `json:"products"`
	Menus           []MenuDTO     `json:"menus"`
	Price           float64       `json:"price"`
	DeliveryPrice   float64       `json:"deliveryPrice"`
	CommissionPrice float64       `json:"commissionPrice"`
	Address         string        `json:"address"`
	Position        GeoPointDTO   `json:"position"`
	Comment         string        `json:"comment"`
}

// PatchOrderRequest carries an administrative partial update. Absent fields
// are untouched.
type PatchOrderRequest struct {
	Address         *string      `json:"address"`
	Comment         *string      `json:"comment"`
	Position        *GeoPointDTO `json:"position"`
	Price           *float64     `json:"price"`
	DeliveryPrice   *float64     `json:"deliveryPrice"`
	CommissionPrice *float64     `json:"commissionPrice"`
	Status          *string      `json:"status"`
}

type OrderResponse struct {
	ID              string        `json:"id"`
	Status          string        `json:"status"`
	Client          UserDTO       `json:"client"`
	Restaurant      RestaurantDTO `json:"restaurant"`
	Deliverer       *UserDTO      `json:"deliverer"`
	Products        []ProductDTO  `json:"products"`
	Menus           []MenuDTO     `json:"menus"`
	Price           float64       `json:"price"`
	DeliveryPrice   float64       `json:"deliveryPrice"`
	CommissionPrice float64       `json:"commissionPrice"`
	Address         string        `json:"address"`
	Position        GeoPointDTO   `json:"position"`
	Comment         string        `json:"comment"`
	ValidationCode  *int          `json:"validationCode"`
}

// OrderListResponse is a page of orders plus the total match count before
// pagination.
type OrderListResponse struct {
	Total  int64           `json:"total"`
	Orders []OrderResponse `json:"orders"`
}

func draftFromRequest(request SubmitOrderRequest) (order.Draft, error) {
	restaurant, err := restaurantFromDTO(request.Restaurant)
	if err != nil {
		return order.Draft{}, err
	}

	products, err := productsFromDTO(request.Products)
	if err != nil {
		return order.Draft{}, err
	}

	menus := make([]order.Menu, 0, len(request.Menus))
	for _, dto := range request.Menus {
		menu, err := menuFromDTO(dto)
		if err != nil {
			return order.Draft{}, err
		}
		menus = append(menus, menu)
	}

	position, err := kernel.NewGeoPoint(request.Position.Lon, request.Position.Lat)
	if err != nil {
		return order.Draft{}, err
	}

	return order.Draft{
		Restaurant:      restaurant,
		Products:        products,
		Menus:           menus,
		Price:           request.Price,
		DeliveryPrice:   request.DeliveryPrice,
		CommissionPrice: request.CommissionPrice,
		Address:         request.Address,
		Position:        position,
		Comment:         request.Comment,
	}, nil
}

func restaurantFromDTO(dto RestaurantDTO) (order.Restaurant, error) {
	id, err := parseUUID("restaurant id", dto.ID)
	if err != nil {
		return order.Restaurant{}, err
	}

	owner, err := userFromDTO(dto.Owner)
	if err != nil {
		return order.Restaurant{}, err
	}

	position, err := kernel.NewGeoPoint(dto.Position.Lon, dto.Position.Lat)
	if err != nil {
		return order.Restaurant{}, err
	}

	return order.NewRestaurant(id, owner, dto.Name, dto.Description, dto.Address, position)
}

func userFromDTO(dto UserDTO) (user.Snapshot, error) {
	id, err := parseUUID("user id", dto.ID)
	if err != nil {
		return user.Snapshot{}, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return user.Snapshot{}, err
	}

	return user.NewSnapshot(id, dto.FirstName, dto.LastName, dto.Email, dto.Phone, role)
}

func productsFromDTO(dtos []ProductDTO) ([]order.Product, error) {
	products := make([]order.Product, 0, len(dtos))
	for _, dto := range dtos {
		id, err := parseUUID("product id", dto.ID)
		if err != nil {
			return nil, err
		}

		product, err := order.NewProduct(id, dto.Name, dto.Price, dto.Description, dto.Image)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func menuFromDTO(dto MenuDTO) (order.Menu, error) {
	id, err := parseUUID("menu id", dto.ID)
	if err != nil {
		return order.Menu{}, err
	}

	products, err := productsFromDTO(dto.Products)
	if err != nil {
		return order.Menu{}, err
	}

	return order.NewMenu(id, dto.Name, dto.Price, dto.Description, dto.Image, products)
}

func patchFromRequest(request PatchOrderRequest) (order.Patch, error) {
	patch := order.Patch{
		Address:         request.Address,
		Comment:         request.Comment,
		Price:           request.Price,
		DeliveryPrice:   request.DeliveryPrice,
		CommissionPrice: request.CommissionPrice,
	}

	if request.Position != nil {
		position, err := kernel.NewGeoPoint(request.Position.Lon, request.Position.Lat)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Position = &position
	}

	if request.Status != nil {
		status, err := order.StatusFromString(*request.Status)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Status = &status
	}

	return patch, nil
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	response := OrderResponse{
		ID:              aggregate.ID().String(),
		Status:          aggregate.Status().String(),
		Client:          userToDTO(aggregate.Client()),
		Restaurant:      restaurantToDTO(aggregate.Restaurant()),
		Products:        productsToDTO(aggregate.Products()),
		Menus:           menusToDTO(aggregate.Menus()),
		Price:           aggregate.Price(),
		DeliveryPrice:   aggregate.DeliveryPrice(),
		CommissionPrice: aggregate.CommissionPrice(),
		Address:         aggregate.Address(),
		Position:        GeoPointDTO{Lon: aggregate.Position().Lon(), Lat: aggregate.Position().Lat()},
		Comment:         aggregate.Comment(),
		ValidationCode:  aggregate.ValidationCode(),
	}

	if deliverer := aggregate.Deliverer(); deliverer != nil {
		dto := userToDTO(*deliverer)
		response.Deliverer = &dto
	}
	return response
}

func userToDTO(snapshot user.Snapshot) UserDTO {
	return UserDTO{
		ID:        snapshot.ID().String(),
		FirstName: snapshot.FirstName(),
		LastName:  snapshot.LastName(),
		Email:     snapshot.Email(),
		Phone:     snapshot.Phone(),
		Role:      snapshot.Role().String(),
	}
}

func restaurantToDTO(restaurant order.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          restaurant.ID().String(),
		Owner:       userToDTO(restaurant.Owner()),
		Name:        restaurant.Name(),
		Description: restaurant.Description(),
		Address:     restaurant.Address(),
		Position:    GeoPointDTO{Lon: restaurant.Position().Lon(), Lat: restaurant.Position().Lat()},
	}
}

func productsToDTO(products []order.Product) []ProductDTO {
	dtos := make([]ProductDTO, len(products))
	for i, product := range products {
		dtos[i] = ProductDTO{
			ID:          product.ID().String(),
			Name:        product.Name(),
			Price:       product.Price(),
			Description: product.Description(),
			Image:       product.Image(),
		}
	}
	return dtos
}

func menusToDTO(menus []order.Menu) []MenuDTO {
	dtos := make([]MenuDTO, len(menus))
	for i, menu := range menus {
		dtos[i] = MenuDTO{
			ID:          menu.ID().String(),
			Name:        menu.Name(),
			Price:       menu.Price(),
			Description: menu.Description(),
			Image:       menu.Image(),
			Products:    productsToDTO(menu.Products()),
		}
	}
	return dtos
}
