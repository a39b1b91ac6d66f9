package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrMenuIsNotConstructed is returned when a Menu instance was not
	// created through the NewMenu constructor.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")
)

// Product is a denormalized order line item: a copy of a catalog product as
// priced at the moment the order was placed. Line items never change after
// creation; the order's price is assumed to equal the sum of its lines and
// is not re-validated here.
type Product struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	name        string
	price       float64
	description string
	image       string

	guard guard.ConstructorGuard
}

// NewProduct creates a product line item with validation. The id must be
// valid, the name is required, and the price must be non-negative.
func NewProduct(id kernel.UUID, name string, price float64, description, image string) (Product, error) {
	p := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	p.description = description
	p.image = image
	return p, nil
}

// Validate ensures the Product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's catalog identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the product's unit price at order time.
func (p Product) Price() float64 {
	return p.price
}

// Description returns the product description, possibly empty.
func (p Product) Description() string {
	return p.description
}

// Image returns the product image reference, possibly empty.
func (p Product) Image() string {
	return p.image
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("product price",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

// Menu is a denormalized composite line item: a named bundle of products
// with its own bundle price, copied at order time like Product.
type Menu struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	name        string
	price       float64
	description string
	image       string
	products    []Product

	guard guard.ConstructorGuard
}

// NewMenu creates a menu line item with validation. A menu must bundle at
// least one product; every bundled product must itself be constructed.
func NewMenu(
	id kernel.UUID,
	name string,
	price float64,
	description, image string,
	products []Product,
) (Menu, error) {
	m := Menu{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setProducts(products),
	); err != nil {
		return Menu{}, err
	}

	m.description = description
	m.image = image
	return m, nil
}

// Validate ensures the Menu was created through NewMenu.
func (m Menu) Validate() error {
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// ID returns the menu's catalog identifier.
func (m Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the menu's display name.
func (m Menu) Name() string {
	return m.name
}

// Price returns the menu's bundle price at order time.
func (m Menu) Price() float64 {
	return m.price
}

// Description returns the menu description, possibly empty.
func (m Menu) Description() string {
	return m.description
}

// Image returns the menu image reference, possibly empty.
func (m Menu) Image() string {
	return m.image
}

// Products returns the bundled product line items.
func (m Menu) Products() []Product {
	return m.products
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu name")
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu price",
			fmt.Errorf("%v is negative", price))
	}
	m.price = price
	return nil
}

func (m *Menu) setProducts(products []Product) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("menu products")
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	m.products = products
	return nil
}
