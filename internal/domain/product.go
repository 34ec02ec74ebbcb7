package domain

import "context"

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID int64
	Name       string
}

type ProductRepository interface {
	FindPage(ctx context.Context, filter ProductFilter, req PageRequest) ([]Product, int64, error)
	// FindByID loads the product together with its categories.
	FindByID(ctx context.Context, id int64) (*Product, error)
	// Save inserts the product when ID is zero, updates it otherwise, and
	// replaces the stored category set with product.Categories.
	Save(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, id int64) error
}

// Transactor runs fn inside a single store transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	InReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}
