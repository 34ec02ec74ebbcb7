package domain

import "context"

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	FindPage(ctx context.Context, req PageRequest) ([]Category, int64, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	Save(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, id int64) error
	// CountProducts reports how many products reference the category.
	CountProducts(ctx context.Context, id int64) (int64, error)
}
