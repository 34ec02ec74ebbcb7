package dto

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductDTO is the wire form of a product. On input only the ids of
// Categories are read; names are filled from the store on output.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImgURL      string          `json:"imageUrl"`
	Date        time.Time       `json:"date"`
	Categories  []CategoryDTO   `json:"categories"`
}

// CategoryResolver looks up a category by id. It returns an error matching
// domain.ErrNotFound when the id does not exist.
type CategoryResolver interface {
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
}

func FromProduct(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImgURL:      p.ImgURL,
		Date:        p.Date,
		Categories:  FromCategories(p.Categories),
	}
}

// ApplyProduct merges d into p. Every category id in d is resolved first; if
// any of them is unknown p is left untouched and a not-found error is
// returned. Otherwise all scalar fields are copied and the category set is
// replaced by the resolved categories.
func ApplyProduct(ctx context.Context, d ProductDTO, p *domain.Product, resolver CategoryResolver) error {
	categories := make([]domain.Category, 0, len(d.Categories))
	seen := make(map[int64]struct{}, len(d.Categories))
	for _, ref := range d.Categories {
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}

		category, err := resolver.FindByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFound("Category ID [%d] Not Found!", ref.ID)
			}
			return fmt.Errorf("resolving category %d: %w", ref.ID, err)
		}
		categories = append(categories, *category)
	}

	p.Name = d.Name
	p.Description = d.Description
	p.Price = d.Price
	p.ImgURL = d.ImgURL
	p.Date = d.Date
	p.Categories = categories
	return nil
}
