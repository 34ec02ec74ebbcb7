// Package dto maps persisted entities to the transfer objects exposed by the
// HTTP and gRPC surfaces, and merges incoming transfer objects back into
// entities.
package dto

import "catalog_service/internal/domain"

type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}

func FromCategory(c *domain.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name}
}

func FromCategories(cs []domain.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cs))
	for i := range cs {
		out = append(out, FromCategory(&cs[i]))
	}
	return out
}

// ApplyCategory copies the writable fields of d into c. The id is never copied.
func ApplyCategory(d CategoryDTO, c *domain.Category) {
	c.Name = d.Name
}
