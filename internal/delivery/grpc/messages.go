package grpc

import (
	"catalog_service/internal/domain"
	"catalog_service/internal/dto"
)

type IDRequest struct {
	ID int64 `json:"id"`
}

type ListAllCategoriesRequest struct{}

type CategoryList struct {
	Categories []dto.CategoryDTO `json:"categories"`
}

// PageQuery mirrors the HTTP paging parameters. Empty fields take the
// same defaults as the REST endpoints.
type PageQuery struct {
	Page      int    `json:"page"`
	Size      int    `json:"size"`
	Sort      string `json:"sort"`
	Direction string `json:"direction"`
}

type ListCategoriesRequest struct {
	PageQuery
}

type ListProductsRequest struct {
	PageQuery
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
}

type UpdateCategoryRequest struct {
	ID       int64           `json:"id"`
	Category dto.CategoryDTO `json:"category"`
}

type UpdateProductRequest struct {
	ID      int64          `json:"id"`
	Product dto.ProductDTO `json:"product"`
}

type CategoryPage = domain.Page[dto.CategoryDTO]

type ProductPage = domain.Page[dto.ProductDTO]

func (q PageQuery) toPageRequest(defaultDir domain.Direction) (domain.PageRequest, error) {
	req := domain.PageRequest{
		Page:      q.Page,
		Size:      q.Size,
		Sort:      q.Sort,
		Direction: defaultDir,
	}
	if req.Size == 0 {
		req.Size = domain.DefaultPageSize
	}
	if req.Sort == "" {
		req.Sort = "name"
	}
	if q.Direction != "" {
		dir, err := domain.ParseDirection(q.Direction)
		if err != nil {
			return req, err
		}
		req.Direction = dir
	}
	return req, nil
}
