package domain

import (
	"math"
	"strings"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection accepts asc/desc in any case.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case ASC:
		return ASC, nil
	case DESC:
		return DESC, nil
	}
	return "", Validation("Invalid sort direction '%s': expected ASC or DESC", s)
}

// PageRequest selects one zero-based page of a sorted listing.
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction Direction
}

func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Validate checks the request and resolves Sort against the allowed fields.
func (r PageRequest) Validate(allowedSort ...string) error {
	if r.Page < 0 {
		return Validation("Invalid page %d: must not be negative", r.Page)
	}
	if r.Size <= 0 || r.Size > MaxPageSize {
		return Validation("Invalid page size %d: must be between 1 and %d", r.Size, MaxPageSize)
	}
	if r.Page > (math.MaxInt-r.Size)/r.Size {
		return Validation("Invalid page %d: offset out of range", r.Page)
	}
	if r.Direction != ASC && r.Direction != DESC {
		return Validation("Invalid sort direction '%s': expected ASC or DESC", r.Direction)
	}
	for _, f := range allowedSort {
		if r.Sort == f {
			return nil
		}
	}
	return Validation("Invalid sort field '%s'", r.Sort)
}

// Page is one page of results plus the total count across all pages.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           req.Page,
		Size:             req.Size,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}

// MapPage converts the content of a page, keeping its paging metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[U]{
		Content:          out,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: p.NumberOfElements,
		First:            p.First,
		Last:             p.Last,
		Empty:            p.Empty,
	}
}
