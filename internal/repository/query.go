package repository

import (
	"catalog_service/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paginate applies the sort column of req (already validated against a
// whitelist), a tie-breaking order on id, and the page window.
func paginate(q *gorm.DB, table string, req domain.PageRequest) *gorm.DB {
	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Table: table, Name: req.Sort},
		Desc:   req.Direction == domain.DESC,
	})
	if req.Sort != "id" {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Table: table, Name: "id"}})
	}
	return q.Offset(req.Offset()).Limit(req.Size)
}
