package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImgURL      string          `gorm:"column:img_url;type:varchar(512)"`
	Date        time.Time       `gorm:"column:date"`
	Categories  []Category      `gorm:"many2many:product_categories;"`
}

func (Product) TableName() string { return "products" }

// CategoryIDs returns the ids of the product's categories in their current order.
func (p *Product) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
