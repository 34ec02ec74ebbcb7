package repository

import (
	"context"
	"fmt"
	"time"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates or updates the catalog tables, including the
// product_categories join table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Category{}, &domain.Product{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

type seedProduct struct {
	name       string
	price      string
	categories []int
}

var seedCategories = []string{"Books", "Electronics", "Computers"}

var seedProducts = []seedProduct{
	{"The Lord of the Rings", "90.5", []int{0}},
	{"Smart TV", "2190.0", []int{1, 2}},
	{"Macbook Pro", "1250.0", []int{2}},
	{"PC Gamer", "1200.0", []int{2}},
	{"Rails for Dummies", "100.99", []int{0}},
	{"PC Gamer Ex", "1350.0", []int{2}},
	{"PC Gamer X", "1350.0", []int{2}},
	{"PC Gamer Alfa", "1850.0", []int{2}},
	{"PC Gamer Tera", "1950.0", []int{2}},
	{"PC Gamer Y", "1700.0", []int{2}},
	{"PC Gamer Nitro", "1450.0", []int{2}},
	{"PC Gamer Card", "1850.0", []int{2}},
	{"PC Gamer Plus", "1350.0", []int{2}},
	{"PC Gamer Hera", "2250.0", []int{2}},
	{"PC Gamer Weed", "2200.0", []int{2}},
	{"PC Gamer Max", "2340.0", []int{2}},
	{"PC Gamer Turbo", "1280.0", []int{2}},
	{"PC Gamer Hot", "1450.0", []int{2}},
	{"PC Gamer Ez", "1750.0", []int{2}},
	{"PC Gamer Tr", "1650.0", []int{2}},
	{"PC Gamer Tx", "1680.0", []int{2}},
	{"PC Gamer Er", "1850.0", []int{2}},
	{"PC Gamer Min", "2250.0", []int{2}},
	{"PC Gamer Boo", "2350.0", []int{2}},
	{"PC Gamer Foo", "4170.0", []int{2}},
}

// Seed loads the reference catalog into an empty store. It does nothing when
// at least one category already exists.
func Seed(ctx context.Context, db *gorm.DB, logger *logrus.Logger) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&domain.Category{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("seed: count categories: %w", err)
	}
	if existing > 0 {
		logger.Infof("Seed skipped: %d categories already present", existing)
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := make([]domain.Category, len(seedCategories))
		for i, name := range seedCategories {
			categories[i] = domain.Category{Name: name}
			if err := tx.Create(&categories[i]).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
		}

		base := time.Date(2020, 7, 13, 20, 50, 7, 0, time.UTC)
		for i, sp := range seedProducts {
			product := domain.Product{
				Name:        sp.name,
				Description: "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
				Price:       decimal.RequireFromString(sp.price),
				ImgURL:      fmt.Sprintf("https://img.example.com/catalog/%d-big.jpg", i+1),
				Date:        base.Add(time.Duration(i) * time.Hour),
			}
			for _, idx := range sp.categories {
				product.Categories = append(product.Categories, categories[idx])
			}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("seed product %q: %w", sp.name, err)
			}
		}
		logger.Infof("Seeded %d categories and %d products", len(categories), len(seedProducts))
		return nil
	})
}
