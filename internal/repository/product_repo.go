package repository

import (
	"context"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const productCategoriesTable = "product_categories"

type gormProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &gormProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormProductRepository) FindPage(ctx context.Context, filter domain.ProductFilter, req domain.PageRequest) ([]domain.Product, int64, error) {
	db := dbFrom(ctx, r.db)
	q := db.Model(&domain.Product{})
	if filter.CategoryID != 0 {
		sub := db.Table(productCategoriesTable).Select("product_id").Where("category_id = ?", filter.CategoryID)
		q = q.Where("products.id IN (?)", sub)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		q = q.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	products := []domain.Product{}
	if err := paginate(q, domain.Product{}.TableName(), req).Find(&products).Error; err != nil {
		r.log.Errorf("Failed to list products page %d (size %d): %v", req.Page, req.Size, err)
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}
	r.log.Debugf("Retrieved %d of %d products (page %d, size %d, category %d)", len(products), total, req.Page, req.Size, filter.CategoryID)
	return products, total, nil
}

func (r *gormProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		r.log.Warnf("Product with ID %d not found", id)
		return nil, domain.ErrNotFound
	}
	var product domain.Product
	err := dbFrom(ctx, r.db).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.id ASC") }).
		First(&product, id).Error
	if err != nil {
		err = translateError(err)
		if domain.KindOf(err) == domain.KindNotFound {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, err
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return &product, nil
}

func (r *gormProductRepository) Save(ctx context.Context, product *domain.Product) error {
	db := dbFrom(ctx, r.db)
	categories := product.Categories

	if product.ID == 0 {
		if err := db.Omit(clause.Associations).Create(product).Error; err != nil {
			r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
			return fmt.Errorf("could not create product: %w", translateError(err))
		}
	} else {
		result := db.Model(&domain.Product{ID: product.ID}).Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"img_url":     product.ImgURL,
			"date":        product.Date,
		})
		if result.Error != nil {
			r.log.Errorf("Failed to update product ID %d: %v", product.ID, result.Error)
			return fmt.Errorf("could not update product: %w", translateError(result.Error))
		}
		if result.RowsAffected == 0 {
			r.log.Warnf("Product with ID %d not found for update", product.ID)
			return domain.ErrNotFound
		}
	}

	if err := r.replaceCategories(db, product, categories); err != nil {
		return err
	}
	r.log.Infof("Product saved successfully with ID: %d, Name: %s, Categories: %v", product.ID, product.Name, product.CategoryIDs())
	return nil
}

func (r *gormProductRepository) replaceCategories(db *gorm.DB, product *domain.Product, categories []domain.Category) error {
	assoc := db.Model(product).Association("Categories")
	var err error
	if len(categories) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(categories)
	}
	if err != nil {
		r.log.Errorf("Failed to replace categories of product ID %d: %v", product.ID, err)
		return fmt.Errorf("could not save product categories: %w", translateError(err))
	}
	product.Categories = categories
	return nil
}

func (r *gormProductRepository) DeleteByID(ctx context.Context, id int64) error {
	if id <= 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return domain.ErrNotFound
	}
	db := dbFrom(ctx, r.db)

	if err := db.Model(&domain.Product{ID: id}).Association("Categories").Clear(); err != nil {
		r.log.Errorf("Failed to detach categories of product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", translateError(err))
	}

	result := db.Delete(&domain.Product{}, id)
	if result.Error != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, result.Error)
		return fmt.Errorf("could not delete product: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return domain.ErrNotFound
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}
