package repository

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &gormCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	if err := dbFrom(ctx, r.db).Order("id ASC").Find(&categories).Error; err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	r.log.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *gormCategoryRepository) FindPage(ctx context.Context, req domain.PageRequest) ([]domain.Category, int64, error) {
	q := dbFrom(ctx, r.db).Model(&domain.Category{}).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.log.Errorf("Failed to count categories: %v", err)
		return nil, 0, fmt.Errorf("could not count categories: %w", err)
	}

	categories := []domain.Category{}
	if err := paginate(q, domain.Category{}.TableName(), req).Find(&categories).Error; err != nil {
		r.log.Errorf("Failed to list categories page %d (size %d): %v", req.Page, req.Size, err)
		return nil, 0, fmt.Errorf("could not list categories: %w", err)
	}
	r.log.Debugf("Retrieved %d of %d categories (page %d, size %d)", len(categories), total, req.Page, req.Size)
	return categories, total, nil
}

func (r *gormCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	if id <= 0 {
		r.log.Warnf("Category with ID %d not found", id)
		return nil, domain.ErrNotFound
	}
	var category domain.Category
	if err := dbFrom(ctx, r.db).First(&category, id).Error; err != nil {
		err = translateError(err)
		if domain.KindOf(err) == domain.KindNotFound {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, err
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	db := dbFrom(ctx, r.db)
	if category.ID == 0 {
		if err := db.Create(category).Error; err != nil {
			r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
			return fmt.Errorf("could not create category: %w", translateError(err))
		}
		r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
		return nil
	}

	result := db.Model(&domain.Category{ID: category.ID}).Update("name", category.Name)
	if result.Error != nil {
		r.log.Errorf("Failed to update category ID %d: %v", category.ID, result.Error)
		return fmt.Errorf("could not update category: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Category with ID %d not found for update", category.ID)
		return domain.ErrNotFound
	}
	r.log.Infof("Category updated successfully with ID: %d", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if id <= 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return domain.ErrNotFound
	}
	result := dbFrom(ctx, r.db).Delete(&domain.Category{}, id)
	if result.Error != nil {
		r.log.Errorf("Failed to delete category ID %d: %v", id, result.Error)
		return fmt.Errorf("could not delete category: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return domain.ErrNotFound
	}
	r.log.Infof("Category deleted successfully with ID: %d", id)
	return nil
}

func (r *gormCategoryRepository) CountProducts(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Table(productCategoriesTable).Where("category_id = ?", id).Count(&n).Error
	if err != nil {
		r.log.Errorf("Failed to count products of category ID %d: %v", id, err)
		return 0, fmt.Errorf("could not count category references: %w", err)
	}
	return n, nil
}
