package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"
	"catalog_service/internal/dto"

	"github.com/sirupsen/logrus"
)

var categorySortFields = []string{"id", "name"}

type CategoryUseCase interface {
	ListCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	ListCategoriesPaged(ctx context.Context, req domain.PageRequest) (domain.Page[dto.CategoryDTO], error)
	GetCategoryByID(ctx context.Context, id int64) (dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, in dto.CategoryDTO) (dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id int64, in dto.CategoryDTO) (dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	tx           domain.Transactor
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, tx domain.Transactor, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		tx:           tx,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	uc.log.Info("Use Case: Attempting to list all categories")

	var categories []domain.Category
	err := uc.tx.InReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		categories, err = uc.categoryRepo.FindAll(ctx)
		return err
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return dto.FromCategories(categories), nil
}

func (uc *categoryUseCase) ListCategoriesPaged(ctx context.Context, req domain.PageRequest) (domain.Page[dto.CategoryDTO], error) {
	if err := req.Validate(categorySortFields...); err != nil {
		uc.log.Warnf("Use Case: Rejected category page request %+v: %v", req, err)
		return domain.Page[dto.CategoryDTO]{}, err
	}

	uc.log.Infof("Use Case: Attempting to list categories page %d (size %d, sort %s %s)", req.Page, req.Size, req.Sort, req.Direction)
	var (
		categories []domain.Category
		total      int64
	)
	err := uc.tx.InReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		categories, total, err = uc.categoryRepo.FindPage(ctx, req)
		return err
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories page %d: %v", req.Page, err)
		return domain.Page[dto.CategoryDTO]{}, fmt.Errorf("could not retrieve categories: %w", err)
	}

	return domain.MapPage(domain.NewPage(categories, req, total), func(c domain.Category) dto.CategoryDTO {
		return dto.FromCategory(&c)
	}), nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int64) (dto.CategoryDTO, error) {
	uc.log.Infof("Use Case: Attempting to get category with ID %d", id)

	var category *domain.Category
	err := uc.tx.InReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		category, err = uc.categoryRepo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return dto.CategoryDTO{}, err
	}

	uc.log.Infof("Use Case: Category retrieved successfully for ID %d", id)
	return dto.FromCategory(category), nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, in dto.CategoryDTO) (dto.CategoryDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return dto.CategoryDTO{}, domain.Validation("Category name cannot be empty")
	}

	uc.log.Infof("Use Case: Attempting to create category with name '%s'", in.Name)
	category := &domain.Category{}
	dto.ApplyCategory(in, category)

	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		return uc.categoryRepo.Save(ctx, category)
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", in.Name, err)
		return dto.CategoryDTO{}, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", category.Name, category.ID)
	return dto.FromCategory(category), nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int64, in dto.CategoryDTO) (dto.CategoryDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		uc.log.Warnf("Use Case: Attempted update for ID %d with empty name", id)
		return dto.CategoryDTO{}, domain.Validation("Category name cannot be empty")
	}

	uc.log.Infof("Use Case: Attempting to update category ID %d", id)
	var category *domain.Category
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		category, err = uc.categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundID(id)
			}
			return err
		}
		dto.ApplyCategory(in, category)
		if err := uc.categoryRepo.Save(ctx, category); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundID(id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return dto.CategoryDTO{}, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %d", id)
	return dto.FromCategory(category), nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)

	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundID(id)
			}
			return err
		}

		refs, err := uc.categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			uc.log.Warnf("Use Case: Category ID %d is still referenced by %d products", id, refs)
			return domain.ErrConflict
		}

		if err := uc.categoryRepo.DeleteByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundID(id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return nil
}
