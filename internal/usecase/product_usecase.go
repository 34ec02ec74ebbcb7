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

var productSortFields = []string{"id", "name", "price", "date"}

type ProductUseCase interface {
	ListProductsPaged(ctx context.Context, filter domain.ProductFilter, req domain.PageRequest) (domain.Page[dto.ProductDTO], error)
	GetProductByID(ctx context.Context, id int64) (dto.ProductDTO, error)
	CreateProduct(ctx context.Context, in dto.ProductDTO) (dto.ProductDTO, error)
	UpdateProduct(ctx context.Context, id int64, in dto.ProductDTO) (dto.ProductDTO, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	tx           domain.Transactor
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, tx domain.Transactor, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		tx:           tx,
		log:          logger,
	}
}

func validateProduct(in dto.ProductDTO) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Validation("Product name cannot be empty")
	}
	if in.Price.IsNegative() {
		return domain.Validation("Product price cannot be negative")
	}
	return nil
}

func (uc *productUseCase) ListProductsPaged(ctx context.Context, filter domain.ProductFilter, req domain.PageRequest) (domain.Page[dto.ProductDTO], error) {
	if err := req.Validate(productSortFields...); err != nil {
		uc.log.Warnf("Use Case: Rejected product page request %+v: %v", req, err)
		return domain.Page[dto.ProductDTO]{}, err
	}
	if filter.CategoryID < 0 {
		return domain.Page[dto.ProductDTO]{}, domain.Validation("Invalid category ID %d", filter.CategoryID)
	}

	uc.log.Infof("Use Case: Attempting to list products page %d (size %d, sort %s %s, filter %+v)", req.Page, req.Size, req.Sort, req.Direction, filter)
	var (
		products []domain.Product
		total    int64
	)
	err := uc.tx.InReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		products, total, err = uc.productRepo.FindPage(ctx, filter, req)
		return err
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products page %d: %v", req.Page, err)
		return domain.Page[dto.ProductDTO]{}, fmt.Errorf("could not retrieve products: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d of %d products", len(products), total)
	return domain.MapPage(domain.NewPage(products, req, total), func(p domain.Product) dto.ProductDTO {
		return dto.FromProduct(&p)
	}), nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id int64) (dto.ProductDTO, error) {
	uc.log.Infof("Use Case: Attempting to get product with ID %d", id)

	var product *domain.Product
	err := uc.tx.InReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		product, err = uc.productRepo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return dto.ProductDTO{}, err
	}

	uc.log.Infof("Use Case: Product retrieved successfully for ID %d", id)
	return dto.FromProduct(product), nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, in dto.ProductDTO) (dto.ProductDTO, error) {
	if err := validateProduct(in); err != nil {
		uc.log.Warnf("Use Case: Attempted to create invalid product '%s': %v", in.Name, err)
		return dto.ProductDTO{}, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", in.Name)
	product := &domain.Product{}
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		if err := dto.ApplyProduct(ctx, in, product, uc.categoryRepo); err != nil {
			return err
		}
		return uc.productRepo.Save(ctx, product)
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to create product '%s': %v", in.Name, err)
		return dto.ProductDTO{}, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", product.Name, product.ID)
	return dto.FromProduct(product), nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, in dto.ProductDTO) (dto.ProductDTO, error) {
	if err := validateProduct(in); err != nil {
		uc.log.Warnf("Use Case: Attempted to update product ID %d with invalid data: %v", id, err)
		return dto.ProductDTO{}, err
	}

	uc.log.Infof("Use Case: Attempting to update product ID %d", id)
	var product *domain.Product
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		product, err = uc.productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundID(id)
			}
			return err
		}
		if err := dto.ApplyProduct(ctx, in, product, uc.categoryRepo); err != nil {
			return err
		}
		if err := uc.productRepo.Save(ctx, product); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundID(id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to update product ID %d: %v", id, err)
		return dto.ProductDTO{}, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", id)
	return dto.FromProduct(product), nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	uc.log.Infof("Use Case: Attempting to delete product ID %d", id)

	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		if err := uc.productRepo.DeleteByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFoundID(id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}
