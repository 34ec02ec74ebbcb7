package delivery

import (
	"context"
	"io"

	"catalog_service/internal/domain"
	"catalog_service/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type mockCategoryUseCase struct {
	mock.Mock
}

func (m *mockCategoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]dto.CategoryDTO)
	return out, args.Error(1)
}

func (m *mockCategoryUseCase) ListCategoriesPaged(ctx context.Context, req domain.PageRequest) (domain.Page[dto.CategoryDTO], error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(domain.Page[dto.CategoryDTO])
	return out, args.Error(1)
}

func (m *mockCategoryUseCase) GetCategoryByID(ctx context.Context, id int64) (dto.CategoryDTO, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(dto.CategoryDTO)
	return out, args.Error(1)
}

func (m *mockCategoryUseCase) CreateCategory(ctx context.Context, in dto.CategoryDTO) (dto.CategoryDTO, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(dto.CategoryDTO)
	return out, args.Error(1)
}

func (m *mockCategoryUseCase) UpdateCategory(ctx context.Context, id int64, in dto.CategoryDTO) (dto.CategoryDTO, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(dto.CategoryDTO)
	return out, args.Error(1)
}

func (m *mockCategoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductUseCase struct {
	mock.Mock
}

func (m *mockProductUseCase) ListProductsPaged(ctx context.Context, filter domain.ProductFilter, req domain.PageRequest) (domain.Page[dto.ProductDTO], error) {
	args := m.Called(ctx, filter, req)
	out, _ := args.Get(0).(domain.Page[dto.ProductDTO])
	return out, args.Error(1)
}

func (m *mockProductUseCase) GetProductByID(ctx context.Context, id int64) (dto.ProductDTO, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(dto.ProductDTO)
	return out, args.Error(1)
}

func (m *mockProductUseCase) CreateProduct(ctx context.Context, in dto.ProductDTO) (dto.ProductDTO, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(dto.ProductDTO)
	return out, args.Error(1)
}

func (m *mockProductUseCase) UpdateProduct(ctx context.Context, id int64, in dto.ProductDTO) (dto.ProductDTO, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(dto.ProductDTO)
	return out, args.Error(1)
}

func (m *mockProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func testRouter() (*gin.Engine, *mockCategoryUseCase, *mockProductUseCase) {
	gin.SetMode(gin.TestMode)
	logger := quiet()

	cuc := &mockCategoryUseCase{}
	puc := &mockProductUseCase{}
	router := NewRouter(RouterConfig{
		Categories: NewCategoryHandler(cuc, logger),
		Products:   NewProductHandler(puc, logger),
		Logger:     logger,
	})
	return router, cuc, puc
}

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
