package usecase

import (
	"context"
	"testing"
	"time"

	"catalog_service/internal/domain"
	"catalog_service/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductUC() (*productUseCase, *mockProductRepo, *mockCategoryRepo, *fakeTx) {
	pRepo := &mockProductRepo{}
	cRepo := &mockCategoryRepo{}
	tx := &fakeTx{}
	uc := NewProductUseCase(pRepo, cRepo, tx, quietLogger()).(*productUseCase)
	return uc, pRepo, cRepo, tx
}

func phoneDTO(categoryIDs ...int64) dto.ProductDTO {
	refs := make([]dto.CategoryDTO, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		refs = append(refs, dto.CategoryDTO{ID: id})
	}
	return dto.ProductDTO{
		Name:        "Phone",
		Description: "Good Phone",
		Price:       decimal.NewFromInt(800),
		ImgURL:      "https://img.com/img.png",
		Date:        time.Date(2022, 4, 16, 4, 0, 0, 0, time.UTC),
		Categories:  refs,
	}
}

func TestProductUseCase_ListProductsPaged(t *testing.T) {
	uc, pRepo, _, tx := newProductUC()
	req := domain.PageRequest{Page: 0, Size: 12, Sort: "name", Direction: domain.ASC}
	filter := domain.ProductFilter{Name: "pc"}
	pRepo.On("FindPage", mock.Anything, filter, req).Return([]domain.Product{
		{ID: 4, Name: "PC Gamer", Price: decimal.NewFromInt(1200)},
		{ID: 5, Name: "PC Gamer Alfa", Price: decimal.NewFromInt(1250)},
	}, int64(2), nil)

	page, err := uc.ListProductsPaged(context.Background(), filter, req)

	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "PC Gamer", page.Content[0].Name)
	assert.Empty(t, page.Content[0].Categories)
	assert.True(t, page.First)
	assert.True(t, page.Last)
	assert.Equal(t, 1, tx.reads)
}

func TestProductUseCase_ListProductsPaged_Invalid(t *testing.T) {
	uc, pRepo, _, _ := newProductUC()

	_, err := uc.ListProductsPaged(context.Background(), domain.ProductFilter{}, domain.PageRequest{Size: 12, Sort: "stock", Direction: domain.ASC})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.ListProductsPaged(context.Background(), domain.ProductFilter{CategoryID: -1}, domain.PageRequest{Size: 12, Sort: "name", Direction: domain.ASC})
	assert.ErrorIs(t, err, domain.ErrValidation)

	pRepo.AssertNotCalled(t, "FindPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUseCase_GetProductByID(t *testing.T) {
	uc, pRepo, _, _ := newProductUC()
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(&domain.Product{
		ID:         1,
		Name:       "The Lord of the Rings",
		Categories: []domain.Category{{ID: 1, Name: "Books"}},
	}, nil)
	pRepo.On("FindByID", mock.Anything, int64(1000)).Return(nil, domain.ErrNotFound)

	got, err := uc.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, []dto.CategoryDTO{{ID: 1, Name: "Books"}}, got.Categories)

	_, err = uc.GetProductByID(context.Background(), 1000)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_CreateProduct(t *testing.T) {
	uc, pRepo, cRepo, tx := newProductUC()
	cRepo.On("FindByID", mock.Anything, int64(2)).Return(&domain.Category{ID: 2, Name: "Electronics"}, nil)
	pRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Product")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Product).ID = 26
	}).Return(nil)

	in := phoneDTO(2)
	in.ID = 500
	out, err := uc.CreateProduct(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(26), out.ID)
	assert.Equal(t, "Phone", out.Name)
	assert.Equal(t, []dto.CategoryDTO{{ID: 2, Name: "Electronics"}}, out.Categories)
	assert.Equal(t, 1, tx.writes)
}

func TestProductUseCase_CreateProduct_UnknownCategory(t *testing.T) {
	uc, pRepo, cRepo, _ := newProductUC()
	cRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := uc.CreateProduct(context.Background(), phoneDTO(99))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Category ID [99] Not Found!", domain.MessageOf(err))
	pRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductUseCase_CreateProduct_Validation(t *testing.T) {
	uc, pRepo, _, _ := newProductUC()

	noName := phoneDTO()
	noName.Name = ""
	_, err := uc.CreateProduct(context.Background(), noName)
	assert.ErrorIs(t, err, domain.ErrValidation)

	negative := phoneDTO()
	negative.Price = decimal.NewFromInt(-1)
	_, err = uc.CreateProduct(context.Background(), negative)
	assert.ErrorIs(t, err, domain.ErrValidation)

	pRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductUseCase_UpdateProduct(t *testing.T) {
	uc, pRepo, cRepo, _ := newProductUC()
	stored := &domain.Product{ID: 1, Name: "The Lord of the Rings", Categories: []domain.Category{{ID: 1, Name: "Books"}}}
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(stored, nil)
	cRepo.On("FindByID", mock.Anything, int64(2)).Return(&domain.Category{ID: 2, Name: "Electronics"}, nil)
	pRepo.On("Save", mock.Anything, stored).Return(nil)

	out, err := uc.UpdateProduct(context.Background(), 1, phoneDTO(2))

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Phone", out.Name)
	assert.Equal(t, []dto.CategoryDTO{{ID: 2, Name: "Electronics"}}, out.Categories)
}

func TestProductUseCase_UpdateProduct_NotFound(t *testing.T) {
	uc, pRepo, _, _ := newProductUC()
	pRepo.On("FindByID", mock.Anything, int64(1000)).Return(nil, domain.ErrNotFound)

	_, err := uc.UpdateProduct(context.Background(), 1000, phoneDTO())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "ID [1000] Not Found!", domain.MessageOf(err))
}

func TestProductUseCase_UpdateProduct_UnknownCategoryLeavesProduct(t *testing.T) {
	uc, pRepo, cRepo, _ := newProductUC()
	stored := &domain.Product{ID: 1, Name: "The Lord of the Rings", Categories: []domain.Category{{ID: 1, Name: "Books"}}}
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(stored, nil)
	cRepo.On("FindByID", mock.Anything, int64(2)).Return(&domain.Category{ID: 2, Name: "Electronics"}, nil)
	cRepo.On("FindByID", mock.Anything, int64(77)).Return(nil, domain.ErrNotFound)

	_, err := uc.UpdateProduct(context.Background(), 1, phoneDTO(2, 77))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "The Lord of the Rings", stored.Name)
	assert.Equal(t, []int64{1}, stored.CategoryIDs())
	pRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductUseCase_DeleteProduct(t *testing.T) {
	uc, pRepo, _, _ := newProductUC()
	pRepo.On("DeleteByID", mock.Anything, int64(1)).Return(nil)
	pRepo.On("DeleteByID", mock.Anything, int64(1000)).Return(domain.ErrNotFound)

	require.NoError(t, uc.DeleteProduct(context.Background(), 1))

	err := uc.DeleteProduct(context.Background(), 1000)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "ID [1000] Not Found!", domain.MessageOf(err))
}
