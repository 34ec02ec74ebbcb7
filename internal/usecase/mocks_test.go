package usecase

import (
	"context"
	"io"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func (m *mockCategoryRepo) FindPage(ctx context.Context, req domain.PageRequest) ([]domain.Category, int64, error) {
	args := m.Called(ctx, req)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Get(1).(int64), args.Error(2)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryRepo) CountProducts(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindPage(ctx context.Context, filter domain.ProductFilter, req domain.PageRequest) ([]domain.Product, int64, error) {
	args := m.Called(ctx, filter, req)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// fakeTx runs fn inline and records which kind of transaction was asked for.
type fakeTx struct {
	writes, reads int
}

func (f *fakeTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.writes++
	return fn(ctx)
}

func (f *fakeTx) InReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.reads++
	return fn(ctx)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
