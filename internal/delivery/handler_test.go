package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListCategories_Defaults(t *testing.T) {
	router, cuc, _ := testRouter()
	want := domain.PageRequest{Page: 0, Size: 12, Sort: "name", Direction: domain.ASC}
	page := domain.NewPage([]dto.CategoryDTO{{ID: 1, Name: "Books"}}, want, 1)
	cuc.On("ListCategoriesPaged", mock.Anything, want).Return(page, nil)

	rec := do(t, router, http.MethodGet, "/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Page[dto.CategoryDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.TotalElements)
	assert.Equal(t, "Books", got.Content[0].Name)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListCategories_LegacyParameters(t *testing.T) {
	router, cuc, _ := testRouter()
	want := domain.PageRequest{Page: 1, Size: 5, Sort: "id", Direction: domain.DESC}
	cuc.On("ListCategoriesPaged", mock.Anything, want).Return(domain.NewPage[dto.CategoryDTO](nil, want, 3), nil)

	rec := do(t, router, http.MethodGet, "/categories?page=1&linesPerPage=5&orderBy=id&direction=desc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	cuc.AssertExpectations(t)
}

func TestListCategories_InvalidDirection(t *testing.T) {
	router, cuc, _ := testRouter()

	rec := do(t, router, http.MethodGet, "/categories?direction=sideways", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "/categories", body.Path)
	assert.Contains(t, body.Error, "sideways")
	assert.False(t, body.Timestamp.IsZero())
	cuc.AssertNotCalled(t, "ListCategoriesPaged", mock.Anything, mock.Anything)
}

func TestListCategories_InvalidPageNumber(t *testing.T) {
	router, _, _ := testRouter()

	rec := do(t, router, http.MethodGet, "/categories?page=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAllCategories(t *testing.T) {
	router, cuc, _ := testRouter()
	cuc.On("ListCategories", mock.Anything).Return([]dto.CategoryDTO{{ID: 1, Name: "Books"}, {ID: 2, Name: "Electronics"}}, nil)

	rec := do(t, router, http.MethodGet, "/categories/all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Books"},{"id":2,"name":"Electronics"}]`, rec.Body.String())
}

func TestGetCategory_NotFound(t *testing.T) {
	router, cuc, _ := testRouter()
	cuc.On("GetCategoryByID", mock.Anything, int64(1000)).Return(nil, domain.ErrNotFound)

	rec := do(t, router, http.MethodGet, "/categories/1000", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, 404, body.Status)
	assert.Equal(t, "Entity Not Found!", body.Error)
	assert.Equal(t, "/categories/1000", body.Path)
}

func TestGetCategory_InvalidID(t *testing.T) {
	router, cuc, _ := testRouter()

	rec := do(t, router, http.MethodGet, "/categories/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	cuc.AssertNotCalled(t, "GetCategoryByID", mock.Anything, mock.Anything)
}

func TestGetCategory_NegativeIDReachesUseCase(t *testing.T) {
	router, cuc, _ := testRouter()
	cuc.On("GetCategoryByID", mock.Anything, int64(-1)).Return(nil, domain.NotFoundID(-1))

	rec := do(t, router, http.MethodGet, "/categories/-1", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ID [-1] Not Found!", decodeError(t, rec).Error)
	cuc.AssertExpectations(t)
}

func TestCreateCategory_CreatedWithLocation(t *testing.T) {
	router, cuc, _ := testRouter()
	cuc.On("CreateCategory", mock.Anything, dto.CategoryDTO{Name: "Garden"}).Return(dto.CategoryDTO{ID: 4, Name: "Garden"}, nil)

	rec := do(t, router, http.MethodPost, "/categories", `{"name":"Garden"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/categories/4", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":4,"name":"Garden"}`, rec.Body.String())
}

func TestCreateCategory_InvalidBody(t *testing.T) {
	router, cuc, _ := testRouter()

	missing := do(t, router, http.MethodPost, "/categories", `{"id":3}`)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Contains(t, decodeError(t, missing).Error, "Name")

	malformed := do(t, router, http.MethodPost, "/categories", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, malformed.Code)

	cuc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestUpdateCategory_UsesPathID(t *testing.T) {
	router, cuc, _ := testRouter()
	cuc.On("UpdateCategory", mock.Anything, int64(1), dto.CategoryDTO{ID: 9, Name: "Novels"}).Return(dto.CategoryDTO{ID: 1, Name: "Novels"}, nil)
	cuc.On("UpdateCategory", mock.Anything, int64(1000), mock.Anything).Return(nil, domain.NotFoundID(1000))

	ok := do(t, router, http.MethodPut, "/categories/1", `{"id":9,"name":"Novels"}`)
	require.Equal(t, http.StatusOK, ok.Code)
	assert.JSONEq(t, `{"id":1,"name":"Novels"}`, ok.Body.String())

	missing := do(t, router, http.MethodPut, "/categories/1000", `{"name":"Novels"}`)
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "ID [1000] Not Found!", decodeError(t, missing).Error)
}

func TestDeleteCategory(t *testing.T) {
	router, cuc, _ := testRouter()
	cuc.On("DeleteCategory", mock.Anything, int64(4)).Return(nil)
	cuc.On("DeleteCategory", mock.Anything, int64(1)).Return(domain.ErrConflict)
	cuc.On("DeleteCategory", mock.Anything, int64(1000)).Return(domain.NotFoundID(1000))

	assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, "/categories/4", "").Code)

	conflict := do(t, router, http.MethodDelete, "/categories/1", "")
	require.Equal(t, http.StatusBadRequest, conflict.Code)
	assert.Equal(t, "DataBase Integrity Violation!", decodeError(t, conflict).Error)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, "/categories/1000", "").Code)
}

func TestUnclassifiedErrorIsInternal(t *testing.T) {
	router, cuc, _ := testRouter()
	cuc.On("GetCategoryByID", mock.Anything, int64(1)).Return(nil, errors.New("pq: connection refused"))

	rec := do(t, router, http.MethodGet, "/categories/1", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestListProducts_DefaultsAndFilters(t *testing.T) {
	router, _, puc := testRouter()
	want := domain.PageRequest{Page: 0, Size: 12, Sort: "name", Direction: domain.DESC}
	filter := domain.ProductFilter{CategoryID: 3, Name: "gamer"}
	puc.On("ListProductsPaged", mock.Anything, filter, want).Return(domain.NewPage[dto.ProductDTO](nil, want, 0), nil)

	rec := do(t, router, http.MethodGet, "/products?categoryId=3&name=gamer", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	puc.AssertExpectations(t)
}

func TestListProducts_SpringSort(t *testing.T) {
	router, _, puc := testRouter()
	want := domain.PageRequest{Page: 2, Size: 4, Sort: "price", Direction: domain.ASC}
	puc.On("ListProductsPaged", mock.Anything, domain.ProductFilter{}, want).Return(domain.NewPage[dto.ProductDTO](nil, want, 0), nil)

	rec := do(t, router, http.MethodGet, "/products?page=2&size=4&sort=price,asc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	puc.AssertExpectations(t)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	router, _, puc := testRouter()
	puc.On("CreateProduct", mock.Anything, mock.AnythingOfType("dto.ProductDTO")).
		Return(nil, domain.NotFound("Category ID [%d] Not Found!", 99))

	rec := do(t, router, http.MethodPost, "/products", `{"name":"Phone","price":800,"categories":[{"id":99}]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category ID [99] Not Found!", decodeError(t, rec).Error)
}

func TestDeleteProduct(t *testing.T) {
	router, _, puc := testRouter()
	puc.On("DeleteProduct", mock.Anything, int64(1)).Return(nil)
	puc.On("DeleteProduct", mock.Anything, int64(1000)).Return(domain.NotFoundID(1000))

	assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, "/products/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, "/products/1000", "").Code)
}

func TestIndexPageAndHealth(t *testing.T) {
	router, _, _ := testRouter()

	index := do(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Body.String(), "/categories/all")

	health := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
}

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("dial tcp: refused") }

func TestHealth_DatabaseDown(t *testing.T) {
	router := NewRouter(RouterConfig{
		Categories: NewCategoryHandler(&mockCategoryUseCase{}, quiet()),
		Products:   NewProductHandler(&mockProductUseCase{}, quiet()),
		DB:         failingPinger{},
		Logger:     quiet(),
	})

	rec := do(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "DOWN")
}
