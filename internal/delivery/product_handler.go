package delivery

import (
	"fmt"
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/dto"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

// ListProducts supports the categoryId and name filters on top of paging.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	req, err := parsePageRequest(c, domain.DESC)
	if err != nil {
		h.log.Warnf("Invalid paging parameters for list products: %v", err)
		_ = c.Error(err)
		return
	}
	categoryID, err := queryInt(c, 0, "categoryId")
	if err != nil {
		h.log.Warnf("Invalid categoryId filter: %s", c.Query("categoryId"))
		_ = c.Error(err)
		return
	}
	filter := domain.ProductFilter{
		CategoryID: int64(categoryID),
		Name:       queryString(c, "name"),
	}

	page, err := h.useCase.ListProductsPaged(c.Request.Context(), filter, req)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Products page %d listed: %d of %d", page.Number, page.NumberOfElements, page.TotalElements)
	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		_ = c.Error(err)
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Product retrieved successfully: ID %d", id)
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in dto.ProductDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		_ = c.Error(bindingError(err))
		return
	}

	created, err := h.useCase.CreateProduct(c.Request.Context(), in)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", in.Name, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", created.ID, created.Name)
	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		_ = c.Error(err)
		return
	}

	var in dto.ProductDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		_ = c.Error(bindingError(err))
		return
	}

	updated, err := h.useCase.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		h.log.Errorf("Failed to update product ID %d: %v", id, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Product updated successfully: ID %d", id)
	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		_ = c.Error(err)
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	c.Status(http.StatusNoContent)
}
