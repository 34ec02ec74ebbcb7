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

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/all", h.ListAllCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	req, err := parsePageRequest(c, domain.ASC)
	if err != nil {
		h.log.Warnf("Invalid paging parameters for list categories: %v", err)
		_ = c.Error(err)
		return
	}

	page, err := h.useCase.ListCategoriesPaged(c.Request.Context(), req)
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Categories page %d listed: %d of %d", page.Number, page.NumberOfElements, page.TotalElements)
	c.JSON(http.StatusOK, page)
}

func (h *CategoryHandler) ListAllCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list all categories: %v", err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Listed all %d categories", len(categories))
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		_ = c.Error(err)
		return
	}

	category, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Category retrieved successfully: ID %d", id)
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var in dto.CategoryDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		_ = c.Error(bindingError(err))
		return
	}

	created, err := h.useCase.CreateCategory(c.Request.Context(), in)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", in.Name, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", created.ID, created.Name)
	c.Header("Location", fmt.Sprintf("%s/%d", c.Request.URL.Path, created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("id"))
		_ = c.Error(err)
		return
	}

	var in dto.CategoryDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %d: %v", id, err)
		_ = c.Error(bindingError(err))
		return
	}

	updated, err := h.useCase.UpdateCategory(c.Request.Context(), id, in)
	if err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", id, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Category updated successfully: ID %d", id)
	c.JSON(http.StatusOK, updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("id"))
		_ = c.Error(err)
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete category ID %d: %v", id, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	c.Status(http.StatusNoContent)
}
