package grpc

import (
	"context"

	"catalog_service/internal/domain"
	"catalog_service/internal/dto"
	"catalog_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/emptypb"
)

type CatalogHandler struct {
	categoryUseCase usecase.CategoryUseCase
	productUseCase  usecase.ProductUseCase
	log             *logrus.Logger
}

var _ CatalogServer = (*CatalogHandler)(nil)

func NewCatalogHandler(cuc usecase.CategoryUseCase, puc usecase.ProductUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		categoryUseCase: cuc,
		productUseCase:  puc,
		log:             logger,
	}
}

func (h *CatalogHandler) ListAllCategories(ctx context.Context, _ *ListAllCategoriesRequest) (*CategoryList, error) {
	h.log.Info("gRPC Handler: Received ListAllCategories request")

	cats, err := h.categoryUseCase.ListCategories(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListAllCategories use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &CategoryList{Categories: cats}, nil
}

func (h *CatalogHandler) ListCategories(ctx context.Context, req *ListCategoriesRequest) (*CategoryPage, error) {
	h.log.Infof("gRPC Handler: Received ListCategories request: %+v", req.PageQuery)

	pr, err := req.toPageRequest(domain.ASC)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	page, err := h.categoryUseCase.ListCategoriesPaged(ctx, pr)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCategories use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &page, nil
}

func (h *CatalogHandler) GetCategory(ctx context.Context, req *IDRequest) (*dto.CategoryDTO, error) {
	h.log.Infof("gRPC Handler: Received GetCategory request: ID=%d", req.ID)

	cat, err := h.categoryUseCase.GetCategoryByID(ctx, req.ID)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetCategory use case error for ID %d: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &cat, nil
}

func (h *CatalogHandler) CreateCategory(ctx context.Context, req *dto.CategoryDTO) (*dto.CategoryDTO, error) {
	h.log.Infof("gRPC Handler: Received CreateCategory request: Name=%s", req.Name)

	created, err := h.categoryUseCase.CreateCategory(ctx, *req)
	if err != nil {
		h.log.Errorf("gRPC Handler: CreateCategory use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Category created successfully: ID=%d", created.ID)
	return &created, nil
}

func (h *CatalogHandler) UpdateCategory(ctx context.Context, req *UpdateCategoryRequest) (*dto.CategoryDTO, error) {
	h.log.Infof("gRPC Handler: Received UpdateCategory request: ID=%d, NewName=%s", req.ID, req.Category.Name)

	updated, err := h.categoryUseCase.UpdateCategory(ctx, req.ID, req.Category)
	if err != nil {
		h.log.Errorf("gRPC Handler: UpdateCategory use case error for ID %d: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &updated, nil
}

func (h *CatalogHandler) DeleteCategory(ctx context.Context, req *IDRequest) (*emptypb.Empty, error) {
	h.log.Infof("gRPC Handler: Received DeleteCategory request: ID=%d", req.ID)

	if err := h.categoryUseCase.DeleteCategory(ctx, req.ID); err != nil {
		h.log.Warnf("gRPC Handler: DeleteCategory use case error for ID %d: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Category deleted successfully: ID=%d", req.ID)
	return &emptypb.Empty{}, nil
}

func (h *CatalogHandler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ProductPage, error) {
	h.log.Infof("gRPC Handler: Received ListProducts request: %+v", req)

	pr, err := req.toPageRequest(domain.DESC)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	filter := domain.ProductFilter{CategoryID: req.CategoryID, Name: req.Name}
	page, err := h.productUseCase.ListProductsPaged(ctx, filter, pr)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &page, nil
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *IDRequest) (*dto.ProductDTO, error) {
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%d", req.ID)

	prod, err := h.productUseCase.GetProductByID(ctx, req.ID)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %d: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &prod, nil
}

func (h *CatalogHandler) CreateProduct(ctx context.Context, req *dto.ProductDTO) (*dto.ProductDTO, error) {
	h.log.Infof("gRPC Handler: Received CreateProduct request: Name=%s", req.Name)

	created, err := h.productUseCase.CreateProduct(ctx, *req)
	if err != nil {
		h.log.Errorf("gRPC Handler: CreateProduct use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Product created successfully: ID=%d", created.ID)
	return &created, nil
}

func (h *CatalogHandler) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*dto.ProductDTO, error) {
	h.log.Infof("gRPC Handler: Received UpdateProduct request: ID=%d", req.ID)

	updated, err := h.productUseCase.UpdateProduct(ctx, req.ID, req.Product)
	if err != nil {
		h.log.Errorf("gRPC Handler: UpdateProduct use case error for ID %d: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &updated, nil
}

func (h *CatalogHandler) DeleteProduct(ctx context.Context, req *IDRequest) (*emptypb.Empty, error) {
	h.log.Infof("gRPC Handler: Received DeleteProduct request: ID=%d", req.ID)

	if err := h.productUseCase.DeleteProduct(ctx, req.ID); err != nil {
		h.log.Warnf("gRPC Handler: DeleteProduct use case error for ID %d: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Product deleted successfully: ID=%d", req.ID)
	return &emptypb.Empty{}, nil
}
