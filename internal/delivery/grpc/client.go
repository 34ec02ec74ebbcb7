package grpc

import (
	"context"

	"catalog_service/internal/dto"

	grpclib "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// CatalogClient calls the catalog service over a connection using the JSON
// codec.
type CatalogClient struct {
	cc grpclib.ClientConnInterface
}

func NewCatalogClient(cc grpclib.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *CatalogClient, method string, in any, opts ...grpclib.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) ListAllCategories(ctx context.Context, opts ...grpclib.CallOption) (*CategoryList, error) {
	return invoke[CategoryList](ctx, c, "ListAllCategories", &ListAllCategoriesRequest{}, opts...)
}

func (c *CatalogClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpclib.CallOption) (*CategoryPage, error) {
	return invoke[CategoryPage](ctx, c, "ListCategories", in, opts...)
}

func (c *CatalogClient) GetCategory(ctx context.Context, id int64, opts ...grpclib.CallOption) (*dto.CategoryDTO, error) {
	return invoke[dto.CategoryDTO](ctx, c, "GetCategory", &IDRequest{ID: id}, opts...)
}

func (c *CatalogClient) CreateCategory(ctx context.Context, in *dto.CategoryDTO, opts ...grpclib.CallOption) (*dto.CategoryDTO, error) {
	return invoke[dto.CategoryDTO](ctx, c, "CreateCategory", in, opts...)
}

func (c *CatalogClient) UpdateCategory(ctx context.Context, in *UpdateCategoryRequest, opts ...grpclib.CallOption) (*dto.CategoryDTO, error) {
	return invoke[dto.CategoryDTO](ctx, c, "UpdateCategory", in, opts...)
}

func (c *CatalogClient) DeleteCategory(ctx context.Context, id int64, opts ...grpclib.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c, "DeleteCategory", &IDRequest{ID: id}, opts...)
}

func (c *CatalogClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpclib.CallOption) (*ProductPage, error) {
	return invoke[ProductPage](ctx, c, "ListProducts", in, opts...)
}

func (c *CatalogClient) GetProduct(ctx context.Context, id int64, opts ...grpclib.CallOption) (*dto.ProductDTO, error) {
	return invoke[dto.ProductDTO](ctx, c, "GetProduct", &IDRequest{ID: id}, opts...)
}

func (c *CatalogClient) CreateProduct(ctx context.Context, in *dto.ProductDTO, opts ...grpclib.CallOption) (*dto.ProductDTO, error) {
	return invoke[dto.ProductDTO](ctx, c, "CreateProduct", in, opts...)
}

func (c *CatalogClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpclib.CallOption) (*dto.ProductDTO, error) {
	return invoke[dto.ProductDTO](ctx, c, "UpdateProduct", in, opts...)
}

func (c *CatalogClient) DeleteProduct(ctx context.Context, id int64, opts ...grpclib.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c, "DeleteProduct", &IDRequest{ID: id}, opts...)
}
