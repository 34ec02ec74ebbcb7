package grpc

import (
	"context"

	"catalog_service/internal/dto"

	grpclib "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const serviceName = "catalog.v1.CatalogService"

// CatalogServer is the server API for the catalog service.
type CatalogServer interface {
	ListAllCategories(context.Context, *ListAllCategoriesRequest) (*CategoryList, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*CategoryPage, error)
	GetCategory(context.Context, *IDRequest) (*dto.CategoryDTO, error)
	CreateCategory(context.Context, *dto.CategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(context.Context, *UpdateCategoryRequest) (*dto.CategoryDTO, error)
	DeleteCategory(context.Context, *IDRequest) (*emptypb.Empty, error)

	ListProducts(context.Context, *ListProductsRequest) (*ProductPage, error)
	GetProduct(context.Context, *IDRequest) (*dto.ProductDTO, error)
	CreateProduct(context.Context, *dto.ProductDTO) (*dto.ProductDTO, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*dto.ProductDTO, error)
	DeleteProduct(context.Context, *IDRequest) (*emptypb.Empty, error)
}

func fullMethod(name string) string {
	return "/" + serviceName + "/" + name
}

// unary builds a method handler the way protoc-gen-go-grpc does: decode the
// request, then call through the interceptor chain if there is one.
func unary[Req, Resp any](name string, call func(CatalogServer, context.Context, *Req) (Resp, error)) grpclib.MethodDesc {
	return grpclib.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServer), ctx, in)
			}
			info := &grpclib.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CatalogServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpclib.MethodDesc{
		unary("ListAllCategories", CatalogServer.ListAllCategories),
		unary("ListCategories", CatalogServer.ListCategories),
		unary("GetCategory", CatalogServer.GetCategory),
		unary("CreateCategory", CatalogServer.CreateCategory),
		unary("UpdateCategory", CatalogServer.UpdateCategory),
		unary("DeleteCategory", CatalogServer.DeleteCategory),
		unary("ListProducts", CatalogServer.ListProducts),
		unary("GetProduct", CatalogServer.GetProduct),
		unary("CreateProduct", CatalogServer.CreateProduct),
		unary("UpdateProduct", CatalogServer.UpdateProduct),
		unary("DeleteProduct", CatalogServer.DeleteProduct),
	},
	Streams: []grpclib.StreamDesc{},
}

func RegisterCatalogServer(s grpclib.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&ServiceDesc, srv)
}
