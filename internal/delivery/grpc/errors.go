package grpc

import (
	"catalog_service/internal/domain"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return status.Error(codes.NotFound, domain.MessageOf(err))
	case domain.KindConflict:
		return status.Error(codes.FailedPrecondition, domain.MessageOf(err))
	case domain.KindValidation:
		return status.Error(codes.InvalidArgument, domain.MessageOf(err))
	default:
		return status.Error(codes.Internal, "Internal Server Error")
	}
}
