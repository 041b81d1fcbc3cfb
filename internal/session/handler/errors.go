package handler

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/advancia-platform/credential-lifecycle/internal/session/service"
)

// toStatus maps manager errors to gRPC status. Every authentication failure gets the same
// code and message so callers cannot tell which check failed.
func (s *Server) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case service.IsAuthFailure(err):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, service.ErrInvalidParameters):
		return status.Error(codes.InvalidArgument, "invalid parameters")
	case errors.Is(err, service.ErrConcurrentRotation):
		return status.Error(codes.Aborted, "refresh credential already rotated")
	case errors.Is(err, service.ErrStoreUnavailable):
		s.logger.ErrorContext(ctx, "session store unavailable", slog.String("method", method), slog.Any("error", err))
		return status.Error(codes.Unavailable, "service unavailable")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		s.logger.ErrorContext(ctx, "session rpc failed", slog.String("method", method), slog.Any("error", err))
		return status.Error(codes.Internal, "internal error")
	}
}
