package interceptors

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/advancia-platform/credential-lifecycle/internal/session/service"
)

const bearerPrefix = "bearer "

// touchTimeout bounds the background activity write started for each authenticated call.
const touchTimeout = 2 * time.Second

// AccessValidator checks a bearer access credential.
type AccessValidator interface {
	ValidateAccessCredential(ctx context.Context, credential string) (service.Principal, error)
}

// ActivityToucher records session activity.
type ActivityToucher interface {
	TouchActivity(ctx context.Context, sessionID string) error
}

// AuthUnary returns a unary server interceptor that validates the Bearer access credential from
// gRPC metadata and sets the caller's identity in context for protected RPCs.
// publicMethods is the set of full method names that do not require a Bearer token.
// When toucher is non-nil each authenticated call records session activity in the background;
// failures there never fail the RPC.
func AuthUnary(validator AccessValidator, toucher ActivityToucher, publicMethods map[string]bool, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		token := extractBearer(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "unauthenticated")
		}

		p, err := validator.ValidateAccessCredential(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrStoreUnavailable) {
				logger.ErrorContext(ctx, "access validation failed", slog.String("method", info.FullMethod), slog.Any("error", err))
				return nil, status.Error(codes.Unavailable, "service unavailable")
			}
			return nil, status.Error(codes.Unauthenticated, "unauthenticated")
		}

		ctx = WithIdentity(ctx, Identity{
			PrincipalID:      p.PrincipalID,
			SessionID:        p.SessionID,
			CredentialID:     p.CredentialID,
			AccessCredential: token,
		})
		if toucher != nil {
			go touch(context.WithoutCancel(ctx), toucher, p.SessionID, logger)
		}
		return handler(ctx, req)
	}
}

func touch(ctx context.Context, toucher ActivityToucher, sessionID string, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, touchTimeout)
	defer cancel()
	if err := toucher.TouchActivity(ctx, sessionID); err != nil && !service.IsAuthFailure(err) {
		logger.WarnContext(ctx, "touch activity failed", slog.String("session_id", sessionID), slog.Any("error", err))
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
