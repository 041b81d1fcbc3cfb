package interceptors

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ServiceCredentialHeader is the metadata key a trusted upstream service sends its credential in.
const ServiceCredentialHeader = "x-service-credential"

// CallerVerifier checks a service credential.
type CallerVerifier interface {
	Verify(credential string) bool
}

// TrustedCallerUnary returns a unary server interceptor that admits calls to trustedMethods only
// when metadata carries a service credential accepted by verifier. With a nil verifier every call
// to a trusted method is rejected. Other methods pass through untouched.
func TrustedCallerUnary(verifier CallerVerifier, trustedMethods map[string]bool, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !trustedMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		cred := serviceCredential(ctx)
		if verifier == nil || cred == "" || !verifier.Verify(cred) {
			logger.WarnContext(ctx, "untrusted caller rejected",
				slog.String("method", info.FullMethod),
				slog.String("client_ip", ClientIP(ctx)),
				slog.Bool("credential_present", cred != ""))
			return nil, status.Error(codes.Unauthenticated, "unauthenticated")
		}
		return handler(ctx, req)
	}
}

func serviceCredential(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(ServiceCredentialHeader)
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}
