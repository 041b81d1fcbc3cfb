package interceptors

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

type contextKey struct{ name string }

var (
	principalIDKey      = contextKey{"principal_id"}
	sessionIDKey        = contextKey{"session_id"}
	credentialIDKey     = contextKey{"credential_id"}
	accessCredentialKey = contextKey{"access_credential"}
)

// Identity is what the auth interceptor learns from a validated access credential.
type Identity struct {
	PrincipalID  string
	SessionID    string
	CredentialID string
	// AccessCredential is the raw bearer value, kept for logout.
	AccessCredential string
}

// WithIdentity returns a context carrying id. Handlers read it via GetPrincipalID, GetSessionID,
// GetCredentialID and GetAccessCredential.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, principalIDKey, id.PrincipalID)
	ctx = context.WithValue(ctx, sessionIDKey, id.SessionID)
	ctx = context.WithValue(ctx, credentialIDKey, id.CredentialID)
	ctx = context.WithValue(ctx, accessCredentialKey, id.AccessCredential)
	return ctx
}

// GetPrincipalID returns the principal_id from context and true if set; otherwise "", false.
func GetPrincipalID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(principalIDKey).(string)
	return v, ok && v != ""
}

// GetSessionID returns the session_id from context and true if set; otherwise "", false.
func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionIDKey).(string)
	return v, ok && v != ""
}

// GetCredentialID returns the access credential id from context and true if set; otherwise "", false.
func GetCredentialID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(credentialIDKey).(string)
	return v, ok && v != ""
}

// GetAccessCredential returns the raw bearer credential from context and true if set; otherwise "", false.
func GetAccessCredential(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(accessCredentialKey).(string)
	return v, ok && v != ""
}

// ClientIP returns the client IP from gRPC metadata (x-forwarded-for, x-real-ip) or peer, or "unknown".
func ClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-forwarded-for"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				if i := strings.Index(s, ","); i > 0 {
					s = strings.TrimSpace(s[:i])
				}
				return s
			}
		}
		if vals := md.Get("x-real-ip"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				return s
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			return host
		}
		return p.Addr.String()
	}
	return "unknown"
}

// UserAgent returns the client's user-agent metadata, or "".
func UserAgent(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get("user-agent"); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
