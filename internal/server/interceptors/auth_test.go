package interceptors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/advancia-platform/credential-lifecycle/internal/session/service"
)

// fakeValidator accepts exactly one token.
type fakeValidator struct {
	valid string
	err   error
}

func (f *fakeValidator) ValidateAccessCredential(_ context.Context, credential string) (service.Principal, error) {
	if f.err != nil {
		return service.Principal{}, f.err
	}
	if credential != f.valid {
		return service.Principal{}, service.ErrUnauthorized
	}
	return service.Principal{PrincipalID: "principal-1", SessionID: "session-1", CredentialID: "cred-1"}, nil
}

// touchRecorder reports touched session ids on a channel.
type touchRecorder struct {
	touched chan string
	err     error
}

func (r *touchRecorder) TouchActivity(_ context.Context, sessionID string) error {
	r.touched <- sessionID
	return r.err
}

func withBearer(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "success", nil
}

func TestAuthUnary_PublicMethod(t *testing.T) {
	interceptor := AuthUnary(&fakeValidator{valid: "good"}, nil, map[string]bool{"/test.Service/Public": true}, nil)
	resp, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{FullMethod: "/test.Service/Public"}, okHandler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v, want %q", resp, "success")
	}
}

func TestAuthUnary_Rejections(t *testing.T) {
	interceptor := AuthUnary(&fakeValidator{valid: "good"}, nil, nil, nil)
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"no metadata", context.Background()},
		{"no authorization", metadata.NewIncomingContext(context.Background(), metadata.Pairs("x", "y"))},
		{"not bearer", metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc"))},
		{"empty bearer", metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "))},
		{"invalid token", withBearer("bad")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			_, err := interceptor(tt.ctx, "request", &grpc.UnaryServerInfo{FullMethod: "/test.Service/Protected"},
				func(ctx context.Context, req interface{}) (interface{}, error) {
					called = true
					return nil, nil
				})
			st, _ := status.FromError(err)
			if st.Code() != codes.Unauthenticated || st.Message() != "unauthenticated" {
				t.Errorf("status = %v %q, want Unauthenticated", st.Code(), st.Message())
			}
			if called {
				t.Error("handler must not run")
			}
		})
	}
}

func TestAuthUnary_ValidTokenSetsIdentityAndTouches(t *testing.T) {
	rec := &touchRecorder{touched: make(chan string, 1)}
	interceptor := AuthUnary(&fakeValidator{valid: "good"}, rec, nil, nil)

	var got Identity
	_, err := interceptor(withBearer("good"), "request", &grpc.UnaryServerInfo{FullMethod: "/test.Service/Protected"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			got.PrincipalID, _ = GetPrincipalID(ctx)
			got.SessionID, _ = GetSessionID(ctx)
			got.CredentialID, _ = GetCredentialID(ctx)
			got.AccessCredential, _ = GetAccessCredential(ctx)
			return "ok", nil
		})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	want := Identity{PrincipalID: "principal-1", SessionID: "session-1", CredentialID: "cred-1", AccessCredential: "good"}
	if got != want {
		t.Errorf("identity = %+v, want %+v", got, want)
	}
	select {
	case id := <-rec.touched:
		if id != "session-1" {
			t.Errorf("touched %q, want session-1", id)
		}
	case <-time.After(time.Second):
		t.Fatal("TouchActivity was not called")
	}
}

func TestAuthUnary_TouchFailureDoesNotFailCall(t *testing.T) {
	rec := &touchRecorder{touched: make(chan string, 1), err: fmt.Errorf("touch: %w", service.ErrStoreUnavailable)}
	interceptor := AuthUnary(&fakeValidator{valid: "good"}, rec, nil, nil)
	resp, err := interceptor(withBearer("good"), "request", &grpc.UnaryServerInfo{FullMethod: "/test.Service/Protected"}, okHandler)
	if err != nil || resp != "success" {
		t.Errorf("interceptor: %v, %v", resp, err)
	}
	<-rec.touched
}

func TestAuthUnary_StoreUnavailable(t *testing.T) {
	interceptor := AuthUnary(&fakeValidator{err: fmt.Errorf("get session: %w: %w", service.ErrStoreUnavailable, errors.New("timeout"))}, nil, nil, nil)
	_, err := interceptor(withBearer("good"), "request", &grpc.UnaryServerInfo{FullMethod: "/test.Service/Protected"}, okHandler)
	if status.Code(err) != codes.Unavailable {
		t.Errorf("code = %v, want Unavailable", status.Code(err))
	}
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"BEARER   abc  ", "abc"},
		{"Token abc", ""},
		{"Bear", ""},
	}
	for _, tt := range tests {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", tt.value))
		if got := extractBearer(ctx); got != tt.want {
			t.Errorf("extractBearer(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
