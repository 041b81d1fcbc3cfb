package interceptors

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingUnary(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{"ok", nil, "INFO", "OK"},
		{"client error", status.Error(codes.Unauthenticated, "unauthenticated"), "WARN", "Unauthenticated"},
		{"server error", status.Error(codes.Unavailable, "down"), "ERROR", "Unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			interceptor := LoggingUnary(logger, nil)
			_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/M"},
				func(ctx context.Context, req interface{}) (interface{}, error) { return nil, tt.err })
			if err != tt.err {
				t.Errorf("error changed: %v", err)
			}
			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("log line: %v (%q)", err, buf.String())
			}
			if line["level"] != tt.wantLevel || line["code"] != tt.wantCode || line["method"] != "/svc/M" {
				t.Errorf("log line = %v", line)
			}
		})
	}
}

func TestLoggingUnary_SkipMethods(t *testing.T) {
	var buf bytes.Buffer
	interceptor := LoggingUnary(slog.New(slog.NewJSONHandler(&buf, nil)), map[string]bool{"/grpc.health.v1.Health/Check": true})
	_, _ = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, okHandler)
	if buf.Len() != 0 {
		t.Errorf("skipped method logged: %s", buf.String())
	}
}
