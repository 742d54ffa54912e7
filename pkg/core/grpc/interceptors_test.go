package grpc

import (
	"context"
	"errors"
	"testing"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"parse", mdwerror.New("bad term").WithCode(mdwerror.CodeParse), codes.InvalidArgument},
		{"equation", mdwerror.New("no solution").WithCode(mdwerror.CodeEquation), codes.InvalidArgument},
		{"isolation", mdwerror.New("cannot isolate").WithCode(mdwerror.CodeIsolation), codes.InvalidArgument},
		{"invalid input", mdwerror.New("missing field").WithCode(mdwerror.CodeInvalidInput), codes.InvalidArgument},
		{"not found", mdwerror.New("unknown").WithCode(mdwerror.CodeNotFound), codes.NotFound},
		{"database", mdwerror.New("locked").WithCode(mdwerror.CodeDatabaseError), codes.Internal},
		{"plain", errors.New("boom"), codes.Internal},
		{"status", status.Error(codes.Unimplemented, "nope"), codes.Unimplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorInterceptor(t *testing.T) {
	interceptor := ErrorInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/algebralab.v1.Lab/Divide"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, mdwerror.New("invalid term \"3y\"").WithCode(mdwerror.CodeParse)
	})
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.InvalidArgument || st.Message() != "invalid term \"3y\"" {
		t.Errorf("status = %v %q", st.Code(), st.Message())
	}

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Errorf("passthrough = %v, %v", resp, err)
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/test"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Errorf("code = %v, want Internal", status.Code(err))
	}
}

func TestGetRequestID(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("empty context request id = %q", got)
	}

	ctx := WithRequestID(context.Background(), "abc")
	if got := GetRequestID(ctx); got != "abc" {
		t.Errorf("GetRequestID() = %q, want abc", got)
	}

	md := metadata.Pairs(RequestIDHeader, "from-header")
	ctx = metadata.NewIncomingContext(context.Background(), md)
	if got := GetRequestID(ctx); got != "from-header" {
		t.Errorf("GetRequestID() = %q, want from-header", got)
	}
}
