// Package grpcjwt adapts the JWT middleware to gRPC servers as unary and
// stream interceptors.
package grpcjwt

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	jwtmiddleware "github.com/hmackit/go-jwt-hmac"
)

// JWTInterceptor authenticates gRPC requests before they reach the
// service handler.
type JWTInterceptor struct {
	validator           jwtmiddleware.TokenValidator
	tokenExtractor      TokenExtractor
	credentialsOptional bool
	exclusionChecker    func(method string) bool
	logger              jwtmiddleware.Logger
	tracer              jwtmiddleware.Tracer
	metrics             jwtmiddleware.Metrics
}

// New constructs a JWTInterceptor around the given validator.
func New(validator jwtmiddleware.TokenValidator, opts ...Option) (*JWTInterceptor, error) {
	if validator == nil {
		return nil, jwtmiddleware.ErrValidatorNil
	}

	i := &JWTInterceptor{
		validator:      validator,
		tokenExtractor: MetadataTokenExtractor,
		tracer:         &jwtmiddleware.NoopTracer{},
		metrics:        &jwtmiddleware.NoopMetrics{},
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// authenticate extracts and validates the token and returns a context
// carrying the claims. Extraction and validation failures map to
// codes.Unauthenticated.
func (i *JWTInterceptor) authenticate(ctx context.Context, method string) (context.Context, error) {
	if i.exclusionChecker != nil && i.exclusionChecker(method) {
		return ctx, nil
	}

	span := i.tracer.StartSpan("grpcjwt.authenticate")
	defer span.Finish()
	span.SetTag("grpc_method", method)

	tokenString, err := i.tokenExtractor(ctx)
	if err != nil {
		if i.logger != nil {
			i.logger.Error("failed to extract token from metadata", "method", method, "error", err)
		}
		i.metrics.IncCounter(jwtmiddleware.MetricAuthFailure, map[string]string{"reason": "extraction_error"})
		span.SetTag("auth_status", "extraction_error")
		return nil, status.Errorf(codes.Unauthenticated, "error extracting token: %v", err)
	}

	if tokenString == "" {
		if i.credentialsOptional {
			span.SetTag("auth_status", "optional_no_token")
			return ctx, nil
		}
		i.metrics.IncCounter(jwtmiddleware.MetricAuthFailure, map[string]string{"reason": "missing_token"})
		span.SetTag("auth_status", "missing_token")
		return nil, status.Error(codes.Unauthenticated, "JWT is missing")
	}

	start := time.Now()
	claims, err := i.validator.ValidateToken(ctx, tokenString)
	i.metrics.ObserveHistogram(jwtmiddleware.MetricAuthDuration, time.Since(start).Seconds(), map[string]string{"method": method})

	if err != nil {
		if i.logger != nil {
			i.logger.Warn("JWT validation failed", "method", method, "error", err)
		}
		i.metrics.IncCounter(jwtmiddleware.MetricAuthFailure, map[string]string{"reason": "invalid_token"})
		span.SetTag("auth_status", "invalid_token")
		return nil, status.Errorf(codes.Unauthenticated, "invalid JWT: %v", err)
	}

	i.metrics.IncCounter(jwtmiddleware.MetricAuthSuccess, map[string]string{"method": method})
	span.SetTag("auth_status", "success")

	return jwtmiddleware.SetClaims(ctx, claims), nil
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that
// authenticates each request.
func (i *JWTInterceptor) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		authCtx, err := i.authenticate(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(authCtx, req)
	}
}

// StreamServerInterceptor returns a grpc.StreamServerInterceptor that
// authenticates each stream before the first message is handled.
func (i *JWTInterceptor) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		authCtx, err := i.authenticate(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: authCtx})
	}
}

// wrappedServerStream overrides the stream context with the authenticated
// one.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
