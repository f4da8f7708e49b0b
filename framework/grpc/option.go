package grpcjwt

import (
	jwtmiddleware "github.com/hmackit/go-jwt-hmac"
)

// Option configures the JWTInterceptor. Options returning an error abort
// construction.
type Option func(*JWTInterceptor) error

// WithTokenExtractor sets the function used to extract the JWT from
// incoming metadata.
//
// Default: MetadataTokenExtractor.
func WithTokenExtractor(e TokenExtractor) Option {
	return func(i *JWTInterceptor) error {
		if e == nil {
			return jwtmiddleware.ErrTokenExtractorNil
		}
		i.tokenExtractor = e
		return nil
	}
}

// WithCredentialsOptional sets whether requests without a token are let
// through unauthenticated.
//
// Default: false.
func WithCredentialsOptional(value bool) Option {
	return func(i *JWTInterceptor) error {
		i.credentialsOptional = value
		return nil
	}
}

// WithExcludedMethods configures full method names, e.g.
// "/health.v1.Health/Check", to exclude from JWT validation.
func WithExcludedMethods(methods []string) Option {
	methodSet := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		methodSet[m] = struct{}{}
	}
	return func(i *JWTInterceptor) error {
		i.exclusionChecker = func(method string) bool {
			_, ok := methodSet[method]
			return ok
		}
		return nil
	}
}

// WithExclusionChecker sets a custom predicate deciding which methods skip
// JWT validation.
func WithExclusionChecker(checker func(method string) bool) Option {
	return func(i *JWTInterceptor) error {
		i.exclusionChecker = checker
		return nil
	}
}

// WithLogger sets an optional logger for the interceptor.
func WithLogger(logger jwtmiddleware.Logger) Option {
	return func(i *JWTInterceptor) error {
		if logger == nil {
			return jwtmiddleware.ErrLoggerNil
		}
		i.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used to record a span per authentication.
func WithTracer(tracer jwtmiddleware.Tracer) Option {
	return func(i *JWTInterceptor) error {
		if tracer == nil {
			return jwtmiddleware.ErrTracerNil
		}
		i.tracer = tracer
		return nil
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics jwtmiddleware.Metrics) Option {
	return func(i *JWTInterceptor) error {
		if metrics == nil {
			return jwtmiddleware.ErrMetricsNil
		}
		i.metrics = metrics
		return nil
	}
}
