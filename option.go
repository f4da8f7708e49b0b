package jwtmiddleware

import (
	"errors"
	"net/http"
)

// Option configures the JWTMiddleware. Options returning an error abort
// construction.
type Option func(*JWTMiddleware) error

// Sentinel errors for configuration validation.
var (
	ErrValidatorNil      = errors.New("validator cannot be nil")
	ErrErrorHandlerNil   = errors.New("errorHandler cannot be nil")
	ErrTokenExtractorNil = errors.New("tokenExtractor cannot be nil")
	ErrExclusionURLsNil  = errors.New("exclusion URLs list cannot be empty")
	ErrLoggerNil         = errors.New("logger cannot be nil")
	ErrTracerNil         = errors.New("tracer cannot be nil")
	ErrMetricsNil        = errors.New("metrics cannot be nil")
)

// WithCredentialsOptional sets whether requests without a token are let
// through unauthenticated. If true, an absent token is not an error; a
// present but invalid token still is.
//
// Default: false (credentials required).
func WithCredentialsOptional(value bool) Option {
	return func(m *JWTMiddleware) error {
		m.credentialsOptional = value
		return nil
	}
}

// WithValidateOnOptions sets whether OPTIONS requests have their JWT
// validated.
//
// Default: true.
func WithValidateOnOptions(value bool) Option {
	return func(m *JWTMiddleware) error {
		m.validateOnOptions = value
		return nil
	}
}

// WithErrorHandler sets the handler called when errors occur during JWT
// validation. See the ErrorHandler type for the contract.
//
// Default: DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *JWTMiddleware) error {
		if h == nil {
			return ErrErrorHandlerNil
		}
		m.errorHandler = h
		return nil
	}
}

// WithTokenExtractor sets the function used to extract the JWT from the
// request.
//
// Default: AuthHeaderTokenExtractor.
func WithTokenExtractor(e TokenExtractor) Option {
	return func(m *JWTMiddleware) error {
		if e == nil {
			return ErrTokenExtractorNil
		}
		m.tokenExtractor = e
		return nil
	}
}

// WithExclusionURLs configures URL patterns to exclude from JWT
// validation. Entries are compared against both the full request URL and
// the path alone.
func WithExclusionURLs(exclusions []string) Option {
	return func(m *JWTMiddleware) error {
		if len(exclusions) == 0 {
			return ErrExclusionURLsNil
		}
		m.exclusionURLHandler = func(r *http.Request) bool {
			requestFullURL := r.URL.String()
			requestPath := r.URL.Path
			for _, exclusion := range exclusions {
				if requestFullURL == exclusion || requestPath == exclusion {
					return true
				}
			}
			return false
		}
		return nil
	}
}

// WithLogger sets an optional logger for the middleware. The interface is
// compatible with log/slog.Logger.
//
// Default: no logging.
func WithLogger(logger Logger) Option {
	return func(m *JWTMiddleware) error {
		if logger == nil {
			return ErrLoggerNil
		}
		m.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used to record a span per validation.
//
// Default: NoopTracer.
func WithTracer(tracer Tracer) Option {
	return func(m *JWTMiddleware) error {
		if tracer == nil {
			return ErrTracerNil
		}
		m.tracer = tracer
		return nil
	}
}

// WithMetrics sets the metrics recorder used to count validation outcomes
// and observe validation latency.
//
// Default: NoopMetrics.
func WithMetrics(metrics Metrics) Option {
	return func(m *JWTMiddleware) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		m.metrics = metrics
		return nil
	}
}
