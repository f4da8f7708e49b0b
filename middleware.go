package jwtmiddleware

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// TokenValidator validates a raw token string and returns the claims it
// carries. *token.Validator satisfies this interface.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (any, error)
}

// JWTMiddleware wraps an http.Handler chain with JWT authentication.
type JWTMiddleware struct {
	validator           TokenValidator
	errorHandler        ErrorHandler
	tokenExtractor      TokenExtractor
	credentialsOptional bool
	validateOnOptions   bool
	exclusionURLHandler func(r *http.Request) bool
	logger              Logger
	tracer              Tracer
	metrics             Metrics
}

// New constructs a JWTMiddleware around the given validator.
//
// Example:
//
//	v, err := token.NewValidator([]byte("secret"), token.HS256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	middleware, err := jwtmiddleware.New(v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.Handle("/api", middleware.CheckJWT(yourHandler))
func New(validator TokenValidator, opts ...Option) (*JWTMiddleware, error) {
	if validator == nil {
		return nil, ErrValidatorNil
	}

	m := &JWTMiddleware{
		validator:         validator,
		errorHandler:      DefaultErrorHandler,
		tokenExtractor:    AuthHeaderTokenExtractor,
		validateOnOptions: true,
		tracer:            &NoopTracer{},
		metrics:           &NoopMetrics{},
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	return m, nil
}

// CheckJWT returns a handler that authenticates the request before calling
// next. On success the validated claims are placed in the request context;
// on failure the configured ErrorHandler writes the response and next is
// never called.
func (m *JWTMiddleware) CheckJWT(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.exclusionURLHandler != nil && m.exclusionURLHandler(r) {
			if m.logger != nil {
				m.logger.Debug("skipping JWT validation for excluded URL",
					"method", r.Method,
					"path", r.URL.Path)
			}
			next.ServeHTTP(w, r)
			return
		}

		// If we don't validate on OPTIONS and this is OPTIONS
		// then continue onto next without validating.
		if !m.validateOnOptions && r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		span := m.tracer.StartSpan("jwtmiddleware.check_jwt")
		defer span.Finish()

		tokenString, err := m.tokenExtractor(r)
		if err != nil {
			// This is not ErrJWTMissing because an error here means that
			// the tokenExtractor had an error and not that the token was
			// missing.
			if m.logger != nil {
				m.logger.Error("failed to extract token from request",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path)
			}
			m.metrics.IncCounter(MetricAuthFailure, map[string]string{"reason": "extraction_error"})
			span.SetTag("auth_status", "extraction_error")
			m.errorHandler(w, r, fmt.Errorf("error extracting token: %w", err))
			return
		}

		if tokenString == "" {
			if m.credentialsOptional {
				span.SetTag("auth_status", "optional_no_token")
				next.ServeHTTP(w, r)
				return
			}

			m.metrics.IncCounter(MetricAuthFailure, map[string]string{"reason": "missing_token"})
			span.SetTag("auth_status", "missing_token")
			m.errorHandler(w, r, ErrJWTMissing)
			return
		}

		start := time.Now()
		claims, err := m.validator.ValidateToken(r.Context(), tokenString)
		m.metrics.ObserveHistogram(MetricAuthDuration, time.Since(start).Seconds(), map[string]string{"method": r.Method})

		if err != nil {
			if m.logger != nil {
				m.logger.Warn("JWT validation failed",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path)
			}
			m.metrics.IncCounter(MetricAuthFailure, map[string]string{"reason": "invalid_token"})
			span.SetTag("auth_status", "invalid_token")
			m.errorHandler(w, r, &invalidError{details: err})
			return
		}

		if m.logger != nil {
			m.logger.Debug("JWT validation successful, setting claims in context")
		}
		m.metrics.IncCounter(MetricAuthSuccess, map[string]string{"method": r.Method})
		span.SetTag("auth_status", "success")

		r = r.Clone(SetClaims(r.Context(), claims))
		next.ServeHTTP(w, r)
	})
}
