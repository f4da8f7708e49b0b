package jwtechohandler

import (
	"github.com/labstack/echo/v4"

	jwtmiddleware "github.com/hmackit/go-jwt-hmac"
)

// Option configures the Echo adapter.
type Option func(*echoMiddlewareConfig)

// WithErrorHandler sets a custom error handler invoked with the Echo
// context when authentication fails.
func WithErrorHandler(handler func(echo.Context, error)) Option {
	return func(config *echoMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithContextKey sets the Echo context key under which claims are stored.
func WithContextKey(key string) Option {
	return func(config *echoMiddlewareConfig) {
		config.contextKey = key
	}
}

// WithTokenExtractor sets a custom token extractor.
func WithTokenExtractor(extractor jwtmiddleware.TokenExtractor) Option {
	return func(config *echoMiddlewareConfig) {
		config.middlewareOptions = append(config.middlewareOptions, jwtmiddleware.WithTokenExtractor(extractor))
	}
}

// WithMiddlewareOptions forwards additional options to the underlying
// JWTMiddleware.
func WithMiddlewareOptions(opts ...jwtmiddleware.Option) Option {
	return func(config *echoMiddlewareConfig) {
		config.middlewareOptions = append(config.middlewareOptions, opts...)
	}
}
