package jwtginhandler

import (
	"github.com/gin-gonic/gin"

	jwtmiddleware "github.com/hmackit/go-jwt-hmac"
)

// Option configures the Gin adapter.
type Option func(*ginMiddlewareConfig)

// WithErrorHandler sets a custom error handler invoked with the Gin
// context when authentication fails.
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(config *ginMiddlewareConfig) {
		config.errorHandler = handler
	}
}

// WithContextKey sets the Gin context key under which claims are stored.
func WithContextKey(key string) Option {
	return func(config *ginMiddlewareConfig) {
		config.contextKey = key
	}
}

// WithTokenExtractor sets a custom token extractor.
func WithTokenExtractor(extractor jwtmiddleware.TokenExtractor) Option {
	return func(config *ginMiddlewareConfig) {
		config.middlewareOptions = append(config.middlewareOptions, jwtmiddleware.WithTokenExtractor(extractor))
	}
}

// WithMiddlewareOptions forwards additional options to the underlying
// JWTMiddleware.
func WithMiddlewareOptions(opts ...jwtmiddleware.Option) Option {
	return func(config *ginMiddlewareConfig) {
		config.middlewareOptions = append(config.middlewareOptions, opts...)
	}
}
