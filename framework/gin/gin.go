// Package jwtginhandler adapts the JWT middleware to the Gin framework.
package jwtginhandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	jwtmiddleware "github.com/hmackit/go-jwt-hmac"
)

// DefaultClaimsKey is the Gin context key under which validated claims are
// stored.
const DefaultClaimsKey = "jwt"

var (
	ErrMissingClaims = errors.New("no JWT claims found in context")
	ErrInvalidClaims = errors.New("invalid JWT claims type")
)

type ginContextKey struct{}

type ginMiddlewareConfig struct {
	errorHandler      func(*gin.Context, error)
	contextKey        string
	middlewareOptions []jwtmiddleware.Option
}

// NewGinMiddleware builds a gin.HandlerFunc that authenticates requests
// with the given validator. The validator must be safe for concurrent use.
func NewGinMiddleware(validator jwtmiddleware.TokenValidator, opts ...Option) (gin.HandlerFunc, error) {
	config := &ginMiddlewareConfig{
		errorHandler: defaultGinErrorHandler,
		contextKey:   DefaultClaimsKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	middlewareOpts := append([]jwtmiddleware.Option{
		jwtmiddleware.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			c, ok := r.Context().Value(ginContextKey{}).(*gin.Context)
			if !ok || c == nil {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(err.Error()))
				return
			}
			config.errorHandler(c, err)
		}),
	}, config.middlewareOptions...)

	middleware, err := jwtmiddleware.New(validator, middlewareOpts...)
	if err != nil {
		return nil, err
	}

	return func(c *gin.Context) {
		// Make the gin context reachable from the error handler.
		ctx := context.WithValue(c.Request.Context(), ginContextKey{}, c)
		c.Request = c.Request.WithContext(ctx)

		authenticated := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authenticated = true
			c.Request = r

			if claims, err := jwtmiddleware.GetClaims[any](r.Context()); err == nil {
				c.Set(config.contextKey, claims)
			}

			c.Next()
		})

		middleware.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)

		if !authenticated {
			c.Abort()
		}
	}, nil
}

func defaultGinErrorHandler(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": err.Error(),
	})
}

// GetClaims extracts the validated claims from the Gin context.
func GetClaims[T any](c *gin.Context, contextKey string) (T, error) {
	var zero T

	if contextKey == "" {
		contextKey = DefaultClaimsKey
	}

	claims, exists := c.Get(contextKey)
	if !exists {
		return zero, ErrMissingClaims
	}

	typed, ok := claims.(T)
	if !ok {
		return zero, ErrInvalidClaims
	}
	return typed, nil
}
