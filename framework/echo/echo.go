// Package jwtechohandler adapts the JWT middleware to the Echo framework.
package jwtechohandler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	jwtmiddleware "github.com/hmackit/go-jwt-hmac"
)

// DefaultClaimsKey is the Echo context key under which validated claims
// are stored.
const DefaultClaimsKey = "jwt"

type echoMiddlewareConfig struct {
	errorHandler      func(echo.Context, error)
	contextKey        string
	middlewareOptions []jwtmiddleware.Option
}

// NewEchoMiddleware builds an echo.MiddlewareFunc that authenticates
// requests with the given validator. On success the claims are available
// both through the Echo context (see GetClaims) and through the request
// context.
func NewEchoMiddleware(validator jwtmiddleware.TokenValidator, opts ...Option) (echo.MiddlewareFunc, error) {
	config := &echoMiddlewareConfig{
		errorHandler: defaultEchoErrorHandler,
		contextKey:   DefaultClaimsKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	middlewareOpts := append([]jwtmiddleware.Option{
		jwtmiddleware.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			e := echo.New()
			c := e.NewContext(r, w)
			config.errorHandler(c, err)
		}),
	}, config.middlewareOptions...)

	middleware, err := jwtmiddleware.New(validator, middlewareOpts...)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var nextErr error
			authenticated := false

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				authenticated = true
				c.SetRequest(r)

				if claims, err := jwtmiddleware.GetClaims[any](r.Context()); err == nil {
					c.Set(config.contextKey, claims)
				}

				nextErr = next(c)
			})

			middleware.CheckJWT(handler).ServeHTTP(c.Response(), c.Request())

			if !authenticated {
				// The error handler already wrote the response.
				return nil
			}
			return nextErr
		}
	}, nil
}

func defaultEchoErrorHandler(c echo.Context, err error) {
	_ = c.JSON(http.StatusUnauthorized, map[string]string{
		"message": err.Error(),
	})
}

// GetClaims extracts the validated claims from the Echo context.
func GetClaims[T any](c echo.Context, contextKey string) (T, bool) {
	var zero T

	if contextKey == "" {
		contextKey = DefaultClaimsKey
	}

	claims, ok := c.Get(contextKey).(T)
	if !ok {
		return zero, false
	}
	return claims, true
}
