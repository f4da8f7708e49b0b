package jwtmiddleware

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/hmackit/go-jwt-hmac/token"
)

func Test_New(t *testing.T) {
	t.Parallel()

	validator, err := token.NewValidator([]byte("secret"), token.HS256)
	require.NoError(t, err)

	t.Run("it errors when the validator is nil", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, ErrValidatorNil)
	})

	t.Run("it errors on nil option values", func(t *testing.T) {
		for _, opt := range []Option{
			WithErrorHandler(nil),
			WithTokenExtractor(nil),
			WithExclusionURLs(nil),
			WithLogger(nil),
			WithTracer(nil),
			WithMetrics(nil),
		} {
			_, err := New(validator, opt)
			require.Error(t, err)
		}
	})

	t.Run("it builds with defaults", func(t *testing.T) {
		m, err := New(validator)
		require.NoError(t, err)
		require.NotNil(t, m)
	})
}

func Test_CheckJWT(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	validator, err := token.NewValidator(secret, token.HS256)
	require.NoError(t, err)

	validToken, err := token.Encode(map[string]any{"sub": "b@b.com"}, secret, token.HS256)
	require.NoError(t, err)

	foreignToken, err := token.Encode(map[string]any{"sub": "b@b.com"}, []byte("other"), token.HS256)
	require.NoError(t, err)

	wantClaims := &map[string]any{"sub": "b@b.com"}

	testCases := []struct {
		name           string
		options        []Option
		method         string
		path           string
		authHeader     string
		wantClaims     any
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "it can successfully validate a token",
			method:         http.MethodGet,
			authHeader:     "Bearer " + validToken,
			wantClaims:     wantClaims,
			wantStatusCode: http.StatusOK,
			wantBody:       `{"message":"Authenticated."}`,
		},
		{
			name:           "it fails to validate if the token is missing",
			method:         http.MethodGet,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"message":"JWT is missing."}`,
		},
		{
			name: "it continues without claims when credentials are optional",
			options: []Option{
				WithCredentialsOptional(true),
			},
			method:         http.MethodGet,
			wantStatusCode: http.StatusOK,
			wantBody:       `{"message":"Authenticated."}`,
		},
		{
			name:           "it fails to validate a token signed with another secret",
			method:         http.MethodGet,
			authHeader:     "Bearer " + foreignToken,
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"message":"JWT is invalid."}`,
		},
		{
			name:           "it fails to validate a malformed token",
			method:         http.MethodGet,
			authHeader:     "Bearer bad",
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `{"message":"JWT is invalid."}`,
		},
		{
			name:           "it validates on OPTIONS by default",
			method:         http.MethodOptions,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"message":"JWT is missing."}`,
		},
		{
			name: "it skips validation on OPTIONS if validateOnOptions is set to false",
			options: []Option{
				WithValidateOnOptions(false),
			},
			method:         http.MethodOptions,
			wantStatusCode: http.StatusOK,
			wantBody:       `{"message":"Authenticated."}`,
		},
		{
			name: "it skips validation for excluded URLs",
			options: []Option{
				WithExclusionURLs([]string{"/public"}),
			},
			method:         http.MethodGet,
			path:           "/public",
			wantStatusCode: http.StatusOK,
			wantBody:       `{"message":"Authenticated."}`,
		},
		{
			name: "it fails validation if there are errors with the token extractor",
			options: []Option{
				WithTokenExtractor(func(r *http.Request) (string, error) {
					return "", errors.New("token extractor error")
				}),
			},
			method:         http.MethodGet,
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"message":"Something went wrong while checking the JWT."}`,
		},
		{
			name: "it calls the custom error handler when token validation fails",
			options: []Option{
				WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusForbidden)
					_, _ = w.Write(fmt.Appendf(nil, `{"message":"Custom error: %s"}`, err.Error()))
				}),
			},
			method:         http.MethodGet,
			wantStatusCode: http.StatusForbidden,
			wantBody:       `{"message":"Custom error: jwt missing"}`,
		},
		{
			name: "it can use a custom token extractor",
			options: []Option{
				WithTokenExtractor(ParameterTokenExtractor("token")),
			},
			method:         http.MethodGet,
			path:           "/?token=" + validToken,
			wantClaims:     wantClaims,
			wantStatusCode: http.StatusOK,
			wantBody:       `{"message":"Authenticated."}`,
		},
		{
			name: "it validates with observability configured",
			options: []Option{
				WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
				WithTracer(NewOpenTelemetryTracer(noop.NewTracerProvider().Tracer("test"))),
				WithMetrics(NewPrometheusMetricsWithRegisterer(prometheus.NewRegistry())),
			},
			method:         http.MethodGet,
			authHeader:     "Bearer " + validToken,
			wantClaims:     wantClaims,
			wantStatusCode: http.StatusOK,
			wantBody:       `{"message":"Authenticated."}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			middleware, err := New(validator, tc.options...)
			require.NoError(t, err)

			var gotClaims any
			handler := middleware.CheckJWT(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, err := GetClaims[*map[string]any](r.Context()); err == nil {
					gotClaims = claims
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"message":"Authenticated."}`))
			}))

			path := tc.path
			if path == "" {
				path = "/"
			}
			request := httptest.NewRequest(tc.method, path, nil)
			if tc.authHeader != "" {
				request.Header.Set("Authorization", tc.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tc.wantStatusCode, recorder.Code)
			assert.Equal(t, tc.wantBody, recorder.Body.String())

			if diff := cmp.Diff(tc.wantClaims, gotClaims); diff != "" {
				t.Errorf("claims mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
