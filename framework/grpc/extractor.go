package grpcjwt

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/metadata"
)

// TokenExtractor extracts a token from incoming gRPC metadata. An error
// means a token was presented but malformed; an absent token is an empty
// string with no error.
type TokenExtractor func(ctx context.Context) (string, error)

// MetadataTokenExtractor extracts the token from the "authorization"
// metadata field, expecting a Bearer scheme.
func MetadataTokenExtractor(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", nil // No metadata, so no JWT.
	}

	values := md.Get("authorization")
	if len(values) == 0 || values[0] == "" {
		return "", nil
	}

	authParts := strings.Fields(values[0])
	if len(authParts) != 2 || !strings.EqualFold(authParts[0], "bearer") {
		return "", errors.New("authorization metadata format must be Bearer {token}")
	}

	return authParts[1], nil
}

// MetadataFieldTokenExtractor returns a TokenExtractor that reads the raw
// token from the given metadata field.
func MetadataFieldTokenExtractor(field string) TokenExtractor {
	return func(ctx context.Context) (string, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return "", nil
		}

		values := md.Get(field)
		if len(values) == 0 {
			return "", nil
		}
		return values[0], nil
	}
}

// MultiTokenExtractor returns a TokenExtractor that runs multiple
// extractors and takes the first one that does not return an empty token.
func MultiTokenExtractor(extractors ...TokenExtractor) TokenExtractor {
	return func(ctx context.Context) (string, error) {
		for _, ex := range extractors {
			token, err := ex(ctx)
			if err != nil {
				return "", err
			}
			if token != "" {
				return token, nil
			}
		}
		return "", nil
	}
}
