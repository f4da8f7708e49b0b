package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// encodeSegment serializes v to JSON and encodes the result as base64url
// without padding, the wire form of the claims segment.
func encodeSegment(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrJSONEncode, err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// decodeSegment reverses encodeSegment into the value pointed to by v.
// The three failure stages surface as distinct sentinel errors so callers
// can tell a corrupt encoding from a schema mismatch.
func decodeSegment(segment string, v any) error {
	data, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBase64Decode, err)
	}
	if !utf8.Valid(data) {
		return ErrUTF8Decode
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrJSONDecode, err)
	}
	return nil
}
