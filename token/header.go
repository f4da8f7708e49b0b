package token

// Header is the fixed JWT header carried by every token. The type is
// always "JWT"; only the algorithm varies.
type Header struct {
	Typ string    `json:"typ"`
	Alg Algorithm `json:"alg"`
}

// NewHeader returns the header for the given algorithm.
func NewHeader(alg Algorithm) Header {
	return Header{Typ: "JWT", Alg: alg}
}

// MarshalText returns the base64url encoding of the canonical header JSON
// for the header's algorithm.
func (h Header) MarshalText() ([]byte, error) {
	entry, ok := algorithms[h.Alg]
	if !ok {
		return nil, ErrUnsupportedAlgorithm
	}
	return []byte(entry.header), nil
}

// UnmarshalText matches text against the known header encodings. Anything
// else, including syntactically valid header JSON with reordered fields,
// fails with ErrInvalidToken.
func (h *Header) UnmarshalText(text []byte) error {
	alg, ok := headerAlgorithms[string(text)]
	if !ok {
		return ErrInvalidToken
	}
	*h = NewHeader(alg)
	return nil
}
