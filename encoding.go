package guid

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EncodeToHex encodes the GUID to a hexadecimal string without hyphens,
// in the digit order of its canonical text.
func (g Guid) EncodeToHex() string {
	b := g.bigEndian()
	return hex.EncodeToString(b[:])
}

// EncodeToBase64 encodes the binary form of the GUID to a base64 string
// (URL-safe, no padding)
func (g Guid) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(g.Bytes())
}

// EncodeToBase64Std encodes the binary form of the GUID to a standard base64
// string
func (g Guid) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(g.Bytes())
}

// DecodeFromHex decodes 32 hexadecimal digits, without separators, to a GUID
func DecodeFromHex(s string) (Guid, error) {
	if len(s) != 2*Size {
		return Nil, &ParseError{Kind: InvalidLength, Input: s}
	}
	return Parse(s)
}

// DecodeFromBase64 decodes a base64 string to GUID (URL-safe encoding)
func DecodeFromBase64(s string) (Guid, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Nil, fmt.Errorf("guid: decode base64: %w", err)
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to GUID
func DecodeFromBase64Std(s string) (Guid, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Nil, fmt.Errorf("guid: decode base64: %w", err)
	}
	return FromBytes(data)
}

// FromBytes creates a GUID from its 16-byte mixed-endian binary form
func FromBytes(b []byte) (Guid, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	return fromMixedEndian(b), nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) Guid {
	g, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return g
}
