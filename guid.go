package guid

import (
	"bytes"
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// Guid is a 128-bit Globally Unique Identifier split into the four fields of
// the Windows GUID structure.
//
// The integer fields hold numeric values; their binary form (see Bytes) is
// little-endian while Data4 is kept in the order it is written in text.
type Guid struct {
	Data1 uint32  // TimeLow
	Data2 uint16  // TimeMid
	Data3 uint16  // TimeHigh and version
	Data4 [8]byte // clock sequence high, low, then the 6 byte node
}

// Nil is the nil GUID (all zeros)
var Nil Guid

// Identifiable is implemented by types that carry an associated GUID, such as
// the methods emitted by guidgen for //guid:attach directives.
type Identifiable interface {
	GUID() Guid
}

// String returns the canonical string representation of the GUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (g Guid) String() string {
	var buf [36]byte
	encodeHex(buf[:], g.bigEndian())
	return string(buf[:])
}

// MSString returns the uppercase representation in curly braces used by the
// Windows registry.
func (g Guid) MSString() string {
	return "{" + strings.ToUpper(g.String()) + "}"
}

// URN returns the GUID as a urn:uuid: URN.
func (g Guid) URN() string {
	return "urn:uuid:" + g.String()
}

// encodeHex encodes the big-endian value to its canonical hex representation
func encodeHex(dst []byte, b [Size]byte) {
	hex.Encode(dst[0:8], b[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], b[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], b[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], b[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], b[10:16])
}

// Parse parses a GUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//
// Double quotes and whitespace anywhere in s are ignored, so an already
// quoted literal is accepted. Digits are case-insensitive.
//
// The length is checked before the digits: an input that is both too short
// and contains a non-hex character fails with InvalidLength.
func Parse(s string) (Guid, error) {
	digits := normalize(s)
	if len(digits) != 2*Size {
		return Nil, &ParseError{
			Kind:  InvalidLength,
			Input: s,
			Err:   fmt.Errorf("got %d hex digits, want %d", len(digits), 2*Size),
		}
	}

	var b [Size]byte
	n, err := hex.Decode(b[:], digits)
	if err != nil {
		pos := bytes.IndexFunc(digits, func(r rune) bool { return !isHexDigit(r) })
		return Nil, &ParseError{
			Kind:  InvalidHexDigit,
			Input: s,
			Err:   fmt.Errorf("digit %d: %w", pos, err),
		}
	}
	if n != Size {
		return Nil, &ParseError{
			Kind:  InternalInvariant,
			Input: s,
			Err:   fmt.Errorf("decoded %d bytes, want %d", n, Size),
		}
	}
	return fromBigEndian(&b), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) Guid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// normalize drops quotes, whitespace, the urn prefix, braces and hyphens.
func normalize(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			out = append(out, c)
		}
	}

	out = bytes.TrimPrefix(out, []byte("urn:uuid:"))
	if len(out) > 1 && out[0] == '{' && out[len(out)-1] == '}' {
		out = out[1 : len(out)-1]
	}

	n := 0
	for _, c := range out {
		if c != '-' {
			out[n] = c
			n++
		}
	}
	return out[:n]
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// Bytes returns the 16-byte mixed-endian binary form of the GUID, the layout
// of the Windows GUID structure.
func (g Guid) Bytes() []byte {
	b := g.mixedEndian()
	return b[:]
}

// IsNil returns true if the GUID is the nil GUID (all zeros)
func (g Guid) IsNil() bool {
	return g == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (g Guid) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], g.bigEndian())
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (g *Guid) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// The result is the mixed-endian form returned by Bytes.
func (g Guid) MarshalBinary() ([]byte, error) {
	return g.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (g *Guid) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// A 16-byte value is read in the mixed-endian binary form, as stored by
// SQL Server uniqueidentifier columns; anything else is parsed as text.
func (g *Guid) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*g = id
		return nil
	case []byte:
		if len(src) == Size {
			*g = fromMixedEndian(src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*g = id
		return nil
	default:
		return fmt.Errorf("guid: cannot scan type %T into Guid", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (g Guid) Value() (driver.Value, error) {
	return g.String(), nil
}

// Compare returns an integer comparing two GUIDs in the order of their
// canonical text. The result will be 0 if g==other, -1 if g < other, and +1
// if g > other.
func (g Guid) Compare(other Guid) int {
	a, b := g.bigEndian(), other.bigEndian()
	return bytes.Compare(a[:], b[:])
}

// Equal returns true if g and other represent the same GUID
func (g Guid) Equal(other Guid) bool {
	return g == other
}
