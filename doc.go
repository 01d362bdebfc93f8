// Package guid encodes and decodes 128-bit Globally Unique Identifiers using
// the four-field Windows GUID layout.
//
// A GUID is written as xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx. In memory it is
// split into Data1 (32 bits), Data2 and Data3 (16 bits each) and Data4 (8
// bytes). The binary form is mixed-endian: the three integer fields are stored
// little-endian while Data4 keeps the byte order of the text. This is the
// layout Windows, COM and UEFI use, so it must be preserved for binary
// interchange.
//
// Basic Usage:
//
//	// Parse a GUID from string
//	g, err := guid.Parse("72631e54-78a4-11d0-bcf7-00aa00b7b32a")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Data1)   // 1919098452 (0x72631e54)
//	fmt.Println(g.String()) // 72631e54-78a4-11d0-bcf7-00aa00b7b32a
//	fmt.Printf("%x\n", g.Bytes()) // 541e6372a478d011bcf700aa00b7b32a
//
// Errors:
//
// Parse returns a *ParseError whose Kind is InvalidLength when the input does
// not hold exactly 32 hex digits once quotes, whitespace, braces and hyphens
// are removed, and InvalidHexDigit when it does but one of them is not a hex
// digit. The length is always checked first. Use errors.Is with
// ErrInvalidLength or ErrInvalidHexDigit to test for a kind.
//
// Build-Time Constants:
//
// The guidgen command (cmd/guidgen) turns GUID literals written in source
// comments into Go code during go generate:
//
//	//go:generate go run github.com/Lzww0608/guid/cmd/guidgen generate
//
//	//guid:var IIDUnknown 00000000-0000-0000-c000-000000000046
//
//	//guid:attach 72631e54-78a4-11d0-bcf7-00aa00b7b32a
//	type Protocol struct{}
//
// generates a package-level IIDUnknown variable and a Protocol.GUID method,
// both holding composite literals equal to what Parse returns for the same
// text. A literal that does not parse fails the generate step.
//
// Thread Safety:
//
// Guid is a plain value type with no shared state; all functions are pure and
// safe for concurrent use.
package guid
