package protocol

//go:generate go run github.com/Lzww0608/guid/cmd/guidgen generate

//guid:var IIDUnknown 00000000-0000-0000-c000-000000000046

// Protocol is an asynchronous pluggable protocol handler.
//
//guid:attach 72631e54-78a4-11d0-bcf7-00aa00b7b32a
type Protocol struct{}

type (
	// Dispatch is the automation interface.
	//
	//guid:attach "{00020400-0000-0000-C000-000000000046}"
	Dispatch struct{}

	// Plain has no GUID.
	Plain int
)
