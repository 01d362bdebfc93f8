// Package wellknown holds GUIDs defined by COM and the UEFI specification.
// The values are generated by guidgen from the directives below.
package wellknown

//go:generate go run github.com/Lzww0608/guid/cmd/guidgen generate

// COM interface identifiers.
//
//guid:var IIDUnknown 00000000-0000-0000-c000-000000000046
//guid:var IIDDispatch 00020400-0000-0000-c000-000000000046
//guid:var IIDClassFactory 00000001-0000-0000-c000-000000000046

// Protocol is the COM internet protocol handler interface, IInternetProtocol.
//
//guid:attach 79eac9e4-baf9-11ce-8c82-00aa004ba90b
type Protocol struct{}

// ObjectWithSite is IObjectWithSite.
//
//guid:attach fc4801a3-2ba9-11cf-a229-00aa003d7352
type ObjectWithSite struct{}
