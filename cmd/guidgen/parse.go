package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/internal/gen"
)

// fields is the JSON form printed by parse --json.
type fields struct {
	Canonical string `json:"canonical"`
	Registry  string `json:"registry"`
	Data1     uint32 `json:"data1"`
	Data2     uint16 `json:"data2"`
	Data3     uint16 `json:"data3"`
	Data4     string `json:"data4"`
	Binary    string `json:"binary"`
	Literal   string `json:"literal"`
}

func newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <guid>",
		Short: "Show the fields and binary layout of a GUID",
		Long: `Parse a GUID the same way generate does and print its fields, its
mixed-endian binary form and the Go literal generate would emit for it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := guid.Parse(args[0])
			if err != nil {
				return err
			}
			f := fields{
				Canonical: g.String(),
				Registry:  g.MSString(),
				Data1:     g.Data1,
				Data2:     g.Data2,
				Data3:     g.Data3,
				Data4:     hex.EncodeToString(g.Data4[:]),
				Binary:    hex.EncodeToString(g.Bytes()),
				Literal:   gen.Literal("guid", g),
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(f)
			}
			printFields(cmd.OutOrStdout(), f)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printFields(w io.Writer, f fields) {
	fmt.Fprintf(w, "canonical  %s\n", f.Canonical)
	fmt.Fprintf(w, "registry   %s\n", f.Registry)
	fmt.Fprintf(w, "data1      0x%08x\n", f.Data1)
	fmt.Fprintf(w, "data2      0x%04x\n", f.Data2)
	fmt.Fprintf(w, "data3      0x%04x\n", f.Data3)
	fmt.Fprintf(w, "data4      %s\n", f.Data4)
	fmt.Fprintf(w, "binary     %s\n", f.Binary)
	fmt.Fprintf(w, "literal    %s\n", f.Literal)
}
