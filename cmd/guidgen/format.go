package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/guid"
)

func newFormatCmd() *cobra.Command {
	var registryForm bool

	cmd := &cobra.Command{
		Use:   "format <hex-bytes>",
		Short: "Print the canonical form of a 16-byte binary GUID",
		Long: `Decode 32 hex digits holding the mixed-endian binary form of a GUID, as
found in a Windows REG_BINARY value or a GPT entry, and print its text form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.NewReplacer(" ", "", ":", "", "0x", "").Replace(args[0])
			data, err := hex.DecodeString(raw)
			if err != nil {
				return errors.Wrap(err, "decode hex bytes")
			}
			g, err := guid.FromBytes(data)
			if err != nil {
				return err
			}
			if registryForm {
				fmt.Fprintln(cmd.OutOrStdout(), g.MSString())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), g.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&registryForm, "registry", false, "print the uppercase braced registry form")
	return cmd
}
