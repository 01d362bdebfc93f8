package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lzww0608/guid/internal/gen"
	"github.com/Lzww0608/guid/internal/registry"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Write the generated file for a package",
		Long: `Scan the Go files of a package directory (default ".") for //guid:
directives and write the generated file next to them.

When registry.driver and registry.dsn are set, every GUID is claimed in the
registry database and a GUID owned by another symbol fails the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := gen.Config{
				Dir:             ".",
				Output:          v.GetString(keyOutput),
				Method:          v.GetString(keyMethod),
				ImportPath:      v.GetString(keyImport),
				Package:         v.GetString(keyPackage),
				AllowDuplicates: v.GetBool(keyAllowDuplicates),
			}
			if len(args) == 1 {
				cfg.Dir = args[0]
			}

			opts := []gen.Option{gen.WithLogger(logrus.WithField("cmd", "generate"))}
			if driver := v.GetString(keyRegistryDriver); driver != "" {
				store, err := registry.Open(driver, v.GetString(keyRegistryDSN))
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Init(cmd.Context()); err != nil {
					return err
				}
				opts = append(opts, gen.WithRegistry(store))
			}

			g, err := gen.New(cfg, opts...)
			if err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
			res, err := g.Run(cmd.Context())
			if err != nil {
				return err
			}
			if res.Path != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("output", "", "generated file name")
	flags.String("method", "", "accessor method emitted for guid:attach")
	flags.String("import", "", "import path of the guid package")
	flags.String("package", "", "package identity recorded in the registry")
	flags.Bool("allow-duplicates", false, "allow one GUID on several symbols")
	flags.String("registry-driver", "", "registry database driver (mysql, sqlite3)")
	flags.String("registry-dsn", "", "registry data source name")

	for key, name := range map[string]string{
		keyOutput:          "output",
		keyMethod:          "method",
		keyImport:          "import",
		keyPackage:         "package",
		keyAllowDuplicates: "allow-duplicates",
		keyRegistryDriver:  "registry-driver",
		keyRegistryDSN:     "registry-dsn",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
	return cmd
}
