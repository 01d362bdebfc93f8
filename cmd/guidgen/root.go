package main

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lzww0608/guid/internal/gen"
)

// Configuration keys.
const (
	keyOutput          = "output"
	keyMethod          = "method"
	keyImport          = "import"
	keyPackage         = "package"
	keyAllowDuplicates = "allow_duplicates"
	keyRegistryDriver  = "registry.driver"
	keyRegistryDSN     = "registry.dsn"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "guidgen",
		Short: "Build-time GUID literal generator",
		Long: `guidgen turns GUID literals written in source comments into Go code.

  //guid:attach <guid>     in a type's doc comment adds a GUID() method
  //guid:var <Name> <guid> declares a package-level GUID variable

Every literal is validated with guid.Parse; an invalid literal fails the run.

Commands:
  generate    Write the generated file for a package
  parse       Show the fields and binary layout of a GUID
  format      Print the canonical form of a 16-byte binary GUID`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return loadConfig(v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .guidgen.yaml in . or $HOME)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newGenerateCmd(v),
		newParseCmd(),
		newFormatCmd(),
	)
	return root
}

// loadConfig reads the optional config file and the GUIDGEN_* environment.
func loadConfig(v *viper.Viper, file string) error {
	def := gen.DefaultConfig()
	v.SetDefault(keyOutput, def.Output)
	v.SetDefault(keyMethod, def.Method)
	v.SetDefault(keyImport, def.ImportPath)
	v.SetDefault(keyPackage, "")
	v.SetDefault(keyAllowDuplicates, false)
	v.SetDefault(keyRegistryDriver, "")
	v.SetDefault(keyRegistryDSN, "")

	v.SetEnvPrefix("GUIDGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".guidgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return err
		}
		return nil
	}
	logrus.WithField("file", v.ConfigFileUsed()).Debug("loaded config")
	return nil
}
