package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vcfmeta",
		Short: "VCF header metadata toolkit",
		Long: "vcfmeta parses the metadata section of VCF files and maintains a\n" +
			"searchable catalog of header declarations across files.",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().String("config", "", "Config file (default: ~/.vcfmeta.yaml)")
	cmd.PersistentFlags().String("db", "", "Catalog database path (default: ~/.vcfmeta/catalog.duckdb)")

	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("db", cmd.PersistentFlags().Lookup("db"))

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newFilesCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".vcfmeta")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VCFMETA")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}

// newLogger builds the CLI logger. Quiet by default, development output
// with --verbose.
func newLogger() *zap.Logger {
	if !viper.GetBool("verbose") {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// catalogPath resolves the catalog database location from the --db flag,
// the VCFMETA_DB environment variable, or the config file.
func catalogPath() string {
	if db := viper.GetString("db"); db != "" {
		return db
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "catalog.duckdb"
	}
	return filepath.Join(home, ".vcfmeta", "catalog.duckdb")
}
