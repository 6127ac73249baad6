package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/deepline/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would run with, as YAML.

The file is looked up in this order:
  1. --config <path>
  2. ~/.arcade/configs/deepline.yaml
  3. ./configs/deepline.yaml
  4. Built-in defaults

Examples:
  deepline config
  deepline config --defaults > ~/.arcade/configs/deepline.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		exitOnError("writing config", err)
		return
	}

	cfg, err := config.LoadFishing(flagConfig)
	exitOnError("loading config", err)

	out, err := cfg.Marshal()
	exitOnError("encoding config", err)

	_, err = os.Stdout.Write(out)
	exitOnError("writing config", err)
}
