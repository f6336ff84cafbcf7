package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the config schema or defaults",
	Long: `Inspect the game configuration.

Config files are looked up in this order:
  --config <path>
  ~/.brickbreaker/configs/breaker.yaml
  ~/.brickbreaker/configs/breaker.toml
  ./configs/breaker.yaml
  built-in defaults

Files only need the keys they change.

Examples:
  brickbreaker config defaults > breaker.yaml
  brickbreaker config defaults --format toml
  brickbreaker config show --difficulty easy
  brickbreaker config schema`,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := config.SchemaJSON()
		if err != nil {
			exitf("%v", err)
		}
		fmt.Println(string(data))
	},
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in config",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printConfig(config.DefaultBreakerConfig())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config after files and flags",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitf("%v", err)
		}
		printConfig(cfg)
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")

	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configShowCmd)
}

func printConfig(cfg config.BreakerConfig) {
	format := config.FormatYAML
	switch flagConfigFormat {
	case "yaml", "yml":
	case "toml":
		format = config.FormatTOML
	default:
		exitf("unknown format %q (want yaml or toml)", flagConfigFormat)
	}

	if err := config.Encode(os.Stdout, format, cfg); err != nil {
		exitf("%v", err)
	}
}
