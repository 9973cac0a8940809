package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/calliecameron/toolstack/pkg/config"
	"github.com/calliecameron/toolstack/pkg/registry"
)

// packagesCommand creates the packages command, which projects a
// configuration into the pinned package set of one ecosystem.
func (c *CLI) packagesCommand() *cobra.Command {
	var configFile string
	var format string

	cmd := &cobra.Command{
		Use:   "packages <python|node>",
		Short: "List the pinned packages a configuration needs",
		Long: `List the pinned packages of one ecosystem for a configuration.

The result is the union of the ecosystem's package pins of every tool in
the configuration, as name -> version.

Examples:
  toolstack packages python
  toolstack packages node --config custom.yml --format json`,
		ValidArgs: []string{"python", "node"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ecosystem, err := registry.ParseEcosystem(args[0])
			if err != nil {
				return err
			}
			cfg, err := readConfig(configFile)
			if err != nil {
				return err
			}

			pins := config.Packages(cfg, ecosystem)
			return printPins(pins, format)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", defaultConfigFile, "configuration file to project")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml or json)")

	return cmd
}

func printPins(pins map[string]string, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(pins)
		if err != nil {
			return fmt.Errorf("marshal packages: %w", err)
		}
		fmt.Print(string(data))
	case "json":
		data, err := json.MarshalIndent(pins, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal packages: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown format %q (expected yaml or json)", format)
	}
	return nil
}
