package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/calliecameron/toolstack/pkg/config"
)

// expandCommand creates the expand command, which closes a configuration
// over the registry's dependency edges.
func (c *CLI) expandCommand() *cobra.Command {
	var existing string
	var output string

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Close a configuration over its dependencies",
		Long: `Close a configuration over the registry's dependency edges.

Reads a YAML configuration from the given file, or stdin when no file is
given, and adds every tool and file type it transitively implies: the tools
of each file type, each tool's installer and requirements, and the file
types each tool's configuration lives in.

With --existing, the given configuration is merged in first; its metadata
loses to the new configuration's on conflicting keys.

Examples:
  toolstack expand .toolstack.yml
  toolstack detect --no-expand | toolstack expand
  toolstack expand new.yml --existing .toolstack.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newCfg, err := readConfigArg(args)
			if err != nil {
				return err
			}

			existingCfg := config.Config{}
			if existing != "" {
				existingCfg, err = readConfig(existing)
				if err != nil {
					return err
				}
			}

			expanded, err := expandSafely(newCfg, existingCfg)
			if err != nil {
				return err
			}
			return writeConfig(expanded, output)
		},
	}

	cmd.Flags().StringVar(&existing, "existing", "", "existing configuration to merge with")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// readConfigArg reads the configuration from the optional file argument,
// falling back to stdin.
func readConfigArg(args []string) (config.Config, error) {
	if len(args) == 1 {
		return readConfig(args[0])
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return config.Config{}, fmt.Errorf("read stdin: %w", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, fmt.Errorf("parse stdin: %w", err)
	}
	return cfg, nil
}

// expandSafely converts the registry's unknown-id panic into an error, so
// a typo in a hand-written configuration reads as user error rather than a
// crash.
func expandSafely(newCfg, existing config.Config) (cfg config.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("expand: %v", r)
		}
	}()
	return config.Expand(newCfg, existing), nil
}
