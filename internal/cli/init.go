package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calliecameron/toolstack/pkg/config"
	"github.com/calliecameron/toolstack/pkg/registry"
)

// initCommand creates the init command, which interactively picks file
// types and tools and writes the expanded configuration.
func (c *CLI) initCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration",
		Long: `Pick file types and tools interactively and write the expanded
configuration. Everything the picked entries transitively imply is added
automatically.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewPickModel("Select file types and tools", pickItems())

			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}

			picked, ok := final.(PickModel)
			if !ok || !picked.Done {
				printInfo("Canceled")
				return nil
			}

			fileTypes, tools := picked.Selected()
			if len(fileTypes) == 0 && len(tools) == 0 {
				printWarning("Nothing selected")
				return nil
			}

			cfg := config.Expand(config.New(fileTypes, tools, nil), config.Config{})
			return writeConfig(cfg, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultConfigFile, "output file (stdout if empty)")

	return cmd
}

// pickItems lists every registry entry, file types first.
func pickItems() []pickItem {
	var items []pickItem
	for i, id := range registry.FileTypeIDs() {
		item := pickItem{ID: id}
		if i == 0 {
			item.Heading = headingFileTypes
		}
		items = append(items, item)
	}
	for i, id := range registry.ToolIDs() {
		item := pickItem{ID: id}
		if installer := registry.MustTool(id).InstalledBy; installer != "" {
			item.Detail = "via " + installer
		}
		if i == 0 {
			item.Heading = headingTools
		}
		items = append(items, item)
	}
	return items
}
