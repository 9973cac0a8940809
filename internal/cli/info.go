package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calliecameron/toolstack/pkg/registry"
)

// infoCommand creates the info command, which summarizes the registry.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [id]",
		Short: "Show the registry's file types and tools",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printEntry(args[0])
			}
			printRegistry()
			return nil
		},
	}
}

func printRegistry() {
	fmt.Println(StyleTitle.Render("File types"))
	for _, id := range registry.FileTypeIDs() {
		ft := registry.MustFileType(id)
		printKeyValue(id, strings.Join(ft.Tools, ", "))
	}

	fmt.Println()
	fmt.Println(StyleTitle.Render("Tools"))
	for _, id := range registry.ToolIDs() {
		tool := registry.MustTool(id)
		detail := "standalone"
		if tool.InstalledBy != "" {
			detail = "installed by " + tool.InstalledBy
		}
		printKeyValue(id, StyleDim.Render(detail))
	}
}

// printEntry shows the full registry record for one id, checking file
// types first.
func printEntry(id string) error {
	if ft, err := lookupFileType(id); err == nil {
		fmt.Println(StyleTitle.Render(id) + " " + StyleDim.Render("(file type)"))
		printKeyValue("tools", strings.Join(ft.Tools, ", "))
		printKeyValue("tags", strings.Join(ft.Tags, ", "))
		return nil
	}

	tool, err := lookupTool(id)
	if err != nil {
		return fmt.Errorf("unknown file type or tool %q", id)
	}

	fmt.Println(StyleTitle.Render(id) + " " + StyleDim.Render("(tool)"))
	if tool.InstalledBy != "" {
		printKeyValue("installed by", tool.InstalledBy)
	}
	if len(tool.Requires) > 0 {
		printKeyValue("requires", strings.Join(tool.Requires, ", "))
	}
	if len(tool.ConfigFileTypes) > 0 {
		printKeyValue("configured in", strings.Join(tool.ConfigFileTypes, ", "))
	}
	if len(tool.Tags) > 0 {
		printKeyValue("tags", strings.Join(tool.Tags, ", "))
	}
	for _, eco := range registry.Ecosystems() {
		packages := tool.Packages[eco]
		if len(packages) == 0 {
			continue
		}
		fmt.Println()
		fmt.Println(StyleHighlight.Render(string(eco) + " packages"))
		for _, name := range slices.Sorted(maps.Keys(packages)) {
			printKeyValue(name, packages[name])
		}
	}
	return nil
}

func lookupFileType(id string) (ft registry.FileType, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return registry.MustFileType(id), nil
}

func lookupTool(id string) (tool registry.Tool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return registry.MustTool(id), nil
}
