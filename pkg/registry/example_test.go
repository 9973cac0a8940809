package registry_test

import (
	"fmt"

	"github.com/calliecameron/toolstack/pkg/registry"
)

func ExampleMustFileType() {
	ft := registry.MustFileType("shell")

	fmt.Println("tools:", ft.Tools)
	fmt.Println("tags:", ft.Tags)
	// Output:
	// tools: [shellcheck shfmt]
	// tags: [shell]
}

func ExampleMustTool() {
	tool := registry.MustTool("pre-commit")

	fmt.Println("installed by:", tool.InstalledBy)
	fmt.Println("config file types:", tool.ConfigFileTypes)
	fmt.Println("pins:", tool.Packages[registry.EcosystemPython])
	// Output:
	// installed by: uv
	// config file types: [yaml]
	// pins: map[pre-commit:4.3.0]
}
