package metadata

import (
	"context"

	"github.com/calliecameron/toolstack/pkg/pkgmgr"
	"github.com/calliecameron/toolstack/pkg/pyversion"
	"github.com/calliecameron/toolstack/pkg/registry"
)

// The window of python versions scaffolded projects may target.
const (
	MinPythonVersion = "3.12"
	MaxPythonVersion = "3.14"
)

// DefaultProducers returns the standard metadata producer set: package
// manager versions, the allowed python version window, the node version,
// the registry's tag table, and values read from pyproject.toml.
func DefaultProducers(uv *pkgmgr.UV, nvm *pkgmgr.Nvm) []Producer {
	return []Producer{
		{
			Name: "uv_version",
			Get:  func(ctx context.Context) (any, error) { return uv.Version(ctx) },
		},
		{
			Name: "uv_build_spec",
			Get:  func(ctx context.Context) (any, error) { return uv.BuildSpec(ctx) },
		},
		Static("template_min_allowed_python_version", MinPythonVersion),
		Static("template_max_allowed_python_version", MaxPythonVersion),
		{
			Name: "template_allowed_python_versions",
			Get: func(context.Context) (any, error) {
				versions, err := pyversion.Enumerate(MinPythonVersion, MaxPythonVersion)
				if err != nil {
					return nil, err
				}
				return versions, nil
			},
		},
		{
			Name: "node_version",
			Get:  func(ctx context.Context) (any, error) { return nvm.NodeVersion(ctx) },
		},
		Static("file_type_tags", registry.FileTypeTags()),
		TomlString("project_version", "pyproject.toml", "project.version", "0.0.0"),
		TomlBool("is_python_package", "pyproject.toml", "tool.uv.package", nil),
	}
}
