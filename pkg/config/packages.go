package config

import (
	"maps"
	"slices"

	"github.com/calliecameron/toolstack/pkg/registry"
)

// Packages projects cfg into the pinned package manifest for one ecosystem:
// the union of the ecosystem's package maps of every tool in cfg.Tools.
//
// The registry guarantees (and validates at load time) that no two tools pin
// the same package at different versions, so the union is order-independent.
// Tools in cfg that declare no packages for the ecosystem contribute
// nothing; ids not present in the registry are ignored here, since the
// projection iterates the registry rather than the config.
func Packages(cfg Config, ecosystem registry.Ecosystem) map[string]string {
	out := make(map[string]string)
	for _, id := range registry.ToolIDs() {
		if slices.Contains(cfg.Tools, id) {
			maps.Copy(out, registry.MustTool(id).Packages[ecosystem])
		}
	}
	return out
}
