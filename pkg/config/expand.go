package config

import (
	"maps"

	"github.com/calliecameron/toolstack/pkg/registry"
)

// Expand computes the smallest superset of the union of newCfg and existing
// that is closed under the registry's edges:
//
//   - a file type pulls in every tool that operates on it
//   - a tool pulls in its installer and every tool it requires
//   - a tool pulls in the file types of its own configuration files
//
// The result's metadata is existing's metadata overlaid with newCfg's (new
// wins on key collision); metadata does not participate in the closure.
//
// The computation is a monotone fixed point: the working sets only grow, and
// the vocabulary is finite, so it terminates. Output ordering is total and
// lexicographic, independent of input order.
//
// Unknown ids already present in the inputs are expanded like any other
// member; the registry lookup they trigger panics, which is the deliberate
// fail-fast stance for typos rather than silently ignoring them.
func Expand(newCfg, existing Config) Config {
	fileTypes := make(map[string]struct{})
	tools := make(map[string]struct{})
	for _, cfg := range []Config{existing, newCfg} {
		for _, ft := range cfg.FileTypes {
			fileTypes[ft] = struct{}{}
		}
		for _, t := range cfg.Tools {
			tools[t] = struct{}{}
		}
	}

	for changed := true; changed; {
		changed = false

		for ft := range fileTypes {
			for _, tool := range registry.MustFileType(ft).Tools {
				changed = add(tools, tool) || changed
			}
		}

		var toAdd []string
		for tool := range tools {
			t := registry.MustTool(tool)
			if t.InstalledBy != "" {
				toAdd = append(toAdd, t.InstalledBy)
			}
			toAdd = append(toAdd, t.Requires...)
		}
		for _, tool := range toAdd {
			changed = add(tools, tool) || changed
		}

		for tool := range tools {
			for _, ft := range registry.MustTool(tool).ConfigFileTypes {
				changed = add(fileTypes, ft) || changed
			}
		}
	}

	metadata := make(map[string]any, len(existing.Metadata)+len(newCfg.Metadata))
	maps.Copy(metadata, existing.Metadata)
	maps.Copy(metadata, newCfg.Metadata)

	return New(keys(fileTypes), keys(tools), metadata)
}

func add(set map[string]struct{}, id string) bool {
	if _, ok := set[id]; ok {
		return false
	}
	set[id] = struct{}{}
	return true
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
