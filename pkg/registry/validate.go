package registry

import (
	"slices"

	"github.com/calliecameron/toolstack/pkg/errors"
)

// Validate checks the consistency of the registry tables. It is run once in
// package init, where any error panics; it is exported so tests can assert
// the shipped tables are sound.
//
// Checks:
//   - every tool id referenced by a file type or another tool exists
//   - every file type id referenced by a tool exists
//   - installed-by chains never cycle
//   - package names and pinned versions are non-empty
//   - no two tools pin the same package at different versions, which would
//     make the projection order-dependent
func Validate() error {
	if err := validateReferences(); err != nil {
		return err
	}
	if err := validateInstallers(); err != nil {
		return err
	}
	return validatePackages()
}

func validateReferences() error {
	for _, id := range FileTypeIDs() {
		for _, tool := range fileTypes[id].Tools {
			if _, ok := tools[tool]; !ok {
				return errors.New(errors.ErrCodeRegistryInvalid,
					"file type %q references unknown tool %q", id, tool)
			}
		}
	}
	for _, id := range ToolIDs() {
		t := tools[id]
		if t.InstalledBy != "" {
			if _, ok := tools[t.InstalledBy]; !ok {
				return errors.New(errors.ErrCodeRegistryInvalid,
					"tool %q has unknown installer %q", id, t.InstalledBy)
			}
		}
		for _, req := range t.Requires {
			if _, ok := tools[req]; !ok {
				return errors.New(errors.ErrCodeRegistryInvalid,
					"tool %q requires unknown tool %q", id, req)
			}
		}
		for _, ft := range t.ConfigFileTypes {
			if _, ok := fileTypes[ft]; !ok {
				return errors.New(errors.ErrCodeRegistryInvalid,
					"tool %q references unknown config file type %q", id, ft)
			}
		}
	}
	return nil
}

// validateInstallers walks every installed-by chain. Chains are short, so a
// plain visited-set walk per tool is enough.
func validateInstallers() error {
	for _, id := range ToolIDs() {
		seen := []string{id}
		cur := id
		for {
			next := tools[cur].InstalledBy
			if next == "" {
				break
			}
			if slices.Contains(seen, next) {
				return errors.New(errors.ErrCodeRegistryInvalid,
					"installer cycle: %v -> %s", seen, next)
			}
			seen = append(seen, next)
			cur = next
		}
	}
	return nil
}

func validatePackages() error {
	for _, eco := range Ecosystems() {
		pins := make(map[string]string)   // package -> version
		owners := make(map[string]string) // package -> first tool pinning it
		for _, id := range ToolIDs() {
			for name, version := range tools[id].Packages[eco] {
				if name == "" || version == "" {
					return errors.New(errors.ErrCodeRegistryInvalid,
						"tool %q has malformed %s package pin %q=%q", id, eco, name, version)
				}
				if prev, ok := pins[name]; ok && prev != version {
					return errors.New(errors.ErrCodeRegistryInvalid,
						"%s package %q pinned at %s by %q but %s by %q",
						eco, name, prev, owners[name], version, id)
				}
				pins[name] = version
				owners[name] = id
			}
		}
	}
	return nil
}
