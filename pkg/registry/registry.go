package registry

import (
	"maps"
	"regexp"
	"slices"

	"github.com/calliecameron/toolstack/pkg/errors"
)

// Ecosystem identifies a packaging ecosystem.
type Ecosystem string

// The supported packaging ecosystems.
const (
	EcosystemPython Ecosystem = "python" // packages installed by uv
	EcosystemNode   Ecosystem = "node"   // packages installed by npm
)

// Ecosystems returns all supported ecosystems in sorted order.
func Ecosystems() []Ecosystem {
	return []Ecosystem{EcosystemNode, EcosystemPython}
}

// ParseEcosystem converts a string to an Ecosystem.
func ParseEcosystem(s string) (Ecosystem, error) {
	switch Ecosystem(s) {
	case EcosystemPython:
		return EcosystemPython, nil
	case EcosystemNode:
		return EcosystemNode, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidEcosystem, "unknown ecosystem %q (available: node, python)", s)
	}
}

// FileType describes a category of source file.
type FileType struct {
	Tools []string // tools that operate on files of this type
	Tags  []string // identification tags that mark a file as this type
}

// Tool describes a piece of tooling: a linter, formatter, package manager,
// or CI checker.
type Tool struct {
	ConfigFileTypes []string                        // file types of the tool's own config files
	InstalledBy     string                          // tool that installs this one; empty if none
	Requires        []string                        // tools that must co-exist with this one
	Tags            []string                        // tags that directly imply this tool
	FileRegexes     []*regexp.Regexp                // full-path patterns that directly imply this tool
	Packages        map[Ecosystem]map[string]string // pinned packages per ecosystem
}

// MustFileType returns the file type for id. It panics if id is not in the
// table: a reference to an unknown file type is a consistency bug, not a
// recoverable condition.
func MustFileType(id string) FileType {
	ft, ok := fileTypes[id]
	if !ok {
		panic(errors.New(errors.ErrCodeUnknownFileType, "unknown file type %q", id))
	}
	return ft
}

// MustTool returns the tool for id. It panics if id is not in the table.
func MustTool(id string) Tool {
	t, ok := tools[id]
	if !ok {
		panic(errors.New(errors.ErrCodeUnknownTool, "unknown tool %q", id))
	}
	return t
}

// FileTypeIDs returns every file type id in sorted order.
func FileTypeIDs() []string {
	return slices.Sorted(maps.Keys(fileTypes))
}

// ToolIDs returns every tool id in sorted order.
func ToolIDs() []string {
	return slices.Sorted(maps.Keys(tools))
}

// FileTypeTags returns the identification tags of every file type, keyed by
// file type id, each tag list sorted.
func FileTypeTags() map[string][]string {
	out := make(map[string][]string, len(fileTypes))
	for id, ft := range fileTypes {
		out[id] = slices.Sorted(slices.Values(ft.Tags))
	}
	return out
}

// rx compiles a path pattern anchored at both ends, matching the original
// full-match semantics.
func rx(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + pattern + `)\z`)
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
