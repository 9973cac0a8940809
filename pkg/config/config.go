package config

import (
	"maps"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/calliecameron/toolstack/pkg/errors"
)

// Config is the repo-visible scaffolding state. It is treated as an
// immutable value: operations return new Configs rather than mutating.
//
// FileTypes and Tools are kept sorted and deduplicated so that serialized
// output is byte-stable; the field order of the YAML representation
// (file_types, tools, metadata) is part of the persisted contract.
type Config struct {
	FileTypes []string       `yaml:"file_types"`
	Tools     []string       `yaml:"tools"`
	Metadata  map[string]any `yaml:"metadata"`
}

// New builds a Config from the given members, sorting and deduplicating the
// sets and copying the metadata map. Nil inputs are treated as empty.
func New(fileTypes, tools []string, metadata map[string]any) Config {
	md := make(map[string]any, len(metadata))
	maps.Copy(md, metadata)
	return Config{
		FileTypes: sortedSet(fileTypes),
		Tools:     sortedSet(tools),
		Metadata:  md,
	}
}

// FromRaw builds a Config from untrusted decoded data (e.g. a YAML mapping
// supplied by a user or template). Missing or null fields default to empty.
// Fields of the wrong shape are a type-contract violation and return a
// descriptive error; they are never coerced.
func FromRaw(raw map[string]any) (Config, error) {
	fileTypes, err := rawStringSeq(raw, "file_types")
	if err != nil {
		return Config{}, err
	}
	tools, err := rawStringSeq(raw, "tools")
	if err != nil {
		return Config{}, err
	}
	metadata, err := rawMapping(raw, "metadata")
	if err != nil {
		return Config{}, err
	}
	return New(fileTypes, tools, metadata), nil
}

// UnmarshalYAML decodes a Config, applying the same shape validation as
// [FromRaw].
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config is not a mapping")
	}
	cfg, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// MarshalYAML renders the stable serialization: file_types and tools as
// sorted sequences, metadata as a mapping, in that field order. Empty sets
// render as empty sequences rather than null.
func (c Config) MarshalYAML() (any, error) {
	type stable struct {
		FileTypes []string       `yaml:"file_types"`
		Tools     []string       `yaml:"tools"`
		Metadata  map[string]any `yaml:"metadata"`
	}
	out := stable{
		FileTypes: c.FileTypes,
		Tools:     c.Tools,
		Metadata:  c.Metadata,
	}
	if out.FileTypes == nil {
		out.FileTypes = []string{}
	}
	if out.Tools == nil {
		out.Tools = []string{}
	}
	if out.Metadata == nil {
		out.Metadata = map[string]any{}
	}
	return out, nil
}

// Raw returns the serialized shape as plain Go values, for callers that
// template the configuration rather than writing YAML directly.
func (c Config) Raw() map[string]any {
	fileTypes, tools, metadata := c.FileTypes, c.Tools, c.Metadata
	if fileTypes == nil {
		fileTypes = []string{}
	}
	if tools == nil {
		tools = []string{}
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return map[string]any{
		"file_types": fileTypes,
		"tools":      tools,
		"metadata":   metadata,
	}
}

// Equal reports whether two Configs have the same members and metadata.
// Metadata values are compared with [reflect.DeepEqual], since producers
// attach slices and maps as well as scalars.
func (c Config) Equal(other Config) bool {
	if !slices.Equal(c.FileTypes, other.FileTypes) || !slices.Equal(c.Tools, other.Tools) {
		return false
	}
	if len(c.Metadata) != len(other.Metadata) {
		return false
	}
	for k, v := range c.Metadata {
		if ov, ok := other.Metadata[k]; !ok || !reflect.DeepEqual(ov, v) {
			return false
		}
	}
	return true
}

func sortedSet(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

func rawStringSeq(raw map[string]any, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch seq := v.(type) {
	case []string:
		return seq, nil
	case []any:
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidConfig,
					"config key %q contains %T (wanted a sequence of strings)", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"config key %q is %T (wanted a sequence of strings or null)", key, v)
	}
}

func rawMapping(raw map[string]any, key string) (map[string]any, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"config key %q is %T (wanted a mapping or null)", key, v)
	}
	return m, nil
}
