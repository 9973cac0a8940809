package metadata

import (
	"context"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/calliecameron/toolstack/pkg/errors"
)

// TomlString returns a producer reading the string at a dotted key (e.g.
// "project.version") in a TOML file. A missing file or key yields def, which
// may be nil to mean absent; a value of the wrong type is an error.
func TomlString(name, filename, key string, def any) Producer {
	return tomlValue(name, filename, key, def, func(v any) (any, bool) {
		s, ok := v.(string)
		return s, ok
	})
}

// TomlBool returns a producer reading the bool at a dotted key in a TOML
// file. A missing file or key yields def; a value of the wrong type is an
// error.
func TomlBool(name, filename, key string, def any) Producer {
	return tomlValue(name, filename, key, def, func(v any) (any, bool) {
		b, ok := v.(bool)
		return b, ok
	})
}

func tomlValue(name, filename, key string, def any, check func(any) (any, bool)) Producer {
	parts := splitKey(key)
	return Producer{
		Name: name,
		Get: func(context.Context) (any, error) {
			data := loadToml(filename)
			for i, k := range parts {
				v, ok := data[k]
				if !ok {
					return def, nil
				}
				if i == len(parts)-1 {
					value, ok := check(v)
					if !ok {
						return nil, errors.New(errors.ErrCodeInvalidFormat,
							"value %s in %s has unexpected type %T", key, filename, v)
					}
					return value, nil
				}
				next, ok := v.(map[string]any)
				if !ok {
					return nil, errors.New(errors.ErrCodeInvalidFormat,
						"indexed into %s value %s that isn't a table (got %T)", filename, key, v)
				}
				data = next
			}
			return nil, nil
		},
	}
}

// loadToml reads a TOML file into a generic map, treating an unreadable or
// unparseable file as empty.
func loadToml(filename string) map[string]any {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil
	}
	var data map[string]any
	if err := toml.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return data
}

func splitKey(key string) []string {
	var parts []string
	for _, p := range strings.Split(key, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
