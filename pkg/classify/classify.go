// Package classify identifies the semantic tags of a file from its path and,
// when the path alone is not enough, its content.
//
// Tags are the vocabulary the registry's identification rules are written
// in: a file tagged "python" marks the python file type as present, a file
// tagged "bats" marks the bats tool as in use, and so on. Classification is
// best-effort: a file that cannot be classified yields no tags, which is
// expected and not an error.
package classify

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// extensionTags maps file extensions (lowercase, with dot) to tags.
var extensionTags = map[string][]string{
	".sh":       {"shell"},
	".bash":     {"shell", "bash"},
	".zsh":      {"shell", "zsh"},
	".ksh":      {"shell", "ksh"},
	".bats":     {"shell", "bash", "bats"},
	".py":       {"python"},
	".pyi":      {"python", "pyi"},
	".js":       {"javascript"},
	".mjs":      {"javascript"},
	".cjs":      {"javascript"},
	".html":     {"html"},
	".htm":      {"html"},
	".css":      {"css"},
	".md":       {"markdown"},
	".markdown": {"markdown"},
	".json":     {"json"},
	".yml":      {"yaml"},
	".yaml":     {"yaml"},
	".toml":     {"toml"},
}

// nameTags maps well-known basenames that carry no useful extension.
var nameTags = map[string][]string{
	".yamllint":       {"yaml"},
	".gitlint":        {"ini"},
	".python-version": {"text"},
	".nvmrc":          {"text"},
}

// interpreterTags maps shebang interpreter names to tags.
var interpreterTags = map[string][]string{
	"sh":      {"shell"},
	"bash":    {"shell", "bash"},
	"zsh":     {"shell", "zsh"},
	"ksh":     {"shell", "ksh"},
	"python":  {"python"},
	"python2": {"python"},
	"python3": {"python"},
	"node":    {"javascript"},
	"bats":    {"shell", "bash", "bats"},
}

// Tags classifies the file at path. The path's basename and extension are
// checked first; an extensionless executable file is sniffed for a shebang
// line. Unclassifiable files return an empty set.
func Tags(path string) []string {
	name := filepath.Base(path)

	if tags, ok := nameTags[name]; ok {
		return tags
	}
	if tags, ok := extensionTags[strings.ToLower(filepath.Ext(name))]; ok {
		return tags
	}
	return shebangTags(path)
}

// shebangTags reads the first line of an executable file and maps its
// interpreter to tags. Unreadable or non-executable files yield no tags.
func shebangTags(path string) []string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Mode().Perm()&0o111 == 0 {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil
	}
	return interpreterTags[interpreter(scanner.Text())]
}

// interpreter extracts the interpreter name from a shebang line, handling
// the "#!/usr/bin/env NAME" indirection.
func interpreter(line string) string {
	if !strings.HasPrefix(line, "#!") {
		return ""
	}
	fields := strings.Fields(line[2:])
	if len(fields) == 0 {
		return ""
	}
	name := filepath.Base(fields[0])
	if name == "env" && len(fields) > 1 {
		name = filepath.Base(fields[1])
	}
	// Versioned interpreters like python3.12 identify as their base name.
	if rest, ok := strings.CutPrefix(name, "python3."); ok && rest != "" {
		name = "python3"
	}
	return name
}
