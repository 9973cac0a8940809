package registry

import (
	"slices"
	"testing"
)

func TestValidate(t *testing.T) {
	// The shipped tables must always be internally consistent.
	if err := Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestMustFileType(t *testing.T) {
	ft := MustFileType("shell")
	if !slices.Contains(ft.Tools, "shellcheck") {
		t.Errorf("shell file type should include shellcheck, got %v", ft.Tools)
	}
	if !slices.Contains(ft.Tags, "shell") {
		t.Errorf("shell file type should carry the shell tag, got %v", ft.Tags)
	}
}

func TestMustFileTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFileType should panic on unknown id")
		}
	}()
	MustFileType("no-such-file-type")
}

func TestMustTool(t *testing.T) {
	tool := MustTool("pre-commit")
	if tool.InstalledBy != "uv" {
		t.Errorf("pre-commit installer = %q, want uv", tool.InstalledBy)
	}
	if !slices.Contains(tool.ConfigFileTypes, "yaml") {
		t.Errorf("pre-commit config file types = %v, want yaml", tool.ConfigFileTypes)
	}
}

func TestMustToolPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTool should panic on unknown id")
		}
	}()
	MustTool("no-such-tool")
}

func TestIDsSorted(t *testing.T) {
	if ids := FileTypeIDs(); !slices.IsSorted(ids) {
		t.Errorf("FileTypeIDs not sorted: %v", ids)
	}
	if ids := ToolIDs(); !slices.IsSorted(ids) {
		t.Errorf("ToolIDs not sorted: %v", ids)
	}
}

func TestFileTypeTags(t *testing.T) {
	tags := FileTypeTags()
	if len(tags) != len(FileTypeIDs()) {
		t.Fatalf("FileTypeTags has %d entries, want %d", len(tags), len(FileTypeIDs()))
	}
	want := []string{"pyi", "python"}
	if !slices.Equal(tags["python"], want) {
		t.Errorf("python tags = %v, want %v", tags["python"], want)
	}
}

func TestFileRegexesAnchored(t *testing.T) {
	pytest := MustTool("pytest")
	if len(pytest.FileRegexes) == 0 {
		t.Fatal("pytest should declare a conftest.py pattern")
	}
	re := pytest.FileRegexes[0]

	tests := []struct {
		path string
		want bool
	}{
		{"conftest.py", true},
		{"tests/conftest.py", true},
		{"a/b/conftest.py", true},
		{"conftest.pyc", false},          // full match only
		{"src/myconftest.py", false},     // prefix must be a directory
		{"conftest.py/other.txt", false}, // no partial match
	}
	for _, tt := range tests {
		if got := re.MatchString(tt.path); got != tt.want {
			t.Errorf("pytest regex match %q = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseEcosystem(t *testing.T) {
	if _, err := ParseEcosystem("python"); err != nil {
		t.Errorf("python should parse: %v", err)
	}
	if _, err := ParseEcosystem("node"); err != nil {
		t.Errorf("node should parse: %v", err)
	}
	if _, err := ParseEcosystem("rust"); err == nil {
		t.Error("rust should not parse")
	}
}

func TestValidateInstallersDetectsCycle(t *testing.T) {
	// Sanity-check the walker itself against a synthetic cycle.
	old := tools
	defer func() { tools = old }()

	tools = map[string]Tool{
		"a": {InstalledBy: "b"},
		"b": {InstalledBy: "a"},
	}
	if err := validateInstallers(); err == nil {
		t.Error("validateInstallers should reject a cycle")
	}
}

func TestValidatePackagesDetectsConflict(t *testing.T) {
	old := tools
	defer func() { tools = old }()

	tools = map[string]Tool{
		"a": {Packages: map[Ecosystem]map[string]string{EcosystemPython: {"pkg": "1.0"}}},
		"b": {Packages: map[Ecosystem]map[string]string{EcosystemPython: {"pkg": "2.0"}}},
	}
	if err := validatePackages(); err == nil {
		t.Error("validatePackages should reject conflicting pins")
	}
}
