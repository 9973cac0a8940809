package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/calliecameron/toolstack/pkg/config"
)

func newTestCLI() *CLI {
	return New(&bytes.Buffer{}, log.FatalLevel)
}

func TestRootCommandStructure(t *testing.T) {
	root := newTestCLI().RootCommand()

	if root.Use != "toolstack" {
		t.Errorf("root.Use = %q", root.Use)
	}

	want := []string{"detect", "expand", "packages", "init", "info", "graph", "cache", "completion"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		if !slices.Contains(got, name) {
			t.Errorf("root is missing the %s command (have %v)", name, got)
		}
	}
}

func TestReadWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := config.New([]string{"python"}, []string{"ruff"}, map[string]any{"k": "v"})

	if err := writeConfig(cfg, path); err != nil {
		t.Fatalf("writeConfig error: %v", err)
	}

	got, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig error: %v", err)
	}
	if !got.Equal(cfg) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestReadConfigMissing(t *testing.T) {
	if _, err := readConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("readConfig should fail on a missing file")
	}
}

func TestReadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("file_types:\n  a: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(path); err == nil {
		t.Error("readConfig should reject a malformed configuration")
	}
}

func TestExpandSafelyUnknownID(t *testing.T) {
	_, err := expandSafely(config.New(nil, []string{"no-such-tool"}, nil), config.Config{})
	if err == nil {
		t.Fatal("expandSafely should report unknown ids as errors")
	}
	if !strings.Contains(err.Error(), "no-such-tool") {
		t.Errorf("error should name the unknown id: %v", err)
	}
}

func TestExpandSafely(t *testing.T) {
	got, err := expandSafely(config.New(nil, []string{"pytest"}, nil), config.Config{})
	if err != nil {
		t.Fatalf("expandSafely error: %v", err)
	}
	if !slices.Contains(got.Tools, "uv") {
		t.Errorf("expanded tools = %v, want uv included", got.Tools)
	}
}

func TestPickItemsSections(t *testing.T) {
	items := pickItems()
	if len(items) == 0 {
		t.Fatal("pickItems returned nothing")
	}
	if items[0].Heading != headingFileTypes {
		t.Errorf("first item heading = %q, want %q", items[0].Heading, headingFileTypes)
	}

	var toolHeadings int
	for _, item := range items {
		if item.Heading == headingTools {
			toolHeadings++
		}
	}
	if toolHeadings != 1 {
		t.Errorf("tool headings = %d, want 1", toolHeadings)
	}
}

func TestPickModelSelected(t *testing.T) {
	m := NewPickModel("test", []pickItem{
		{ID: "python", Heading: headingFileTypes},
		{ID: "shell"},
		{ID: "ruff", Heading: headingTools},
		{ID: "pytest"},
	})
	m.Checked[1] = true
	m.Checked[3] = true

	fileTypes, tools := m.Selected()
	if !slices.Equal(fileTypes, []string{"shell"}) {
		t.Errorf("fileTypes = %v", fileTypes)
	}
	if !slices.Equal(tools, []string{"pytest"}) {
		t.Errorf("tools = %v", tools)
	}
}
