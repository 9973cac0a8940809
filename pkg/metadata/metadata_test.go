package metadata

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/calliecameron/toolstack/pkg/errors"
)

func TestCollect(t *testing.T) {
	ctx := context.Background()

	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, format)
	}

	producers := []Producer{
		Static("present", "value"),
		{Name: "absent", Get: func(context.Context) (any, error) { return nil, nil }},
		{Name: "broken", Get: func(context.Context) (any, error) {
			return nil, errors.New(errors.ErrCodeCommandFailed, "boom")
		}},
	}

	got := Collect(ctx, producers, logf)
	if len(got) != 1 {
		t.Fatalf("Collect = %v, want one entry", got)
	}
	if got["present"] != "value" {
		t.Errorf("present = %v, want value", got["present"])
	}
	if len(logged) != 1 {
		t.Errorf("broken producer should be logged once, got %v", logged)
	}
}

func TestCollectNilLogger(t *testing.T) {
	producers := []Producer{
		{Name: "broken", Get: func(context.Context) (any, error) {
			return nil, errors.New(errors.ErrCodeCommandFailed, "boom")
		}},
	}
	// Must not panic without a logger.
	if got := Collect(context.Background(), producers, nil); len(got) != 0 {
		t.Errorf("Collect = %v, want empty", got)
	}
}

func TestTomlString(t *testing.T) {
	t.Chdir(t.TempDir())
	pyproject := strings.Join([]string{
		`[project]`,
		`name = "demo"`,
		`version = "1.2.3"`,
		``,
		`[tool.uv]`,
		`package = true`,
	}, "\n")
	if err := os.WriteFile("pyproject.toml", []byte(pyproject), 0o644); err != nil {
		t.Fatalf("write pyproject.toml: %v", err)
	}
	ctx := context.Background()

	// Present key
	got, err := TomlString("v", "pyproject.toml", "project.version", "0.0.0").Get(ctx)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "1.2.3" {
		t.Errorf("project.version = %v, want 1.2.3", got)
	}

	// Missing key falls back to the default
	got, err = TomlString("v", "pyproject.toml", "project.missing", "0.0.0").Get(ctx)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "0.0.0" {
		t.Errorf("default = %v, want 0.0.0", got)
	}

	// Missing file falls back to the default
	got, err = TomlString("v", "nope.toml", "project.version", "0.0.0").Get(ctx)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "0.0.0" {
		t.Errorf("missing file default = %v, want 0.0.0", got)
	}

	// Wrong leaf type is an error, not a coercion
	if _, err := TomlString("v", "pyproject.toml", "tool.uv.package", nil).Get(ctx); err == nil {
		t.Error("string producer should reject a bool value")
	}

	// Indexing through a non-table is an error
	if _, err := TomlString("v", "pyproject.toml", "project.version.deep", nil).Get(ctx); err == nil {
		t.Error("should reject indexing into a string")
	}
}

func TestTomlBool(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("pyproject.toml", []byte("[tool.uv]\npackage = true\n"), 0o644); err != nil {
		t.Fatalf("write pyproject.toml: %v", err)
	}
	ctx := context.Background()

	got, err := TomlBool("p", "pyproject.toml", "tool.uv.package", nil).Get(ctx)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != true {
		t.Errorf("tool.uv.package = %v, want true", got)
	}

	// Missing key with nil default is treated as absent
	got, err = TomlBool("p", "pyproject.toml", "tool.uv.missing", nil).Get(ctx)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != nil {
		t.Errorf("missing key = %v, want nil", got)
	}
}
