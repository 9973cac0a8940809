package config

import (
	"slices"
	"testing"
)

func TestExpandEmpty(t *testing.T) {
	got := Expand(Config{}, Config{})
	if len(got.FileTypes) != 0 || len(got.Tools) != 0 || len(got.Metadata) != 0 {
		t.Errorf("Expand of empty configs = %+v, want empty", got)
	}
	// Output sets are non-nil so the serialization renders [] and {}.
	if got.FileTypes == nil || got.Tools == nil || got.Metadata == nil {
		t.Error("Expand should never return nil members")
	}
}

func TestExpandShellPreCommit(t *testing.T) {
	existing := New([]string{"shell"}, []string{"pre-commit"}, nil)
	got := Expand(Config{}, existing)

	wantFileTypes := []string{"json", "python", "shell", "toml", "yaml"}
	if !slices.Equal(got.FileTypes, wantFileTypes) {
		t.Errorf("file types = %v, want %v", got.FileTypes, wantFileTypes)
	}

	wantTools := []string{
		"ast-grep", "mypy", "node-license-checker", "npm", "pre-commit",
		"prettier", "python-license-checker", "ruff", "shellcheck", "shfmt",
		"tombi", "uv", "yamllint",
	}
	if !slices.Equal(got.Tools, wantTools) {
		t.Errorf("tools = %v, want %v", got.Tools, wantTools)
	}

	// Tools unrelated to shell/pre-commit must not be pulled in.
	for _, tool := range []string{"markdownlint", "eslint", "bats", "pytest", "copier", "gitleaks"} {
		if slices.Contains(got.Tools, tool) {
			t.Errorf("tools should not include %s", tool)
		}
	}
}

func TestExpandIdempotent(t *testing.T) {
	closed := Expand(New([]string{"shell"}, []string{"pre-commit"}, nil), Config{})
	again := Expand(closed, Config{})
	if !again.Equal(closed) {
		t.Errorf("Expand not idempotent: %+v vs %+v", again, closed)
	}
}

func TestExpandMonotone(t *testing.T) {
	a := New([]string{"markdown"}, []string{"bats"}, nil)
	b := New([]string{"shell"}, []string{"pytest"}, nil)
	got := Expand(a, b)

	for _, ft := range append(slices.Clone(a.FileTypes), b.FileTypes...) {
		if !slices.Contains(got.FileTypes, ft) {
			t.Errorf("result should contain seed file type %s", ft)
		}
	}
	for _, tool := range append(slices.Clone(a.Tools), b.Tools...) {
		if !slices.Contains(got.Tools, tool) {
			t.Errorf("result should contain seed tool %s", tool)
		}
	}
}

func TestExpandMetadataBias(t *testing.T) {
	newCfg := New(nil, nil, map[string]any{"k": "new", "only_new": 1})
	existing := New(nil, nil, map[string]any{"k": "old", "only_old": 2})

	got := Expand(newCfg, existing)
	if got.Metadata["k"] != "new" {
		t.Errorf("metadata k = %v, want new (new wins on collision)", got.Metadata["k"])
	}
	if got.Metadata["only_new"] != 1 || got.Metadata["only_old"] != 2 {
		t.Errorf("metadata should union both sides: %v", got.Metadata)
	}
}

func TestExpandMetadataNotClosed(t *testing.T) {
	// Metadata must not participate in the closure.
	got := Expand(New(nil, nil, map[string]any{"k": "v"}), Config{})
	if len(got.FileTypes) != 0 || len(got.Tools) != 0 {
		t.Errorf("metadata-only config should stay empty, got %+v", got)
	}
}

func TestExpandIsolatedTool(t *testing.T) {
	// A tool with no installer, no requirements and no config file types
	// appears exactly when seeded...
	got := Expand(New(nil, []string{"actionlint"}, nil), Config{})
	if !slices.Equal(got.Tools, []string{"actionlint"}) {
		t.Errorf("tools = %v, want [actionlint]", got.Tools)
	}
	if len(got.FileTypes) != 0 {
		t.Errorf("file types = %v, want empty", got.FileTypes)
	}

	// ...and is never pulled in by unrelated closures: actionlint is only
	// reachable through github-actions' requirements.
	got = Expand(New([]string{"markdown"}, nil, nil), Config{})
	if slices.Contains(got.Tools, "actionlint") {
		t.Errorf("unrelated closure pulled in actionlint: %v", got.Tools)
	}
	got = Expand(New(nil, []string{"github-actions"}, nil), Config{})
	if !slices.Contains(got.Tools, "actionlint") {
		t.Errorf("github-actions should require actionlint: %v", got.Tools)
	}
}

func TestExpandUnknownIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expand should panic on an unknown file type id")
		}
	}()
	Expand(New([]string{"fortran"}, nil, nil), Config{})
}

func TestExpandDeterministic(t *testing.T) {
	a := Expand(New([]string{"python", "shell"}, []string{"copier"}, nil), Config{})
	for range 20 {
		b := Expand(New([]string{"shell", "python"}, []string{"copier"}, nil), Config{})
		if !b.Equal(a) {
			t.Fatalf("Expand not deterministic: %+v vs %+v", b, a)
		}
	}
}
