package registry

import "regexp"

// fileTypes maps each file type id to the tools that operate on it and the
// tags that identify it.
var fileTypes = map[string]FileType{
	"shell": {
		Tools: []string{"shellcheck", "shfmt"},
		Tags:  []string{"shell"},
	},
	"python": {
		Tools: []string{"ruff", "mypy", "ast-grep"},
		Tags:  []string{"python", "pyi"},
	},
	"javascript": {
		Tools: []string{"prettier", "eslint"},
		Tags:  []string{"javascript"},
	},
	"html": {
		Tools: []string{"prettier", "htmlvalidate"},
		Tags:  []string{"html"},
	},
	"css": {
		Tools: []string{"prettier", "stylelint"},
		Tags:  []string{"css"},
	},
	"markdown": {
		Tools: []string{"prettier", "markdownlint"},
		Tags:  []string{"markdown"},
	},
	"json": {
		Tools: []string{"prettier"},
		Tags:  []string{"json"},
	},
	"yaml": {
		Tools: []string{"prettier", "yamllint"},
		Tags:  []string{"yaml"},
	},
	"toml": {
		Tools: []string{"tombi"},
		Tags:  []string{"toml"},
	},
}

// tools maps each tool id to its dependency edges, identification rules and
// pinned packages.
var tools = map[string]Tool{
	"uv": {
		ConfigFileTypes: []string{
			// also .python-version, uv.lock
			"toml",   // pyproject.toml
			"shell",  // dependency install/update scripts
			"python", // outdated-dependency report script
		},
		Requires: []string{"python-license-checker"},
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"frozendict": "2.4.6",
				"packaging":  "25.0",
			},
		},
	},
	"copier": {
		ConfigFileTypes: []string{
			"yaml", // .copier-answers.yml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"cookiecutter":               "2.6.0",
				"copier":                     "9.10.2",
				"copier-template-extensions": "0.3.3",
				"identify":                   "2.6.15",
			},
		},
	},
	"pre-commit": {
		ConfigFileTypes: []string{
			"yaml", // .pre-commit-config.yaml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"pre-commit": "4.3.0",
			},
		},
	},
	"python-license-checker": {
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"licensecheck": "2025.1.0",
			},
		},
	},
	"npm": {
		ConfigFileTypes: []string{
			// also .nvmrc, .npmrc
			"json",  // package.json, package-lock.json
			"shell", // dependency install/update scripts
		},
		Requires: []string{"node-license-checker"},
	},
	"node-license-checker": {
		InstalledBy: "npm",
		Packages: map[Ecosystem]map[string]string{
			EcosystemNode: {
				"license-checker-rseidelsohn": "4.4.2",
			},
		},
	},
	"prettier": {
		ConfigFileTypes: []string{
			// also .prettierignore
			"json", // package.json
		},
		InstalledBy: "npm",
		Packages: map[Ecosystem]map[string]string{
			EcosystemNode: {
				"prettier": "3.6.2",
			},
		},
	},
	"shellcheck": {
		// configured via .shellcheckrc
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"shellcheck-py": "0.11.0.1",
			},
		},
	},
	"shfmt": {
		// configured via .editorconfig
	},
	"bats": {
		ConfigFileTypes: []string{
			"shell", // test runner script
		},
		InstalledBy: "npm",
		Tags:        []string{"bats"},
		Packages: map[Ecosystem]map[string]string{
			EcosystemNode: {
				"bats":         "1.12.0",
				"bats-assert":  "2.2.0",
				"bats-support": "0.3.0",
			},
		},
	},
	"ruff": {
		ConfigFileTypes: []string{
			"toml", // pyproject.toml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"ruff": "0.14.0",
			},
		},
	},
	"mypy": {
		ConfigFileTypes: []string{
			"toml", // pyproject.toml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"mypy": "1.18.2",
			},
		},
	},
	"pytest": {
		ConfigFileTypes: []string{
			"toml", // pyproject.toml
		},
		InstalledBy: "uv",
		FileRegexes: []*regexp.Regexp{
			rx(`(.*/)?conftest\.py`),
		},
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"pytest":                  "8.4.2",
				"pytest-cov":              "7.0.0",
				"pytest-custom_exit_code": "0.3.0",
			},
		},
	},
	"eslint": {
		ConfigFileTypes: []string{
			"javascript", // eslint.config.mjs
		},
		InstalledBy: "npm",
		Packages: map[Ecosystem]map[string]string{
			EcosystemNode: {
				"@eslint/compat":         "1.4.0",
				"@eslint/js":             "9.37.0",
				"eslint":                 "9.37.0",
				"eslint-config-prettier": "10.1.8",
				"globals":                "16.4.0",
			},
		},
	},
	"htmlvalidate": {
		ConfigFileTypes: []string{
			"json", // .htmlvalidate.json
		},
		InstalledBy: "npm",
		Packages: map[Ecosystem]map[string]string{
			EcosystemNode: {
				"html-validate": "10.1.1",
			},
		},
	},
	"stylelint": {
		ConfigFileTypes: []string{
			"json", // package.json
		},
		InstalledBy: "npm",
		Packages: map[Ecosystem]map[string]string{
			EcosystemNode: {
				"stylelint":                 "16.25.0",
				"stylelint-config-standard": "39.0.1",
			},
		},
	},
	"markdownlint": {
		ConfigFileTypes: []string{
			"json", // .markdownlint.json
		},
		InstalledBy: "npm",
		Packages: map[Ecosystem]map[string]string{
			EcosystemNode: {
				"markdownlint-cli2": "0.18.1",
			},
		},
	},
	"yamllint": {
		ConfigFileTypes: []string{
			"yaml", // .yamllint.yml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"yamllint": "1.37.1",
			},
		},
	},
	"tombi": {
		ConfigFileTypes: []string{
			"toml", // pyproject.toml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"tombi": "0.6.25",
			},
		},
	},
	"ast-grep": {
		ConfigFileTypes: []string{
			"yaml", // sgconfig.yml, .ast_grep/*.yml
		},
		InstalledBy: "uv",
		FileRegexes: []*regexp.Regexp{
			rx(`\.ast_grep/.*`),
		},
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"ast-grep-cli": "0.39.6",
			},
		},
	},
	"typos": {
		ConfigFileTypes: []string{
			"toml", // pyproject.toml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"typos": "1.38.1",
			},
		},
	},
	"bump-my-version": {
		ConfigFileTypes: []string{
			"toml", // pyproject.toml
		},
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"bump-my-version": "1.2.4",
			},
		},
	},
	"gitleaks": {
		ConfigFileTypes: []string{
			"toml", // .gitleaks.toml
		},
	},
	"github-actions": {
		ConfigFileTypes: []string{
			"yaml", // .github/workflows/*.yml
		},
		Requires: []string{"actionlint", "zizmor", "gha-update"},
		FileRegexes: []*regexp.Regexp{
			rx(`\.github/workflows/.*.yml`),
		},
	},
	"actionlint": {},
	"zizmor": {
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"zizmor": "1.14.2",
			},
		},
	},
	"gha-update": {
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"gha-update": "0.2.0",
			},
		},
	},
	"gitlint": {
		// configured via .gitlint
		InstalledBy: "uv",
		Packages: map[Ecosystem]map[string]string{
			EcosystemPython: {
				"gitlint": "0.19.1",
			},
		},
	},
}
