package pkgmgr

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/calliecameron/toolstack/pkg/cache"
	"github.com/calliecameron/toolstack/pkg/errors"
	"github.com/calliecameron/toolstack/pkg/pyversion"
	"github.com/calliecameron/toolstack/pkg/registry"
)

var (
	releaseRe     = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)
	fullReleaseRe = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)
)

// UV is a client for the uv python package manager.
type UV struct {
	runner Runner
	cache  cache.Cache
	ttl    time.Duration
}

// NewUV creates a uv client. A nil runner uses the default exec runner; a
// nil cache disables listing memoization.
func NewUV(runner Runner, c cache.Cache, ttl time.Duration) *UV {
	if runner == nil {
		runner = NewRunner()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &UV{runner: runner, cache: c, ttl: ttl}
}

// uv returns the uv binary to invoke. The UV environment variable overrides
// the default so the global uv is used even when a dependency installed a
// different version inside the virtualenv.
func (u *UV) uv() string {
	if v := os.Getenv("UV"); v != "" {
		return v
	}
	return "uv"
}

// Version returns uv's own version string, e.g. "0.9.2".
func (u *UV) Version(ctx context.Context) (string, error) {
	out, err := u.runner.Run(ctx, u.uv(), "--version")
	if err != nil {
		return "", err
	}
	v := releaseRe.FindString(string(out))
	if v == "" {
		return "", errors.New(errors.ErrCodeInvalidVersion, "can't find uv version in %q", strings.TrimSpace(string(out)))
	}
	return v, nil
}

// BuildSpec returns the build-system requirement uv would write into a fresh
// project, e.g. "uv_build>=0.9.2,<0.10.0". It initializes a bare package in
// a temporary directory and reads the generated pyproject.toml.
func (u *UV) BuildSpec(ctx context.Context) (string, error) {
	dir, err := os.MkdirTemp("", "toolstack-uv-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	_, err = u.runner.Run(ctx, u.uv(),
		"init", "--name", "temp", "--bare", "--package", "--build-backend", "uv",
		"--vcs", "none", "--author-from", "none", "--no-workspace", dir)
	if err != nil {
		return "", err
	}

	var pyproject struct {
		BuildSystem struct {
			Requires []string `toml:"requires"`
		} `toml:"build-system"`
	}
	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return "", err
	}
	if err := toml.Unmarshal(data, &pyproject); err != nil {
		return "", err
	}
	if len(pyproject.BuildSystem.Requires) == 0 {
		return "", errors.New(errors.ErrCodeInternal, "can't find uv build spec")
	}
	return pyproject.BuildSystem.Requires[0], nil
}

// PythonVersion resolves the exact interpreter version for a major.minor
// hint. An existing .python-version file wins when it agrees with the hint;
// otherwise the newest matching cpython release known to uv is used.
func (u *UV) PythonVersion(ctx context.Context, hint string) (string, error) {
	hintV, err := pyversion.Parse(hint)
	if err != nil {
		return "", err
	}
	if existing := readVersionFile(".python-version"); existing != "" {
		if v, err := pyversion.Parse(existing); err == nil && v == hintV {
			return existing, nil
		}
	}
	return u.defaultPythonVersion(ctx, hint)
}

func (u *UV) defaultPythonVersion(ctx context.Context, hint string) (string, error) {
	out, err := u.runner.Run(ctx, u.uv(), "python", "list", "--output-format=json", "cpython@"+hint)
	if err != nil {
		return "", err
	}
	var listed []struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(out, &listed); err != nil {
		return "", err
	}

	var versions []string
	for _, entry := range listed {
		if fullReleaseRe.MatchString(entry.Version) {
			versions = append(versions, entry.Version)
		}
	}
	if len(versions) == 0 {
		return "", errors.New(errors.ErrCodeInvalidVersion, "can't find a default python version for %q", hint)
	}
	slices.SortFunc(versions, compareRelease)
	return versions[len(versions)-1], nil
}

// InstalledPackages returns the names of the python packages installed in
// the current environment. Any failure degrades to an empty result so
// detection stays best-effort. Results are cached unless refresh is set.
func (u *UV) InstalledPackages(ctx context.Context, refresh bool) []string {
	return cachedListing(ctx, u.cache, string(registry.EcosystemPython), u.ttl, refresh, func() []string {
		out, err := u.runner.Run(ctx, u.uv(), "pip", "list", "--format=json")
		if err != nil {
			return nil
		}
		var pkgs []struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(out, &pkgs); err != nil {
			return nil
		}
		names := make([]string, 0, len(pkgs))
		for _, p := range pkgs {
			names = append(names, p.Name)
		}
		return names
	})
}

// compareRelease orders "x.y.z" strings numerically.
func compareRelease(a, b string) int {
	as := strings.SplitN(a, ".", 3)
	bs := strings.SplitN(b, ".", 3)
	for i := range as {
		if c := len(as[i]) - len(bs[i]); c != 0 {
			// Numeric strings of different lengths order by length.
			if c < 0 {
				return -1
			}
			return 1
		}
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return 0
}

// readVersionFile reads a single-line version file such as .python-version
// or .nvmrc, returning "" when absent.
func readVersionFile(name string) string {
	data, err := os.ReadFile(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// cachedListing memoizes a package-name listing as a JSON array.
func cachedListing(ctx context.Context, c cache.Cache, ecosystem string, ttl time.Duration, refresh bool, fetch func() []string) []string {
	key := cache.ListingKey(ecosystem)
	if !refresh {
		if data, hit, err := c.Get(ctx, key); err == nil && hit {
			var names []string
			if json.Unmarshal(data, &names) == nil {
				return names
			}
		}
	}
	names := fetch()
	if len(names) > 0 {
		if data, err := json.Marshal(names); err == nil {
			_ = c.Set(ctx, key, data, ttl)
		}
	}
	return names
}
