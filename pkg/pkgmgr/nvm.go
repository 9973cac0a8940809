package pkgmgr

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/calliecameron/toolstack/pkg/cache"
	"github.com/calliecameron/toolstack/pkg/registry"
)

// Nvm is a client for nvm-managed node and npm.
type Nvm struct {
	runner Runner
	cache  cache.Cache
	ttl    time.Duration
}

// NewNvm creates an nvm client. A nil runner uses the default exec runner; a
// nil cache disables listing memoization.
func NewNvm(runner Runner, c cache.Cache, ttl time.Duration) *Nvm {
	if runner == nil {
		runner = NewRunner()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Nvm{runner: runner, cache: c, ttl: ttl}
}

// NodeVersion returns the node version the repository should use: the
// contents of .nvmrc when present, otherwise nvm's current stable version.
func (n *Nvm) NodeVersion(ctx context.Context) (string, error) {
	if existing := readVersionFile(".nvmrc"); existing != "" {
		return existing, nil
	}
	out, err := n.runner.Run(ctx, "bash", "-c", `source "${NVM_DIR}/nvm.sh" && nvm version stable`)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// InstalledPackages returns the names of the node packages installed in the
// repository. Any failure degrades to an empty result so detection stays
// best-effort. Results are cached unless refresh is set.
func (n *Nvm) InstalledPackages(ctx context.Context, refresh bool) []string {
	return cachedListing(ctx, n.cache, string(registry.EcosystemNode), n.ttl, refresh, func() []string {
		out, err := n.runner.Run(ctx, "bash", "-c", `source "${NVM_DIR}/nvm.sh" && nvm exec --silent npm list --json`)
		if err != nil {
			return nil
		}
		var listing struct {
			Dependencies map[string]any `json:"dependencies"`
		}
		if err := json.Unmarshal(out, &listing); err != nil {
			return nil
		}
		names := make([]string, 0, len(listing.Dependencies))
		for name := range listing.Dependencies {
			names = append(names, name)
		}
		return names
	})
}
