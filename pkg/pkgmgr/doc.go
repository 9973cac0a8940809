// Package pkgmgr shells out to the repository's version control and package
// manager tooling: git for file enumeration, uv for the python ecosystem and
// nvm/npm for the node ecosystem.
//
// These are the external collaborators of the configuration engine. Each
// call is bounded by its context, and queries used during detection degrade
// to an empty result on failure (a missing package manager must not prevent
// a best-effort detection). Commands run through the [Runner] interface so
// tests can substitute a fake.
//
// Installed-package listings can be memoized through a [cache.Cache], since
// invoking npm in particular is slow; a refresh flag bypasses the cache.
package pkgmgr
