// Package config implements the scaffolding configuration model and the
// closure engine that maintains it.
//
// A [Config] is the repo-visible state: the set of file types present, the
// set of tools in use, and an opaque metadata bag. Configs are immutable
// values; every operation returns a new Config.
//
// The three operations are:
//
//   - [Expand]: the closure computation. Given a new and an existing Config,
//     it returns the smallest superset of their union that is closed under
//     the registry's edges (file type -> tools, tool -> installer/required
//     tools, tool -> config file types).
//   - [Detector.Detect]: the inverse. It observes a repository (file list,
//     installed packages) and produces a candidate Config, which callers are
//     expected to feed through Expand.
//   - [Packages]: projects a Config into the pinned package manifest for one
//     ecosystem.
//
// Expand and Packages are pure functions of their inputs and the static
// registry, and are safe for concurrent use.
package config
