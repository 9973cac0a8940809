// Package pkg provides the core libraries for toolstack configuration
// management.
//
// # Overview
//
// Toolstack maintains a curated registry of development tools, detects which
// of them a repository uses, and closes the result over installer and
// configuration dependencies. The pkg directory is organized as:
//
//  1. [registry] - The curated file type and tool tables
//  2. [config] - The Config value type, detection, expansion, projection
//  3. [classify], [pkgmgr], [metadata] - Repository observation
//  4. [cache], [errors], [buildinfo], [render], [pyversion] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Repository files + installed packages
//	         ↓
//	config.Detector (classify, pkgmgr, metadata)
//	         ↓
//	config.Expand (fixed point over registry edges)
//	         ↓
//	config.Packages (per-ecosystem pinned manifests)
package pkg
