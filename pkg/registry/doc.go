// Package registry holds the static knowledge base that drives configuration
// expansion and detection.
//
// The registry is two read-only lookup tables:
//
//   - File types ([FileType]): each maps to the tools that operate on files
//     of that type and the identification tags that mark a file as belonging
//     to it.
//   - Tools ([Tool]): each maps to the file types its own configuration
//     files belong to, the tool that installs it (if any), the tools it
//     requires, identification tags and path patterns, and the pinned
//     packages that realize it in each ecosystem.
//
// The tables are hand-curated, constructed once at process start, and never
// mutated. Consistency is checked in package init: dangling id references,
// installer cycles, and conflicting package pins all panic immediately,
// since they indicate a bug in the tables rather than a runtime condition.
// For the same reason, [MustFileType] and [MustTool] panic on unknown ids
// instead of returning an error.
package registry
