package config

import (
	"context"
	"slices"
	"sync"

	"github.com/calliecameron/toolstack/pkg/metadata"
	"github.com/calliecameron/toolstack/pkg/registry"
)

// Detector observes a repository and produces a candidate Config. Every
// field is an external collaborator; the zero value of unused fields is
// tolerated so tests can wire only what they exercise.
type Detector struct {
	// Files enumerates the repository's tracked and untracked-but-not-ignored
	// files. A failure here aborts detection: without a file list there is
	// nothing to observe.
	Files func(ctx context.Context) ([]string, error)

	// Classify maps a path to identification tags. An empty result means the
	// file is unclassifiable, which is expected and skipped silently.
	Classify func(path string) []string

	// Installed lists the installed package names per ecosystem. The
	// collaborators degrade to an empty result on failure, so detection is
	// always best-effort.
	Installed map[registry.Ecosystem]func(ctx context.Context) []string

	// Producers compute the metadata attached to the result.
	Producers []metadata.Producer

	// Logf receives degradation notices; may be nil.
	Logf func(format string, args ...any)
}

// Detect produces a Config purely by observation: file types whose tags
// match a file, tools implied by a tag, an installed package, or a path
// pattern, plus whatever metadata the producers yield. No closure is
// applied; callers are expected to feed the result through [Expand].
//
// The external queries (file enumeration, per-ecosystem package listings)
// are independent and issued concurrently.
func (d Detector) Detect(ctx context.Context) (Config, error) {
	files, installed, err := d.observe(ctx)
	if err != nil {
		return Config{}, err
	}

	fileTypes := make(map[string]struct{})
	tools := make(map[string]struct{})

	for _, file := range files {
		tags := toSet(d.Classify(file))
		if len(tags) == 0 {
			continue
		}

		for _, id := range registry.FileTypeIDs() {
			if intersects(registry.MustFileType(id).Tags, tags) {
				fileTypes[id] = struct{}{}
			}
		}

		for _, id := range registry.ToolIDs() {
			tool := registry.MustTool(id)
			if intersects(tool.Tags, tags) || anyInstalled(tool, installed) {
				tools[id] = struct{}{}
				continue
			}
			for _, re := range tool.FileRegexes {
				if re.MatchString(file) {
					tools[id] = struct{}{}
					break
				}
			}
		}
	}

	md := metadata.Collect(ctx, d.Producers, d.Logf)
	return New(keys(fileTypes), keys(tools), md), nil
}

// observe issues the independent external queries concurrently and returns
// the sorted file list and the per-ecosystem installed-package sets.
func (d Detector) observe(ctx context.Context) ([]string, map[registry.Ecosystem]map[string]struct{}, error) {
	ecosystems := registry.Ecosystems()
	listings := make([][]string, len(ecosystems))

	var wg sync.WaitGroup
	var files []string
	var filesErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		files, filesErr = d.Files(ctx)
	}()

	for i, eco := range ecosystems {
		list := d.Installed[eco]
		if list == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			listings[i] = list(ctx)
		}()
	}
	wg.Wait()

	if filesErr != nil {
		return nil, nil, filesErr
	}
	slices.Sort(files)

	installed := make(map[registry.Ecosystem]map[string]struct{}, len(ecosystems))
	for i, eco := range ecosystems {
		installed[eco] = toSet(listings[i])
	}
	return files, installed, nil
}

// anyInstalled reports whether any of the tool's declared packages, in any
// ecosystem, is currently installed.
func anyInstalled(tool registry.Tool, installed map[registry.Ecosystem]map[string]struct{}) bool {
	for eco, packages := range tool.Packages {
		for name := range packages {
			if _, ok := installed[eco][name]; ok {
				return true
			}
		}
	}
	return false
}

func intersects(list []string, set map[string]struct{}) bool {
	for _, item := range list {
		if _, ok := set[item]; ok {
			return true
		}
	}
	return false
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, item := range list {
		set[item] = struct{}{}
	}
	return set
}
