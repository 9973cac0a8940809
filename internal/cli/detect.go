package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/calliecameron/toolstack/pkg/classify"
	"github.com/calliecameron/toolstack/pkg/config"
	"github.com/calliecameron/toolstack/pkg/metadata"
	"github.com/calliecameron/toolstack/pkg/pkgmgr"
	"github.com/calliecameron/toolstack/pkg/registry"
)

// detectOpts holds the command-line flags for the detect command.
type detectOpts struct {
	output   string // output file path (stdout if empty)
	noExpand bool   // print the raw observation without closing it
	refresh  bool   // bypass the package-listing cache
	noCache  bool   // disable the cache entirely
}

// detectCommand creates the detect command. It observes the current
// repository, closes the observed configuration over the registry, and
// prints it as YAML.
func (c *CLI) detectCommand() *cobra.Command {
	opts := detectOpts{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the repository's tooling configuration",
		Long: `Detect which file types and tools the current repository uses.

Files are enumerated with git, classified by path and shebang, and matched
against the registry. Installed python and node packages count as evidence
too. The result is closed over installer and configuration dependencies
unless --no-expand is given.

Examples:
  toolstack detect                   # print the expanded configuration
  toolstack detect -o .toolstack.yml # write it to a file
  toolstack detect --refresh         # re-query package managers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDetect(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noExpand, "no-expand", false, "skip dependency expansion")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the package-listing cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the package-listing cache")

	return cmd
}

func (c *CLI) runDetect(ctx context.Context, opts detectOpts) error {
	prog := newProgress(c.Logger)

	store, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	runner := pkgmgr.NewRunner()
	git := pkgmgr.NewGit(runner)
	uv := pkgmgr.NewUV(runner, store, listingTTL)
	nvm := pkgmgr.NewNvm(runner, store, listingTTL)

	detector := config.Detector{
		Files:    git.ListFiles,
		Classify: classify.Tags,
		Installed: map[registry.Ecosystem]func(context.Context) []string{
			registry.EcosystemPython: func(ctx context.Context) []string {
				return uv.InstalledPackages(ctx, opts.refresh)
			},
			registry.EcosystemNode: func(ctx context.Context) []string {
				return nvm.InstalledPackages(ctx, opts.refresh)
			},
		},
		Producers: metadata.DefaultProducers(uv, nvm),
		Logf:      c.Logger.Warnf,
	}

	cfg, err := detector.Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}

	if !opts.noExpand {
		cfg = config.Expand(cfg, config.Config{})
	}
	prog.done(fmt.Sprintf("Detected %d file types, %d tools", len(cfg.FileTypes), len(cfg.Tools)))

	return writeConfig(cfg, opts.output)
}

// writeConfig marshals cfg to YAML and writes it to path, or stdout when
// path is empty.
func writeConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if path == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	printSuccess("Wrote configuration")
	printFile(path)
	return nil
}

// readConfig loads a YAML configuration from path.
func readConfig(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
