package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spheregrid/pkg/pipeline"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	output   string
	formats  string
	seed     uint32
	scale    float64
	lenient  bool
	noCache  bool
	refresh  bool
	rsvg     bool
	detailed bool
}

// generateCommand creates the generate command for drawing a grid.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [config]",
		Short: "Render a grid configuration",
		Long: `Render a grid configuration to one or more output formats.

The configuration may be TOML, YAML or JSON; the file extension picks the
decoder. Without an argument the built-in sample grid is rendered.

Output files are named after --output (or the config file) with one
extension per format.`,
		Example: `  # SVG of the built-in sample
  spheregrid generate

  # PNG and PDF of a custom grid with a fixed star field
  spheregrid generate grid.toml -f png,pdf --seed 42 -o out/grid

  # Graphviz diagram of the node graph (writes spheregrid.topology.svg)
  spheregrid generate -f topology --detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, configArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path prefix (default: config name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output formats: svg, png, pdf, json, dot, topology (comma-separated)")
	cmd.Flags().Uint32Var(&opts.seed, "seed", 0, "star field seed (default: config seed)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "skip edges with unknown endpoints instead of failing")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results and regenerate")
	cmd.Flags().BoolVar(&opts.rsvg, "rsvg", false, "rasterize PNG with rsvg-convert")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include state and requirements in DOT and topology labels")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, path string, opts generateOptions) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	pipeOpts := pipeline.Options{
		Formats:      parseFormats(opts.formats),
		Scale:        opts.scale,
		Lenient:      opts.lenient,
		Refresh:      opts.refresh,
		UseConverter: opts.rsvg,
		Detailed:     opts.detailed,
		Logger:       c.Logger,
	}
	if cmd.Flags().Changed("seed") {
		pipeOpts.Seed = &opts.seed
	}
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s...", configName(path)))
	spinner.Start()
	result, err := runner.Execute(ctx, cfg, pipeOpts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	paths := outputPaths(opts.output, path, pipeOpts.Formats)
	if err := writeArtifacts(ctx, paths, result.Artifacts); err != nil {
		return err
	}

	printSuccess("Generated %s", StyleHighlight.Render(configName(path)))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.SceneHit && result.CacheInfo.RenderHit)
	for _, format := range pipeOpts.Formats {
		printFile(paths[format])
	}
	for _, w := range result.Scene.Warnings {
		printWarning("%s", w)
	}
	printDetail("scene %s", result.Scene.ID)
	if path == "" {
		printNextStep("Start your own grid", "spheregrid sample > grid.toml")
	}
	return nil
}

// writeArtifacts writes each artifact to its path, creating directories as
// needed.
func writeArtifacts(ctx context.Context, paths map[string]string, artifacts map[string][]byte) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	for format, out := range paths {
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(out, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Debug("wrote artifact", "format", format, "path", out, "bytes", len(artifacts[format]))
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))
	return nil
}

// outputPaths maps each format to its output file. A single format with an
// explicit file extension is written to output verbatim; otherwise output
// (or the config base name) is used as a prefix.
func outputPaths(output, configPath string, formats []string) map[string]string {
	prefix := output
	if prefix == "" {
		prefix = appName
		if configPath != "" {
			base := filepath.Base(configPath)
			prefix = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}

	ext := strings.TrimPrefix(filepath.Ext(prefix), ".")
	if pipeline.ValidFormats[ext] {
		if len(formats) == 1 && formats[0] == ext {
			return map[string]string{ext: prefix}
		}
		prefix = strings.TrimSuffix(prefix, "."+ext)
	}

	paths := make(map[string]string, len(formats))
	for _, f := range formats {
		paths[f] = prefix + "." + pipeline.Extension(f)
	}
	return paths
}
