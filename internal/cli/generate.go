package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regiolab/regio/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	width     int    // grid width in cells
	height    int    // grid height in cells
	classes   int    // number of region classes
	factor    int    // label spacing between seeds
	instances int    // number of seeds (0 means one per class)
	skips     int    // growth throttle period
	kernel    int    // neighborhood diameter (odd, >= 3)
	seed      uint64 // random seed
	scale     int    // output pixels per cell
	output    string // output file or base path
	noCache   bool   // bypass the cache
	refresh   bool   // regenerate even on a cache hit
}

// generateCommand creates the generate command, the main entry point for
// producing a decomposition and writing its artifacts to disk.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a region decomposition and write it to disk",
		Long: `Generate seeds a grid with randomly placed region labels, grows the
regions until every cell is claimed, and writes the result in the
requested formats (png, svg, json; comma-separated).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts, parseFormats(formatsStr))
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "grid width in cells (default 128)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "grid height in cells (default 96)")
	cmd.Flags().IntVarP(&opts.classes, "classes", "c", 0, "number of region classes (default 10)")
	cmd.Flags().IntVar(&opts.factor, "factor", 0, "label spacing between seeds (default 10)")
	cmd.Flags().IntVar(&opts.instances, "instances", 0, "number of seeds (default one per class)")
	cmd.Flags().IntVar(&opts.skips, "skips", 0, "growth throttle period (default 3)")
	cmd.Flags().IntVar(&opts.kernel, "kernel", 0, "neighborhood diameter, odd (default 5)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default 42)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "output pixels per cell (default 4)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if cached")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts, formats []string) error {
	ctx := cmd.Context()

	pipeOpts := pipeline.Options{
		Width:     opts.width,
		Height:    opts.height,
		Classes:   opts.classes,
		Factor:    opts.factor,
		Instances: opts.instances,
		Skips:     opts.skips,
		Kernel:    opts.kernel,
		Seed:      opts.seed,
		Scale:     opts.scale,
		Formats:   formats,
		Refresh:   opts.refresh,
	}
	if cfg, err := c.loadConfig(); err == nil {
		cfg.applyDefaults(&pipeOpts)
	} else {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	sp := newSpinnerWithContext(ctx, "Growing regions...")
	sp.Start()
	result, err := runner.Execute(ctx, pipeOpts)
	sp.Stop()
	if err != nil {
		return err
	}

	size := result.Grid.Size()
	printSuccess("Generated %dx%d decomposition", size.W, size.H)
	printStats(result.Stats.RegionCount, result.Stats.Rounds, result.CacheInfo.GridHit)

	for _, format := range formats {
		path := outputPath(opts.output, format)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	return nil
}
