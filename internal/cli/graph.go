package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/regiolab/regio/pkg/adjacency"
	"github.com/regiolab/regio/pkg/pipeline"
	"github.com/regiolab/regio/pkg/render"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	width     int
	height    int
	classes   int
	factor    int
	instances int
	skips     int
	kernel    int
	seed      uint64
	format    string // "dot" or "svg"
	output    string
	counts    bool // annotate nodes with cell counts
	noCache   bool
}

// graphCommand creates the graph command, which renders the region
// adjacency structure instead of the raster image.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the region adjacency graph",
		Long: `Graph generates a decomposition and emits which regions touch which,
either as Graphviz DOT source or rendered to SVG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "dot" && opts.format != "svg" {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}
			return c.runGraph(cmd, &opts)
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
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for dot)")
	cmd.Flags().BoolVar(&opts.counts, "counts", false, "annotate nodes with cell counts")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the cache")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, opts *graphOpts) error {
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

	prog := newProgress(c.Logger)
	g, err := runner.Generate(ctx, pipeOpts)
	if err != nil {
		return err
	}

	graph := adjacency.Build(g)
	prog.done(fmt.Sprintf("Built adjacency graph: %d regions, %d edges", len(graph.Labels), len(graph.Edges)))

	dotOpts := adjacency.Options{
		Palette:       render.NewPalette(graph.Labels),
		ShowCellCount: opts.counts,
	}

	dot := adjacency.ToDOT(graph, dotOpts)

	var data []byte
	switch opts.format {
	case "svg":
		data, err = adjacency.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
	default:
		data = []byte(dot)
	}

	if opts.output == "" && opts.format == "dot" {
		fmt.Print(string(data))
		return nil
	}

	path := opts.output
	if path == "" {
		path = "adjacency." + opts.format
	} else if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != opts.format {
		path += "." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Wrote adjacency graph")
	printFile(path)
	return nil
}
