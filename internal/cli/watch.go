package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/pipeline"
	"github.com/regiolab/regio/pkg/region"
	"github.com/regiolab/regio/pkg/rng"
)

// watchCommand creates the watch command, which animates region growth in
// the terminal round by round.
func (c *CLI) watchCommand() *cobra.Command {
	var opts generateOpts
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch region growth live in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd, &opts, interval)
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
	cmd.Flags().DurationVar(&interval, "interval", 50*time.Millisecond, "delay between rounds")

	return cmd
}

func (c *CLI) runWatch(cmd *cobra.Command, opts *generateOpts, interval time.Duration) error {
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
	if err := pipeOpts.ValidateForGenerate(); err != nil {
		return err
	}

	p := tea.NewProgram(
		newWatchModel(pipeOpts.Width, pipeOpts.Height),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	go func() {
		frames := region.SinkFunc(func(g *grid.Grid, remaining int) {
			p.Send(frameMsg{rows: g.Rows(), remaining: remaining})
			time.Sleep(interval)
		})

		gen, err := region.New(pipeOpts.Size(), pipeOpts.RegionOptions(), rng.New(pipeOpts.Seed), frames)
		if err != nil {
			p.Send(doneMsg{err: err})
			return
		}
		_, err = gen.Run(ctx)
		p.Send(doneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(watchModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
