package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/internal/logger"
	"github.com/katalvlaran/orienteer/mapio"
	"github.com/katalvlaran/orienteer/pool"
	"github.com/katalvlaran/orienteer/prepare"
	"github.com/katalvlaran/orienteer/render"
	"github.com/katalvlaran/orienteer/run"
	"github.com/katalvlaran/orienteer/store"
)

func newSolveCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search a map for the best closed walk from its start vertex",
		Args:  cobra.NoArgs,
		RunE:  runSolve(input),
	}
	f := cmd.Flags()
	f.StringVarP(&input.mapPath, "map", "m", "", "map document (.json, .yaml)")
	f.StringVar(&input.storedMap, "stored", "", "name of a stored map")
	f.Int64VarP(&input.budget, "budget", "b", 0, "time budget (default from config)")
	f.BoolVarP(&input.parallel, "parallel", "p", false, "spread the search over the worker pool")
	f.IntVarP(&input.workers, "workers", "w", 0, "worker count (default from config, 0 = CPUs)")
	f.DurationVar(&input.timeout, "timeout", 0, "stop the search after this long and report the best so far")
	f.StringVar(&input.dotPath, "dot", "", "write the map with the best walk highlighted (.dot, .svg, .png)")
	f.BoolVar(&input.record, "record", false, "record the run in the store")
	cmd.MarkFlagsMutuallyExclusive("map", "stored")
	cmd.MarkFlagsOneRequired("map", "stored")

	return cmd
}

func runSolve(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		cfg := input.cfg
		flags := cmd.Flags()

		p := run.Params{Budget: cfg.Budget, Parallel: cfg.Parallel}
		if flags.Changed("budget") {
			p.Budget = input.budget
		}
		if flags.Changed("parallel") {
			p.Parallel = input.parallel
		}
		workers := cfg.Workers
		if flags.Changed("workers") {
			workers = input.workers
		}
		timeout := cfg.Timeout
		if flags.Changed("timeout") {
			timeout = input.timeout
		}

		name, doc, err := loadDocument(input)
		if err != nil {
			return err
		}
		g, err := mapio.ToGraph(doc)
		if err != nil {
			return err
		}
		net, err := prepare.Prepare(g, prepare.WithLogger(log))
		if err != nil {
			return err
		}

		wp := pool.New(workers, pool.WithLogger(log))
		defer wp.Close()
		c := run.New(net, run.WithPool(wp), run.WithLogger(log))
		defer c.Close()

		runCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		if err := c.Start(runCtx, p); err != nil {
			return err
		}
		if err := c.Wait(context.Background()); err != nil {
			return err
		}

		res, sum := c.BestPath(), c.Summary()
		printResult(cmd.OutOrStdout(), p, res, sum)

		if input.dotPath != "" {
			c.MarkBestPath(g)
			if err := writeImage(ctx, g, input.dotPath, ""); err != nil {
				return err
			}
		}
		if input.record {
			st, err := store.Open(cfg.StorePath)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.RecordRun(store.NewRunRecord(name, p, sum)); err != nil {
				return err
			}
		}

		return nil
	}
}

// loadDocument reads the map named by --map or --stored. The returned name
// identifies the map in the run history.
func loadDocument(input *Input) (string, *mapio.Document, error) {
	if input.storedMap != "" {
		st, err := store.Open(input.cfg.StorePath)
		if err != nil {
			return "", nil, err
		}
		defer st.Close()
		doc, err := st.LoadMap(input.storedMap)

		return input.storedMap, doc, err
	}
	doc, err := mapio.Load(input.mapPath)
	if err != nil {
		return "", nil, err
	}
	base := filepath.Base(input.mapPath)

	return strings.TrimSuffix(base, filepath.Ext(base)), doc, nil
}

// writeImage renders g to out. An empty format is taken from the file
// extension.
func writeImage(ctx context.Context, g *core.Graph, out, format string) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(out), ".")
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	dot, err := render.DOT(g)
	if err != nil {
		return err
	}
	fh, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "create image")
	}
	if err := render.Render(ctx, dot, f, fh); err != nil {
		fh.Close()
		return err
	}

	return errors.Wrap(fh.Close(), "close image")
}
