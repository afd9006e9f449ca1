package cli

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/builder"
	"github.com/katalvlaran/orienteer/internal/logger"
	"github.com/katalvlaran/orienteer/mapio"
	"github.com/katalvlaran/orienteer/store"
)

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample a random map on a grid or build a fixed-shape map",
		Args:  cobra.NoArgs,
		RunE:  runGenerate(input),
	}
	f := cmd.Flags()
	f.StringVar(&input.shape, "shape", shapeRandom, "map shape: random, star, path, cycle, complete")
	f.IntVar(&input.size, "size", 0, "grid side length for random maps, vertex count otherwise (default from config)")
	f.Float64Var(&input.spawnRate, "spawn-rate", 0, "probability that a grid cell stays empty (default from config)")
	f.Int64Var(&input.seed, "seed", 0, "random seed (default from config, 0 = current time)")
	f.StringVarP(&input.outPath, "out", "o", "", "write the map document here (.json, .yaml)")
	f.StringVar(&input.saveAs, "save", "", "store the map under this name")

	return cmd
}

func runGenerate(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg := input.cfg
		flags := cmd.Flags()
		if input.outPath == "" && input.saveAs == "" {
			return errors.New("generate: need --out or --save")
		}

		size, rate, seed := cfg.MapSize, cfg.SpawnRate, cfg.Seed
		if flags.Changed("size") {
			size = input.size
		}
		if flags.Changed("spawn-rate") {
			rate = input.spawnRate
		}
		if flags.Changed("seed") {
			seed = input.seed
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		if rate < 0 || rate > 1 {
			return errors.Errorf("generate: spawn rate %g not in [0,1]", rate)
		}

		ctor, err := shapeConstructor(input.shape, size)
		if err != nil {
			return err
		}
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithSpawnRate(rate),
		}, ctor)
		if err != nil {
			return err
		}
		doc, err := mapio.FromGraph(g, rate)
		if err != nil {
			return err
		}
		logger.FromContext(cmd.Context()).WithFields(logrus.Fields{
			"shape":    input.shape,
			"seed":     seed,
			"vertices": g.VertexCount(),
			"roads":    g.EdgeCount(),
		}).Info("map generated")

		if input.outPath != "" {
			if err := mapio.Save(input.outPath, doc); err != nil {
				return err
			}
		}
		if input.saveAs != "" {
			st, err := store.Open(cfg.StorePath)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.SaveMap(input.saveAs, doc); err != nil {
				return err
			}
		}

		return nil
	}
}

const shapeRandom = "random"

func shapeConstructor(shape string, size int) (builder.Constructor, error) {
	switch shape {
	case shapeRandom:
		return builder.RandomMap(size), nil
	case "star":
		return builder.Star(size), nil
	case "path":
		return builder.Path(size), nil
	case "cycle":
		return builder.Cycle(size), nil
	case "complete":
		return builder.Complete(size), nil
	default:
		return nil, errors.Errorf("generate: unknown shape %q", shape)
	}
}
