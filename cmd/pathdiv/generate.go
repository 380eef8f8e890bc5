package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathdiv/builder"
	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/netfile"
)

type generateOptions struct {
	format    string
	out       string
	seed      int64
	minLength float64
	maxLength float64
	speed     float64
	spacing   float64
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic network document",
		Long:  "Generate writes a synthetic pedestrian network as a YAML or JSON document\n" +
			"that --network accepts. Segment lengths are drawn uniformly from\n" +
			"[--min-length, --max-length] and walked at --speed.",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.format, "format", "yaml", "document format (yaml, json)")
	pf.StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	pf.Int64Var(&opts.seed, "seed", 1, "random seed")
	pf.Float64Var(&opts.minLength, "min-length", 60, "shortest segment in metres")
	pf.Float64Var(&opts.maxLength, "max-length", 140, "longest segment in metres")
	pf.Float64Var(&opts.speed, "speed", builder.DefaultWalkingSpeed, "walking speed in metres per second")
	pf.Float64Var(&opts.spacing, "spacing", builder.DefaultSpacing, "drawing distance between neighbors")

	cmd.AddCommand(newGenerateGridCmd(opts), newGenerateRingCmd(opts))

	return cmd
}

func newGenerateGridCmd(opts *generateOptions) *cobra.Command {
	var rows, cols int
	var diagonals float64
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "A rows×cols street lattice with optional diagonal shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cons := []builder.Constructor{builder.Grid(rows, cols)}
			if diagonals > 0 {
				cons = append(cons, builder.Diagonals(rows, cols, diagonals))
			}

			return runGenerate(cmd, opts, cons...)
		},
	}
	f := cmd.Flags()
	f.IntVar(&rows, "rows", 5, "number of rows")
	f.IntVar(&cols, "cols", 5, "number of columns")
	f.Float64Var(&diagonals, "diagonals", 0, "probability of a diagonal shortcut per block")

	return cmd
}

func newGenerateRingCmd(opts *generateOptions) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "ring",
		Short: "A closed loop of n landmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts, builder.Ring(n))
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 12, "number of landmarks")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, cons ...builder.Constructor) error {
	if err := opts.validate(); err != nil {
		return err
	}
	g, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithSeed(opts.seed),
		builder.WithSpacing(opts.spacing),
		builder.WithSegmentFn(builder.UniformSegment(opts.minLength, opts.maxLength, opts.speed)),
	}, cons...)
	if err != nil {
		return err
	}

	if opts.out == "" {
		return writeNetwork(cmd.OutOrStdout(), g, opts.format)
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := writeNetwork(f, g, opts.format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeNetwork(w io.Writer, g *core.Graph, format string) error {
	doc, err := netfile.FromGraph(g)
	if err != nil {
		return err
	}

	return doc.Encode(w, format)
}

// validate rejects values the builder options would panic on.
func (o *generateOptions) validate() error {
	switch {
	case o.format != "yaml" && o.format != "json":
		return fmt.Errorf("unknown format %q (want yaml or json)", o.format)
	case o.minLength < 0 || o.maxLength < o.minLength:
		return fmt.Errorf("segment lengths must satisfy 0 <= min-length <= max-length, got %g and %g", o.minLength, o.maxLength)
	case o.speed <= 0:
		return fmt.Errorf("speed must be positive, got %g", o.speed)
	case o.spacing <= 0:
		return fmt.Errorf("spacing must be positive, got %g", o.spacing)
	default:
		return nil
	}
}
