package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathdiv/diverse"
	"github.com/katalvlaran/pathdiv/internal/config"
	"github.com/katalvlaran/pathdiv/report"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type routeOptions struct {
	from, to string
	format   string
	rounds   int
}

func newRouteCmd() *cobra.Command {
	opts := &routeOptions{}
	cmd := &cobra.Command{
		Use:   "route --from A --to B",
		Short: "Print up to k diverse routes and their diversity metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoute(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "start landmark")
	f.StringVar(&opts.to, "to", "", "destination landmark")
	f.IntP("k", "k", config.DefaultK, "number of routes to extract")
	f.StringVar(&opts.format, "format", formatTable, "output format (table, json)")
	f.IntVar(&opts.rounds, "rounds", 1, "repeat the request on the same visit counters")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runRoute(cmd *cobra.Command, opts *routeOptions) error {
	if opts.format != formatTable && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatTable, formatJSON)
	}
	if opts.rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", opts.rounds)
	}
	env, err := setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	for round := 1; round <= opts.rounds; round++ {
		rep, err := report.Diversify(env.graph, opts.from, opts.to, env.cfg.K, diverse.WithLogger(env.log))
		if err != nil {
			return err
		}
		if opts.format == formatJSON {
			if err := enc.Encode(rep); err != nil {
				return err
			}
			continue
		}
		if opts.rounds > 1 {
			fmt.Fprintf(out, "=== Round %d ===\n\n", round)
		}
		if err := report.WriteText(out, rep); err != nil {
			return err
		}
	}

	return nil
}
