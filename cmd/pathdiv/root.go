package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathdiv/bfs"
	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/internal/config"
	"github.com/katalvlaran/pathdiv/internal/logging"
)

// envFile is the --env-file flag shared by every command.
var envFile string

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "pathdiv",
		Short:        "Find diverse walking routes between two landmarks",
		Version:      version,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&envFile, "env-file", "", "file with PATHDIV_* variables (default .env if present)")
	pf.String("network", "", "YAML or JSON network document")
	pf.String("nodes", "", "nodes file: name,x,y per line")
	pf.String("edges", "", "edges file: a,b,weight,travel_time per line")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (auto, text, json)")

	root.AddCommand(newRouteCmd(), newServeCmd(version), newGenerateCmd(), newVersionCmd(version))

	return root
}

// environment is what every working command needs.
type environment struct {
	cfg   *config.Config
	log   *logrus.Logger
	graph *core.Graph
}

// setup resolves configuration for cmd, builds the logger and loads the network.
func setup(cmd *cobra.Command) (*environment, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	g, err := cfg.Source().Load()
	if err != nil {
		return nil, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	entry := log.WithFields(logrus.Fields{
		"vertices":   g.VertexCount(),
		"edges":      g.EdgeCount(),
		"components": len(comps),
	})
	if len(comps) > 1 {
		entry.Warn("network is not connected; some landmark pairs have no route")
	} else {
		entry.Debug("network loaded")
	}

	return &environment{cfg: cfg, log: log, graph: g}, nil
}
