package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algraphs/catalog"
	"github.com/katalvlaran/algraphs/utgraph"
)

// defaultGraph is the fixture queried when --graph is not given.
const defaultGraph = "network"

// rootOptions carries the persistent flags and the resolved runtime state
// shared by every subcommand.
type rootOptions struct {
	catalogPath string
	graphName   string
	jsonOut     bool
	logLevel    string

	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "algraphs",
		Short: "Query small undirected graphs",
		Long: `Query degrees, stars, neighborhoods and walks of undirected graphs.

Graphs come from the built-in catalog (cherry, banner, isolated, claw, paw,
network) or from a YAML catalog given with --catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initLogger()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	f := cmd.PersistentFlags()
	f.StringVar(&o.catalogPath, "catalog", "", "YAML catalog file (default: built-in fixtures)")
	f.StringVarP(&o.graphName, "graph", "g", defaultGraph, "graph name within the catalog")
	f.BoolVar(&o.jsonOut, "json", false, "print results as JSON")
	f.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newListCmd(o),
		newDegreeCmd(o),
		newMaxDegCmd(o),
		newStarCmd(o),
		newNeighborsCmd(o),
		newPathCmd(o),
		newMatrixCmd(o),
		newBenchCmd(o),
		newJokeCmd(o),
	)

	return cmd
}

// initLogger installs a text slog handler on errOut at the requested level.
func (o *rootOptions) initLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	o.logger = slog.New(slog.NewTextHandler(o.errOut, &slog.HandlerOptions{Level: level}))

	return nil
}

// graphs returns the active catalog: the --catalog file or the built-ins.
func (o *rootOptions) graphs() ([]catalog.GraphData, error) {
	if o.catalogPath == "" {
		return catalog.Graphs(), nil
	}
	graphs, err := catalog.LoadFile(o.catalogPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("catalog loaded",
		slog.String("path", o.catalogPath),
		slog.Int("graphs", len(graphs)))

	return graphs, nil
}

// loadGraph builds the graph selected with --graph.
func (o *rootOptions) loadGraph() (*utgraph.Graph, error) {
	graphs, err := o.graphs()
	if err != nil {
		return nil, err
	}
	d, err := catalog.Find(graphs, o.graphName)
	if err != nil {
		return nil, err
	}
	g, err := d.Build()
	if err != nil {
		return nil, err
	}
	o.logger.Info("graph built",
		slog.String("graph", d.Name),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()))

	return g, nil
}

// emit prints v as indented JSON under --json, otherwise the text line.
func (o *rootOptions) emit(v any, text string) error {
	if o.jsonOut {
		enc := json.NewEncoder(o.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(o.out, text)

	return err
}

// parseVertex converts a positional argument to a vertex index.
func parseVertex(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a vertex index", name, arg)
	}

	return v, nil
}
