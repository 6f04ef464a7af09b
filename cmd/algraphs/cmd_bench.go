package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/algraphs/benchmark"
	"github.com/katalvlaran/algraphs/converters"
	"github.com/katalvlaran/algraphs/utgraph"
)

// joke is the payload of the joke command.
const joke = "My software never has bugs. It just develops random features."

// benchRow is one line of the bench report.
type benchRow struct {
	Label  string `json:"label"`
	Result string `json:"result"`
	Nanos  int64  `json:"nanos"`
}

func newBenchCmd(o *rootOptions) *cobra.Command {
	var samples, vertex, from, to int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the graph queries (median of several runs)",
		Long: `Time degree, maxdeg, star and path on the selected graph and print
the median sample of each. The defaults match the network fixture.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 1 {
				return fmt.Errorf("bench: --samples must be ≥ 1, got %d", samples)
			}
			g, err := o.loadGraph()
			if err != nil {
				return err
			}
			for _, v := range []int{vertex, from, to} {
				if v < 0 || v >= g.VertexCount() {
					return fmt.Errorf("bench: vertex %d: %w", v, utgraph.ErrVertexOutOfRange)
				}
			}

			opt := benchmark.WithSamples(samples)
			rows := []benchRow{
				row(fmt.Sprintf("degree(%d)", vertex), benchmark.MedExecTime(func() int {
					d, _ := g.Degree(vertex)
					return d
				}, opt)),
				row("maxdeg", benchmark.MedExecTime(func() int {
					d, _ := g.MaxDegree()
					return d
				}, opt)),
				row("star", benchmark.MedExecTime(func() bool {
					s, _ := g.IsStar()
					return s
				}, opt)),
				row(fmt.Sprintf("path(%d,%d)", from, to), benchmark.MedExecTime(func() []int {
					w, _, _ := g.Path(from, to)
					return w
				}, opt)),
			}
			o.logger.Debug("bench done", slog.Int("samples", samples), slog.Int("queries", len(rows)))

			lines := make([]string, len(rows))
			for i, r := range rows {
				lines[i] = r.Label + ": " + r.Result
			}

			return o.emit(rows, strings.Join(lines, "\n"))
		},
	}
	f := cmd.Flags()
	f.IntVar(&samples, "samples", benchmark.DefaultSamples, "runs per query")
	f.IntVar(&vertex, "vertex", 6, "vertex for degree")
	f.IntVar(&from, "from", 0, "start vertex for path")
	f.IntVar(&to, "to", 6, "end vertex for path")

	return cmd
}

// row converts a timed result into a report line.
func row[T any](label string, b benchmark.Benchmark[T]) benchRow {
	return benchRow{Label: label, Result: b.String(), Nanos: b.Time.Nanoseconds()}
}

func newJokeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "joke",
		Short: "Time a constant function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := benchmark.MedExecTime(func() string { return joke })

			return o.emit(row("Joke", b), b.Msg("Joke"))
		},
	}
}

func newMatrixCmd(o *rootOptions) *cobra.Command {
	var laplacian bool
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the adjacency (or Laplacian) matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.loadGraph()
			if err != nil {
				return err
			}
			build := converters.AdjacencyMatrix
			if laplacian {
				build = converters.Laplacian
			}
			m, err := build(g)
			if err != nil {
				return err
			}
			n, _ := m.Dims()
			rows := make([][]float64, n)
			for i := range rows {
				rows[i] = mat.Row(nil, i, m)
			}

			return o.emit(rows, fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze())))
		},
	}
	cmd.Flags().BoolVar(&laplacian, "laplacian", false, "print L = D - A instead of A")

	return cmd
}
