package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the graphs of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := o.graphs()
			if err != nil {
				return err
			}
			type entry struct {
				Name  string `json:"name"`
				Verts int    `json:"verts"`
				Edges int    `json:"edges"`
			}
			entries := make([]entry, len(graphs))
			lines := make([]string, len(graphs))
			for i, d := range graphs {
				entries[i] = entry{Name: d.Name, Verts: d.Verts, Edges: len(d.Edges)}
				lines[i] = fmt.Sprintf("%-10s verts=%d edges=%d", d.Name, d.Verts, len(d.Edges))
			}

			return o.emit(entries, strings.Join(lines, "\n"))
		},
	}
}

func newDegreeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "degree VERTEX",
		Short: "Print the degree of a vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVertex("degree", args[0])
			if err != nil {
				return err
			}
			g, err := o.loadGraph()
			if err != nil {
				return err
			}
			d, ok := g.Degree(v)
			if !ok {
				return fmt.Errorf("degree: vertex %d not in graph %q (%d vertices)", v, o.graphName, g.VertexCount())
			}

			return o.emit(struct {
				Vertex int `json:"vertex"`
				Degree int `json:"degree"`
			}{v, d}, fmt.Sprintf("deg(%d) = %d", v, d))
		},
	}
}

func newMaxDegCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "maxdeg",
		Short: "Print the maximum vertex degree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.loadGraph()
			if err != nil {
				return err
			}
			d, err := g.MaxDegree()
			if err != nil {
				return err
			}

			return o.emit(struct {
				MaxDegree int `json:"max_degree"`
			}{d}, fmt.Sprintf("max degree = %d", d))
		},
	}
}

func newStarCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "star",
		Short: "Report whether the graph is a star",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.loadGraph()
			if err != nil {
				return err
			}
			star, err := g.IsStar()
			if err != nil {
				return err
			}

			return o.emit(struct {
				Star bool `json:"star"`
			}{star}, fmt.Sprintf("star = %t", star))
		},
	}
}

func newNeighborsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbors VERTEX",
		Aliases: []string{"neighborhood"},
		Short:   "List the neighbors of a vertex in ascending order",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVertex("neighbors", args[0])
			if err != nil {
				return err
			}
			g, err := o.loadGraph()
			if err != nil {
				return err
			}
			nb, err := g.Neighborhood(v)
			if err != nil {
				return err
			}

			return o.emit(struct {
				Vertex    int   `json:"vertex"`
				Neighbors []int `json:"neighbors"`
			}{v, nb}, fmt.Sprintf("N(%d) = %v", v, nb))
		},
	}
}

func newPathCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find a walk between two vertices",
		Long: `Find a walk between two vertices.

The depth-first search tries neighbors in ascending order and returns the
first walk it completes, which need not be the shortest.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseVertex("path", args[0])
			if err != nil {
				return err
			}
			to, err := parseVertex("path", args[1])
			if err != nil {
				return err
			}
			g, err := o.loadGraph()
			if err != nil {
				return err
			}

			walk, ok, err := g.Path(from, to)
			if err != nil {
				return err
			}

			text := fmt.Sprintf("no walk from %d to %d", from, to)
			if ok {
				text = formatWalk(walk)
			}

			return o.emit(struct {
				From  int   `json:"from"`
				To    int   `json:"to"`
				Found bool  `json:"found"`
				Walk  []int `json:"walk"`
			}{from, to, ok, walk}, text)
		},
	}
}

// formatWalk renders a walk as "0 -> 2 -> 3".
func formatWalk(walk []int) string {
	parts := make([]string, len(walk))
	for i, v := range walk {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}
