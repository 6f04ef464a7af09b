// SPDX-License-Identifier: MIT
//
// File: yaml.go
// Role: YAML catalog reader.

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algraphs/utgraph"
)

// MaxCatalogFileSize bounds LoadFile input (1 MiB).
const MaxCatalogFileSize = 1 << 20

// document is the on-disk layout of a catalog.
type document struct {
	Graphs []graphYAML `yaml:"graphs"`
}

// graphYAML mirrors GraphData with edges as [u, v] sequences.
type graphYAML struct {
	Name  string  `yaml:"name"`
	Verts int     `yaml:"verts"`
	Edges [][]int `yaml:"edges"`
}

// Load parses a catalog document from r.
//
// Implementation:
//   - Stage 1: decode into the concrete document type; unknown keys are rejected.
//   - Stage 2: validate each entry (name, verts, edge arity, unique names).
//   - Stage 3: convert edge pairs to utgraph.Edge.
//
// Errors:
//   - ErrInvalidCatalog for decoding or validation failures, with the
//     offending entry index or name in the message.
func Load(r io.Reader) ([]GraphData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("decoding YAML: %v: %w", err, ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(doc.Graphs))
	out := make([]GraphData, 0, len(doc.Graphs))
	for i, gy := range doc.Graphs {
		if gy.Name == "" {
			return nil, fmt.Errorf("graph at index %d has empty name: %w", i, ErrInvalidCatalog)
		}
		if _, dup := seen[gy.Name]; dup {
			return nil, fmt.Errorf("duplicate graph name %q: %w", gy.Name, ErrInvalidCatalog)
		}
		seen[gy.Name] = struct{}{}
		if gy.Verts < 0 {
			return nil, fmt.Errorf("graph %q: verts=%d < 0: %w", gy.Name, gy.Verts, ErrInvalidCatalog)
		}

		edges := make([]utgraph.Edge, len(gy.Edges))
		for j, pair := range gy.Edges {
			if len(pair) != 2 {
				return nil, fmt.Errorf("graph %q: edge #%d has %d endpoints, want 2: %w",
					gy.Name, j, len(pair), ErrInvalidCatalog)
			}
			edges[j] = utgraph.Edge{U: pair[0], V: pair[1]}
		}
		out = append(out, GraphData{Name: gy.Name, Verts: gy.Verts, Edges: edges})
	}

	return out, nil
}

// LoadFile reads and parses the catalog at path. Files above
// MaxCatalogFileSize are refused before reading.
func LoadFile(path string) ([]GraphData, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	if info.Size() > MaxCatalogFileSize {
		return nil, fmt.Errorf("catalog file too large: %d bytes (max %d): %w",
			info.Size(), MaxCatalogFileSize, ErrInvalidCatalog)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	graphs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return graphs, nil
}
