package netfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathdiv/core"
)

// Document is the structured form of a network.
type Document struct {
	Nodes []DocumentNode `yaml:"nodes" json:"nodes"`
	Edges []DocumentEdge `yaml:"edges" json:"edges"`
}

// DocumentNode is a vertex with optional drawing coordinates.
type DocumentNode struct {
	ID string   `yaml:"id" json:"id"`
	X  *float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y  *float64 `yaml:"y,omitempty" json:"y,omitempty"`
}

// DocumentEdge is one undirected segment.
type DocumentEdge struct {
	From       string  `yaml:"from" json:"from"`
	To         string  `yaml:"to" json:"to"`
	Weight     float64 `yaml:"weight" json:"weight"`
	TravelTime float64 `yaml:"travel_time" json:"travel_time"`
}

// LoadDocument reads a .yaml, .yml or .json network document.
func LoadDocument(path string) (*core.Graph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadDocument(f)
}

// ReadDocument decodes a YAML or JSON document from r and builds the graph.
// JSON is accepted because it is a subset of YAML.
func ReadDocument(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("netfile: decode document: %w", err)
	}

	return doc.Graph()
}

// Graph builds a core.Graph from the document.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for i, n := range d.Nodes {
		var err error
		if n.X != nil && n.Y != nil {
			err = g.AddVertexAt(n.ID, *n.X, *n.Y)
		} else {
			err = g.AddVertex(n.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("netfile: node %d: %w", i, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight, e.TravelTime); err != nil {
			return nil, fmt.Errorf("netfile: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document. Nodes are sorted by ID, and every
// undirected edge appears once, from the endpoint that is listed first.
func FromGraph(g *core.Graph) (*Document, error) {
	ids := g.Vertices()
	doc := &Document{Nodes: make([]DocumentNode, 0, len(ids)), Edges: make([]DocumentEdge, 0, g.EdgeCount())}
	done := make(map[string]bool, len(ids))
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		n := DocumentNode{ID: id}
		if v.HasPosition {
			x, y := v.X, v.Y
			n.X, n.Y = &x, &y
		}
		doc.Nodes = append(doc.Nodes, n)

		arcs, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, a := range arcs {
			if done[a.To] {
				continue
			}
			doc.Edges = append(doc.Edges, DocumentEdge{From: id, To: a.To, Weight: a.Weight, TravelTime: a.TravelTime})
		}
		done[id] = true
	}

	return doc, nil
}

// Encode writes d to w as "yaml" or "json".
func (d *Document) Encode(w io.Writer, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("netfile: encode yaml: %w", err)
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("netfile: encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
