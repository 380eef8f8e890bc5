package netfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathdiv/core"
)

// Sentinel errors returned by the loaders.
var (
	// ErrMalformedLine indicates a numeric field that could not be parsed.
	ErrMalformedLine = errors.New("netfile: malformed line")

	// ErrUnsupportedFormat indicates a document extension other than .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("netfile: unsupported document format")
)

const (
	nodeFields = 3 // name,x,y
	edgeFields = 4 // a,b,weight,travel_time
)

// Load reads a nodes file and an edges file from disk.
// nodesPath may be empty when no drawing coordinates are available.
func Load(nodesPath, edgesPath string) (*core.Graph, error) {
	g := core.NewGraph()
	if nodesPath != "" {
		if err := readFile(nodesPath, func(r io.Reader) error { return ReadNodes(g, nodesPath, r) }); err != nil {
			return nil, err
		}
	}
	if err := readFile(edgesPath, func(r io.Reader) error { return ReadEdges(g, edgesPath, r) }); err != nil {
		return nil, err
	}

	return g, nil
}

// Read builds a graph from an in-memory nodes stream (may be nil) and edges stream.
func Read(nodes, edges io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	if nodes != nil {
		if err := ReadNodes(g, "nodes", nodes); err != nil {
			return nil, err
		}
	}
	if err := ReadEdges(g, "edges", edges); err != nil {
		return nil, err
	}

	return g, nil
}

// ReadNodes adds every "name,x,y" line of r to g. name labels errors.
func ReadNodes(g *core.Graph, name string, r io.Reader) error {
	return scanLines(name, r, nodeFields, func(lineNo int, f []string) error {
		x, err := parseNumber(name, lineNo, "x", f[1])
		if err != nil {
			return err
		}
		y, err := parseNumber(name, lineNo, "y", f[2])
		if err != nil {
			return err
		}
		if err = g.AddVertexAt(f[0], x, y); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}

		return nil
	})
}

// ReadEdges adds every "a,b,weight,travel_time" line of r to g. name labels errors.
func ReadEdges(g *core.Graph, name string, r io.Reader) error {
	return scanLines(name, r, edgeFields, func(lineNo int, f []string) error {
		w, err := parseNumber(name, lineNo, "weight", f[2])
		if err != nil {
			return err
		}
		t, err := parseNumber(name, lineNo, "travel_time", f[3])
		if err != nil {
			return err
		}
		if err = g.AddEdge(f[0], f[1], w, t); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}

		return nil
	})
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("netfile: open %s: %w", path, err)
	}
	defer f.Close()

	return fn(f)
}

// scanLines calls fn with the trimmed fields of every data line that has
// exactly want comma-separated fields.
func scanLines(name string, r io.Reader, want int, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != want {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("netfile: read %s: %w", name, err)
	}

	return nil
}

func parseNumber(name string, lineNo int, field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s:%d: %s %q", ErrMalformedLine, name, lineNo, field, s)
	}

	return v, nil
}
