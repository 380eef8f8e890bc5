package netfile

import (
	"errors"

	"github.com/katalvlaran/pathdiv/core"
)

// ErrNoSource indicates that neither a document nor an edges file was given.
var ErrNoSource = errors.New("netfile: no network source configured")

// Source names where a network comes from: a document, or a nodes/edges pair.
// Document takes precedence when both are set.
type Source struct {
	Document string
	Nodes    string
	Edges    string
}

// Empty reports whether no source is configured.
func (s Source) Empty() bool { return s.Document == "" && s.Edges == "" }

// Load reads the configured source.
func (s Source) Load() (*core.Graph, error) {
	switch {
	case s.Document != "":
		return LoadDocument(s.Document)
	case s.Edges != "":
		return Load(s.Nodes, s.Edges)
	default:
		return nil, ErrNoSource
	}
}
