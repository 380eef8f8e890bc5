// Package netfile loads pedestrian networks into a core.Graph.
//
// Two formats are supported.
//
// Text pair (one nodes file, one edges file):
//
//	# nodes: name,x,y
//	Main Gate, 1.5, 0.25
//	Library, 3, 2
//
//	# edges: a,b,weight,travel_time
//	Main Gate, Library, 120, 86.4
//
// Blank lines and lines starting with '#' are skipped, fields are trimmed,
// and lines with an unexpected number of fields are ignored. A field that
// does not parse as a number fails the whole load with ErrMalformedLine,
// reporting the file name and line number.
//
// Network document (YAML or JSON, decoded with gopkg.in/yaml.v3):
//
//	nodes:
//	  - {id: Main Gate, x: 1.5, y: 0.25}
//	edges:
//	  - {from: Main Gate, to: Library, weight: 120, travel_time: 86.4}
//
// Every edge is inserted in both directions. When an edge appears twice, the
// later line wins.
package netfile
