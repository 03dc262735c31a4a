// Package config loads a CPPN topology (nodes and links) from YAML,
// grounded on the teacher pack's config-loading convention
// (pthm-soup/config/config.go's defaults-then-override yaml.Unmarshal
// pattern), adapted here to a single explicit file rather than an
// embedded-defaults-plus-override merge, since a CPPN topology has no
// meaningful "defaults" the way simulation tuning parameters do.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-cppn/cppn/activation"
	"github.com/go-cppn/cppn/cppn"
)

// ErrUnknownActivation is returned when a node entry names an activation
// function activation.Parse does not recognize.
var ErrUnknownActivation = errors.New("config: unknown activation function")

// ErrInvalidTopology is returned when a node entry names an unknown kind,
// when a link entry references a node index outside the declared node list,
// or when a link fails dag.Graph.ValidLink (self-loop or inadmissible ends).
var ErrInvalidTopology = errors.New("config: invalid topology")

// NodeSpec is one YAML-declared node.
type NodeSpec struct {
	Kind       string `yaml:"kind"`
	Activation string `yaml:"activation"`
	ExternalID int64  `yaml:"id"`
}

// LinkSpec is one YAML-declared link, referencing nodes by their position
// in the enclosing Topology.Nodes list.
type LinkSpec struct {
	Source     int     `yaml:"source"`
	Target     int     `yaml:"target"`
	Weight     float64 `yaml:"weight"`
	ExternalID int64   `yaml:"id"`
}

// Topology is the on-disk shape of a CPPN description.
type Topology struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Links []LinkSpec `yaml:"links"`
}

// kindByName maps the lowercase YAML spelling of a node kind to cppn.Kind.
var kindByName = map[string]cppn.Kind{
	"input":  cppn.KindInput,
	"output": cppn.KindOutput,
	"hidden": cppn.KindHidden,
	"bias":   cppn.KindBias,
}

// Load reads a Topology from path and builds the corresponding cppn.Graph.
func Load(path string) (*cppn.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var top Topology
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return Build(top)
}

// Build constructs a cppn.Graph from an already-parsed Topology.
func Build(top Topology) (*cppn.Graph, error) {
	graph := cppn.NewGraph()
	indices := make([]int, len(top.Nodes))

	for i, ns := range top.Nodes {
		kind, ok := kindByName[ns.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: node %d has kind %q", ErrInvalidTopology, i, ns.Kind)
		}

		fn, err := activation.Parse(ns.Activation)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrUnknownActivation, i, err)
		}

		indices[i] = graph.AddNode(cppn.Node{Kind: kind, Activation: fn}, ns.ExternalID)
	}

	for li, ls := range top.Links {
		if ls.Source < 0 || ls.Source >= len(indices) || ls.Target < 0 || ls.Target >= len(indices) {
			return nil, fmt.Errorf("%w: link %d references out-of-range node", ErrInvalidTopology, li)
		}

		src, dst := indices[ls.Source], indices[ls.Target]
		if err := graph.ValidLink(src, dst); err != nil {
			return nil, fmt.Errorf("%w: link %d: %w", ErrInvalidTopology, li, err)
		}

		graph.AddLink(src, dst, ls.Weight, ls.ExternalID)
	}

	return graph, nil
}
