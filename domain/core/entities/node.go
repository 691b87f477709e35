package entities

import (
	"strings"

	"github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// Node is a health factor in the causal graph.
// Nodes are created once when the model loads and never change.
type Node struct {
	id          valueobjects.NodeID
	label       string
	domain      valueobjects.Domain
	nodeType    valueobjects.NodeType
	unit        string
	normalRange *valueobjects.Range
	description string
}

// NodeSpec carries the attributes used to build a Node
type NodeSpec struct {
	ID          valueobjects.NodeID
	Label       string
	Domain      valueobjects.Domain
	Type        valueobjects.NodeType
	Unit        string
	NormalRange *valueobjects.Range
	Description string
}

// NewNode validates a spec and builds the node
func NewNode(spec NodeSpec) (*Node, error) {
	if !spec.ID.IsKnown() {
		return nil, pkgerrors.NewValidationError("unknown node id: " + spec.ID.String())
	}
	if strings.TrimSpace(spec.Label) == "" {
		return nil, pkgerrors.NewValidationError("node label cannot be empty: " + spec.ID.String())
	}
	if _, err := valueobjects.ParseDomain(string(spec.Domain)); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	if _, err := valueobjects.ParseNodeType(string(spec.Type)); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	var nr *valueobjects.Range
	if spec.NormalRange != nil {
		if spec.NormalRange.Min > spec.NormalRange.Max {
			return nil, pkgerrors.NewValidationError("normal range min exceeds max for node " + spec.ID.String())
		}
		r := *spec.NormalRange
		nr = &r
	}

	return &Node{
		id:          spec.ID,
		label:       spec.Label,
		domain:      spec.Domain,
		nodeType:    spec.Type,
		unit:        spec.Unit,
		normalRange: nr,
		description: spec.Description,
	}, nil
}

// MustNode is NewNode for static tables; it panics on invalid input
func MustNode(spec NodeSpec) *Node {
	n, err := NewNode(spec)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *Node) ID() valueobjects.NodeID     { return n.id }
func (n *Node) Label() string               { return n.label }
func (n *Node) Domain() valueobjects.Domain { return n.domain }
func (n *Node) Type() valueobjects.NodeType { return n.nodeType }
func (n *Node) Unit() string                { return n.unit }
func (n *Node) Description() string         { return n.description }
func (n *Node) IsDisease() bool             { return n.nodeType == valueobjects.TypeDisease }

// NormalRange returns a copy of the normal range, if any
func (n *Node) NormalRange() (valueobjects.Range, bool) {
	if n.normalRange == nil {
		return valueobjects.Range{}, false
	}
	return *n.normalRange, true
}

// Spec returns the attributes the node was built from
func (n *Node) Spec() NodeSpec {
	spec := NodeSpec{
		ID:          n.id,
		Label:       n.label,
		Domain:      n.domain,
		Type:        n.nodeType,
		Unit:        n.unit,
		Description: n.description,
	}
	if r, ok := n.NormalRange(); ok {
		spec.NormalRange = &r
	}
	return spec
}
