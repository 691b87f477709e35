package aggregates

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	"github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// KnowledgeGraph is the read-only causal graph of health factors.
// It is built once and never mutated, so concurrent reads need no locking.
type KnowledgeGraph struct {
	nodes    []*entities.Node
	edges    []*entities.Edge
	nodeByID map[valueobjects.NodeID]*entities.Node
	edgeByID map[string]*entities.Edge
	into     map[valueobjects.NodeID][]*entities.Edge
	outOf    map[valueobjects.NodeID][]*entities.Edge

	// adjacency for traversal algorithms, keyed by node position
	index    map[valueobjects.NodeID]int64
	directed *simple.DirectedGraph
}

// GraphSummary describes the size and shape of a graph
type GraphSummary struct {
	NodeCount     int                           `json:"node_count"`
	EdgeCount     int                           `json:"edge_count"`
	NodesByType   map[valueobjects.NodeType]int `json:"nodes_by_type"`
	EdgesByDomain map[valueobjects.Domain]int   `json:"edges_by_domain"`
	Acyclic       bool                          `json:"acyclic"`
}

// NewKnowledgeGraph validates references and builds the graph.
// Parallel edges between the same pair of nodes are allowed.
func NewKnowledgeGraph(nodes []*entities.Node, edges []*entities.Edge) (*KnowledgeGraph, error) {
	g := &KnowledgeGraph{
		nodes:    make([]*entities.Node, 0, len(nodes)),
		edges:    make([]*entities.Edge, 0, len(edges)),
		nodeByID: make(map[valueobjects.NodeID]*entities.Node, len(nodes)),
		edgeByID: make(map[string]*entities.Edge, len(edges)),
		into:     make(map[valueobjects.NodeID][]*entities.Edge),
		outOf:    make(map[valueobjects.NodeID][]*entities.Edge),
		index:    make(map[valueobjects.NodeID]int64, len(nodes)),
		directed: simple.NewDirectedGraph(),
	}

	for i, n := range nodes {
		if n == nil {
			return nil, pkgerrors.NewValidationError(fmt.Sprintf("node at position %d is nil", i))
		}
		if _, exists := g.nodeByID[n.ID()]; exists {
			return nil, pkgerrors.NewValidationError("duplicate node id: " + n.ID().String())
		}
		g.nodes = append(g.nodes, n)
		g.nodeByID[n.ID()] = n
		g.index[n.ID()] = int64(i)
		g.directed.AddNode(simple.Node(int64(i)))
	}

	for i, e := range edges {
		if e == nil {
			return nil, pkgerrors.NewValidationError(fmt.Sprintf("edge at position %d is nil", i))
		}
		if _, exists := g.edgeByID[e.ID()]; exists {
			return nil, pkgerrors.NewValidationError("duplicate edge id: " + e.ID())
		}
		if _, ok := g.nodeByID[e.Source()]; !ok {
			return nil, pkgerrors.NewValidationError(fmt.Sprintf("edge %s references unknown source %s", e.ID(), e.Source()))
		}
		if _, ok := g.nodeByID[e.Target()]; !ok {
			return nil, pkgerrors.NewValidationError(fmt.Sprintf("edge %s references unknown target %s", e.ID(), e.Target()))
		}
		g.edges = append(g.edges, e)
		g.edgeByID[e.ID()] = e
		g.into[e.Target()] = append(g.into[e.Target()], e)
		g.outOf[e.Source()] = append(g.outOf[e.Source()], e)

		from, to := g.index[e.Source()], g.index[e.Target()]
		if !g.directed.HasEdgeFromTo(from, to) {
			g.directed.SetEdge(g.directed.NewEdge(simple.Node(from), simple.Node(to)))
		}
	}

	return g, nil
}

// NodeByID looks up a node. Unknown ids return false.
func (g *KnowledgeGraph) NodeByID(id valueobjects.NodeID) (*entities.Node, bool) {
	n, ok := g.nodeByID[id]
	return n, ok
}

// HasNode reports whether the node exists
func (g *KnowledgeGraph) HasNode(id valueobjects.NodeID) bool {
	_, ok := g.nodeByID[id]
	return ok
}

// EdgeByID looks up an edge. Unknown ids return false.
func (g *KnowledgeGraph) EdgeByID(id string) (*entities.Edge, bool) {
	e, ok := g.edgeByID[id]
	return e, ok
}

// EdgesInto returns the edges targeting a node in declaration order
func (g *KnowledgeGraph) EdgesInto(id valueobjects.NodeID) []*entities.Edge {
	return copyEdges(g.into[id])
}

// EdgesOutOf returns the edges leaving a node in declaration order
func (g *KnowledgeGraph) EdgesOutOf(id valueobjects.NodeID) []*entities.Edge {
	return copyEdges(g.outOf[id])
}

// AllEdges returns every edge in declaration order
func (g *KnowledgeGraph) AllEdges() []*entities.Edge {
	return copyEdges(g.edges)
}

// AllNodes returns every node in declaration order
func (g *KnowledgeGraph) AllNodes() []*entities.Node {
	out := make([]*entities.Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// EdgesByDomain filters edges by domain, keeping declaration order
func (g *KnowledgeGraph) EdgesByDomain(domain valueobjects.Domain) []*entities.Edge {
	var out []*entities.Edge
	for _, e := range g.edges {
		if e.Domain() == domain {
			out = append(out, e)
		}
	}
	return out
}

// NodesByType filters nodes by type, keeping declaration order
func (g *KnowledgeGraph) NodesByType(t valueobjects.NodeType) []*entities.Node {
	var out []*entities.Node
	for _, n := range g.nodes {
		if n.Type() == t {
			out = append(out, n)
		}
	}
	return out
}

// NodeCount returns the number of nodes
func (g *KnowledgeGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges
func (g *KnowledgeGraph) EdgeCount() int { return len(g.edges) }

// HopDistances returns, for every node reachable within maxDepth hops of any
// source, the shortest hop count from the nearest source. Sources map to 0.
// Sources that are not in the graph are ignored.
func (g *KnowledgeGraph) HopDistances(sources []valueobjects.NodeID, maxDepth int) map[valueobjects.NodeID]int {
	dist := make(map[valueobjects.NodeID]int)
	if maxDepth < 0 {
		return dist
	}
	for _, src := range sources {
		idx, ok := g.index[src]
		if !ok {
			continue
		}
		bfs := traverse.BreadthFirst{}
		bfs.Walk(g.directed, simple.Node(idx), func(n graph.Node, depth int) bool {
			if depth > maxDepth {
				return true
			}
			id := g.nodes[n.ID()].ID()
			if d, seen := dist[id]; !seen || depth < d {
				dist[id] = depth
			}
			return false
		})
	}
	return dist
}

// IsAcyclic reports whether the graph admits a topological ordering
func (g *KnowledgeGraph) IsAcyclic() bool {
	_, err := topo.Sort(g.directed)
	return err == nil
}

// Summary returns counts and shape information
func (g *KnowledgeGraph) Summary() GraphSummary {
	s := GraphSummary{
		NodeCount:     len(g.nodes),
		EdgeCount:     len(g.edges),
		NodesByType:   make(map[valueobjects.NodeType]int),
		EdgesByDomain: make(map[valueobjects.Domain]int),
		Acyclic:       g.IsAcyclic(),
	}
	for _, n := range g.nodes {
		s.NodesByType[n.Type()]++
	}
	for _, e := range g.edges {
		s.EdgesByDomain[e.Domain()]++
	}
	return s
}

func copyEdges(in []*entities.Edge) []*entities.Edge {
	out := make([]*entities.Edge, len(in))
	copy(out, in)
	return out
}
