// Package modelfile reads and writes risk models as YAML documents, so a
// deployment can replace the built-in reference tables without a rebuild.
package modelfile

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	"github.com/Anirach/ncd-health-plus/domain/core/entities"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// Document is the on-disk layout of a model
type Document struct {
	Name       string                  `yaml:"name"`
	Nodes      []NodeDoc               `yaml:"nodes"`
	Edges      []EdgeDoc               `yaml:"edges"`
	Statistics map[string]StatisticDoc `yaml:"statistics"`
	Intercepts map[string]float64      `yaml:"intercepts"`
	Order      []string                `yaml:"order"`
}

// NodeDoc describes one node
type NodeDoc struct {
	ID          string    `yaml:"id"`
	Label       string    `yaml:"label"`
	Domain      string    `yaml:"domain"`
	Type        string    `yaml:"type"`
	Unit        string    `yaml:"unit,omitempty"`
	NormalRange *vo.Range `yaml:"normal_range,omitempty"`
	Description string    `yaml:"description,omitempty"`
}

// EdgeDoc describes one edge. CI is written as a [low, high] pair.
type EdgeDoc struct {
	ID          string    `yaml:"id"`
	Source      string    `yaml:"source"`
	Target      string    `yaml:"target"`
	Weight      float64   `yaml:"weight"`
	CI          []float64 `yaml:"ci,flow"`
	Grade       string    `yaml:"evidence_grade"`
	Domain      string    `yaml:"domain"`
	Description string    `yaml:"description,omitempty"`
}

// StatisticDoc is a reference mean and standard deviation
type StatisticDoc struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

// Load reads and builds the model stored at path
func Load(path string) (*aggregates.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.NewModelError(path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, pkgerrors.NewModelError(path, err)
	}
	return m, nil
}

// Decode parses a YAML document and builds the model
func Decode(r io.Reader) (*aggregates.Model, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid model document: %w", err)
	}
	return doc.Build()
}

// Encode writes the model as YAML
func Encode(w io.Writer, m *aggregates.Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromModel(m)); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return enc.Close()
}

// FromModel converts a model to its document form
func FromModel(m *aggregates.Model) Document {
	g := m.Graph()
	doc := Document{
		Name:       m.Name(),
		Nodes:      make([]NodeDoc, 0, g.NodeCount()),
		Edges:      make([]EdgeDoc, 0, g.EdgeCount()),
		Statistics: make(map[string]StatisticDoc),
		Intercepts: make(map[string]float64),
	}
	for _, n := range g.AllNodes() {
		nd := NodeDoc{
			ID:          n.ID().String(),
			Label:       n.Label(),
			Domain:      string(n.Domain()),
			Type:        string(n.Type()),
			Unit:        n.Unit(),
			Description: n.Description(),
		}
		if r, ok := n.NormalRange(); ok {
			nd.NormalRange = &r
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.AllEdges() {
		doc.Edges = append(doc.Edges, EdgeDoc{
			ID:          e.ID(),
			Source:      e.Source().String(),
			Target:      e.Target().String(),
			Weight:      e.Weight(),
			CI:          []float64{e.CI().Low, e.CI().High},
			Grade:       string(e.Grade()),
			Domain:      string(e.Domain()),
			Description: e.Description(),
		})
	}
	for id, st := range m.Stats() {
		doc.Statistics[id.String()] = StatisticDoc{Mean: st.Mean, Std: st.Std}
	}
	for id, b0 := range m.Intercepts() {
		doc.Intercepts[id.String()] = b0
	}
	for _, id := range m.Order() {
		doc.Order = append(doc.Order, id.String())
	}
	return doc
}

// Build validates the document and constructs the model. Every problem
// found in the node, edge and table sections is reported together.
func (d Document) Build() (*aggregates.Model, error) {
	verrs := pkgerrors.NewValidationErrors()

	nodes := make([]*entities.Node, 0, len(d.Nodes))
	for i, nd := range d.Nodes {
		field := fmt.Sprintf("nodes[%d]", i)
		id, err := vo.ParseNodeID(nd.ID)
		if err != nil {
			verrs.Add(field, err.Error())
			continue
		}
		n, err := entities.NewNode(entities.NodeSpec{
			ID:          id,
			Label:       nd.Label,
			Domain:      vo.Domain(nd.Domain),
			Type:        vo.NodeType(nd.Type),
			Unit:        nd.Unit,
			NormalRange: nd.NormalRange,
			Description: nd.Description,
		})
		if err != nil {
			verrs.Add(field, message(err))
			continue
		}
		nodes = append(nodes, n)
	}

	edges := make([]*entities.Edge, 0, len(d.Edges))
	for i, ed := range d.Edges {
		field := fmt.Sprintf("edges[%d]", i)
		if len(ed.CI) != 2 {
			verrs.Add(field, fmt.Sprintf("edge %s: ci must be a [low, high] pair", ed.ID))
			continue
		}
		src, errS := vo.ParseNodeID(ed.Source)
		dst, errT := vo.ParseNodeID(ed.Target)
		if errS != nil || errT != nil {
			verrs.Add(field, fmt.Sprintf("edge %s references an unknown node", ed.ID))
			continue
		}
		e, err := entities.NewEdge(entities.EdgeSpec{
			ID:          ed.ID,
			Source:      src,
			Target:      dst,
			Weight:      ed.Weight,
			CI:          vo.ConfidenceInterval{Low: ed.CI[0], High: ed.CI[1]},
			Grade:       vo.EvidenceGrade(ed.Grade),
			Domain:      vo.Domain(ed.Domain),
			Description: ed.Description,
		})
		if err != nil {
			verrs.Add(field, message(err))
			continue
		}
		edges = append(edges, e)
	}

	stats := make(map[vo.NodeID]vo.ReferenceStatistic, len(d.Statistics))
	for _, key := range sortedKeys(d.Statistics) {
		id, err := vo.ParseNodeID(key)
		if err != nil {
			verrs.Add("statistics", err.Error())
			continue
		}
		st := d.Statistics[key]
		stats[id] = vo.ReferenceStatistic{Mean: st.Mean, Std: st.Std}
	}

	intercepts := make(map[vo.NodeID]float64, len(d.Intercepts))
	for _, key := range sortedKeys(d.Intercepts) {
		id, err := vo.ParseNodeID(key)
		if err != nil {
			verrs.Add("intercepts", err.Error())
			continue
		}
		intercepts[id] = d.Intercepts[key]
	}

	order := make([]vo.NodeID, 0, len(d.Order))
	for _, key := range d.Order {
		id, err := vo.ParseNodeID(key)
		if err != nil {
			verrs.Add("order", err.Error())
			continue
		}
		order = append(order, id)
	}

	if verrs.HasErrors() {
		return nil, verrs
	}

	graph, err := aggregates.NewKnowledgeGraph(nodes, edges)
	if err != nil {
		return nil, err
	}
	if !graph.IsAcyclic() {
		return nil, pkgerrors.ErrCyclicGraph
	}
	name := d.Name
	if name == "" {
		name = "custom"
	}
	return aggregates.NewModel(aggregates.ModelSpec{
		Name:       name,
		Graph:      graph,
		Stats:      stats,
		Intercepts: intercepts,
		Order:      order,
	})
}

func message(err error) string {
	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
