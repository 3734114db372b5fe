package graph

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
)

type NodeType string

const (
	Resource NodeType = "resource"
	Class    NodeType = "class"
	Literal  NodeType = "literal"
)

// Node is one graph entity. URI holds the full URI when one is known,
// otherwise it repeats the node id.
type Node struct {
	Type  NodeType `json:"type"`
	Label string   `json:"label"`
	URI   string   `json:"uri"`
}

// Triple is one directed labeled edge. Edges are not deduplicated: the
// same conceptual edge may appear once per source result row.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// Builder accumulates an RDF graph. State is cumulative across build
// calls on the same instance; create a fresh Builder for a fresh graph.
type Builder struct {
	nodes map[string]Node
	order []string // node ids in insertion order
	edges []Triple
}

func NewBuilder() *Builder {
	return &Builder{nodes: make(map[string]Node)}
}

// AddEntity registers a node. Re-adding an existing id updates its
// attributes without changing the node count.
func (b *Builder) AddEntity(id string, nodeType NodeType, label, uri string) {
	if uri == "" {
		uri = id
	}
	if _, exists := b.nodes[id]; !exists {
		b.order = append(b.order, id)
	}
	b.nodes[id] = Node{Type: nodeType, Label: label, URI: uri}
}

// AddProperty records a directed edge. Both endpoints are expected to
// exist as nodes.
func (b *Builder) AddProperty(subject, predicate, object string) {
	b.edges = append(b.edges, Triple{Subject: subject, Predicate: predicate, Object: object})
}

// Node returns a node by id.
func (b *Builder) Node(id string) (Node, bool) {
	n, ok := b.nodes[id]
	return n, ok
}

// Nodes returns node ids with their data, in insertion order.
func (b *Builder) Nodes() map[string]Node {
	out := make(map[string]Node, len(b.nodes))
	for id, n := range b.nodes {
		out[id] = n
	}
	return out
}

// NodeIDs returns node ids in insertion order.
func (b *Builder) NodeIDs() []string {
	return append([]string(nil), b.order...)
}

// Edges returns the recorded triples in insertion order.
func (b *Builder) Edges() []Triple {
	return append([]Triple(nil), b.edges...)
}

// BuildFromSPARQL materializes the purely structural graph of a query:
// declared classes, their typed variables, the main entity, and the
// remaining triple patterns taken at face value.
func (b *Builder) BuildFromSPARQL(query string) {
	parsed := ParseQuery(query)

	for _, c := range parsed.Classes {
		b.AddEntity(c.Class, Class, rdf.LocalName(c.Class), "")
		b.AddEntity(c.Variable, Resource, c.Variable, "")
		b.AddProperty(c.Variable, "rdf:type", c.Class)
	}

	if parsed.MainEntity != "" {
		b.addMainEntity(parsed.MainEntity)
	}

	for _, t := range parsed.Triples {
		if t.Predicate == "rdf:type" {
			continue
		}
		obj := t.Object
		objType := Resource
		if strings.HasPrefix(obj, `"`) {
			objType = Literal
			obj = strings.Trim(obj, `"`)
		}
		if _, ok := b.nodes[t.Subject]; !ok {
			b.AddEntity(t.Subject, Resource, t.Subject, "")
		}
		if _, ok := b.nodes[obj]; !ok {
			b.AddEntity(obj, objType, obj, "")
		}
		b.AddProperty(t.Subject, t.Predicate, obj)
	}
}

// BuildFromResults replays the query's triple patterns against each
// result row, resolving variables through the row's bindings, so the
// graph reflects the actual data rather than the query skeleton. Rows
// beyond maxRows are ignored. If no edge can be derived at all, a
// heuristic fallback synthesizes edges from the first row so the graph is
// never edge-less when results exist.
func (b *Builder) BuildFromResults(query string, results *sparql.Result, maxRows int) {
	if results == nil || results.Results == nil {
		log.Println("no result bindings to process")
		return
	}

	bindings := results.Results.Bindings
	if len(bindings) > maxRows {
		bindings = bindings[:maxRows]
	}

	parsed := ParseQuery(query)

	if parsed.MainEntity != "" {
		b.addMainEntity(parsed.MainEntity)
	}
	for _, c := range parsed.Classes {
		b.AddEntity(c.Class, Class, rdf.LocalName(c.Class), "")
	}

	for idx, row := range bindings {
		for _, t := range parsed.Triples {
			subjID, _, ok := b.resolveToken(t.Subject, row, idx)
			if !ok {
				continue
			}
			objID, objIsLiteral, ok := b.resolveToken(t.Object, row, idx)
			if !ok {
				continue
			}
			// Type edges must point at class/resource nodes only.
			if t.Predicate == "rdf:type" && objIsLiteral {
				continue
			}
			b.AddProperty(subjID, t.Predicate, objID)
		}
	}

	if len(b.edges) == 0 && len(bindings) > 0 {
		b.fallbackFromRow(bindings[0], parsed.MainEntity)
	}
}

func (b *Builder) addMainEntity(entity string) {
	label := strings.ReplaceAll(rdf.LocalName(entity), "_", " ")
	b.AddEntity(entity, Resource, label, rdf.PrefixedToURI(entity))
}

// resolveToken maps one pattern token to a node id for a given row,
// creating the node as needed. It reports failure when a variable has no
// binding in the row.
func (b *Builder) resolveToken(token string, row sparql.Binding, rowIdx int) (id string, isLiteral bool, ok bool) {
	switch {
	case strings.HasPrefix(token, "?"):
		value, bound := row[token[1:]]
		if !bound || value.Value == "" {
			return "", false, false
		}
		if value.Type == "uri" {
			return b.addResourceFromURI(value.Value), false, true
		}
		return b.addLiteral(rowIdx, token[1:], value.Value), true, true

	case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">"):
		return b.addResourceFromURI(token[1 : len(token)-1]), false, true

	default:
		// A prefixed name written directly in the query is its own id.
		if _, exists := b.nodes[token]; !exists {
			b.AddEntity(token, Resource, strings.ReplaceAll(rdf.LocalName(token), "_", " "), rdf.PrefixedToURI(token))
		}
		return token, false, true
	}
}

// addResourceFromURI creates (or reuses) a resource node for a full URI,
// prefixing it when a namespace matches, else falling back to the last
// path segment.
func (b *Builder) addResourceFromURI(uri string) string {
	id := rdf.URIToPrefixed(uri)
	if id == uri {
		if i := strings.LastIndex(uri, "/"); i >= 0 {
			id = uri[i+1:]
		}
	}
	label := strings.ReplaceAll(rdf.LocalName(id), "_", " ")
	b.AddEntity(id, Resource, label, uri)
	return id
}

// addLiteral creates a fresh row-scoped literal node; literals are never
// shared across rows or variables.
func (b *Builder) addLiteral(rowIdx int, varName, value string) string {
	id := fmt.Sprintf("literal_%d_%s", rowIdx, varName)
	display := value
	if len(display) > 80 {
		display = display[:80] + "..."
	}
	b.AddEntity(id, Literal, display, "")
	return id
}

// fallbackFromRow synthesizes edges from a single row when pattern replay
// produced none: literals hang off a root via rdfs:{var}, other URIs via
// linkedTo:{var}, and as a last resort every known node via relatedTo.
// Variables are walked in sorted order to keep the output deterministic.
func (b *Builder) fallbackFromRow(row sparql.Binding, mainEntity string) {
	vars := make([]string, 0, len(row))
	for v := range row {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	root := mainEntity
	if root == "" {
		for _, v := range vars {
			if row[v].Type == "uri" {
				root = b.addResourceFromURI(row[v].Value)
				break
			}
		}
	}
	if root == "" {
		return
	}

	for _, v := range vars {
		value := row[v]
		if value.Value == "" {
			continue
		}
		if value.Type == "uri" {
			id := b.addResourceFromURI(value.Value)
			if id == root {
				continue
			}
			b.AddProperty(root, "linkedTo:"+v, id)
		} else {
			id := b.addLiteral(0, v, value.Value)
			b.AddProperty(root, "rdfs:"+v, id)
		}
	}

	if len(b.edges) == 0 {
		for _, id := range b.order {
			if id != root {
				b.AddProperty(root, "relatedTo", id)
			}
		}
	}
}

// Summary is a printable digest of the graph, mainly for the CLI.
func (b *Builder) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "entities: %d, relations: %d\n", len(b.nodes), len(b.edges))

	counts := make(map[NodeType]int)
	for _, n := range b.nodes {
		counts[n.Type]++
	}
	for _, t := range []NodeType{Resource, Class, Literal} {
		if counts[t] > 0 {
			fmt.Fprintf(&sb, "  %s: %d\n", t, counts[t])
		}
	}

	for _, e := range b.edges {
		subj, obj := e.Subject, e.Object
		if n, ok := b.nodes[subj]; ok {
			subj = n.Label
		}
		if n, ok := b.nodes[obj]; ok {
			obj = n.Label
		}
		fmt.Fprintf(&sb, "  %s --[%s]--> %s\n", subj, e.Predicate, obj)
	}
	return sb.String()
}
