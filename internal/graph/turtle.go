package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/querif/querif/internal/rdf"
)

// WriteTurtle serializes the accumulated triples as Turtle: @prefix
// declarations followed by one statement per edge. Resources with a known
// full URI are bracket-wrapped; everything else stays a bare identifier;
// literals are quoted with internal quotes escaped.
func (b *Builder) WriteTurtle(w io.Writer) error {
	for _, ns := range rdf.Namespaces {
		if _, err := fmt.Fprintf(w, "@prefix %s: <%s> .\n", ns.Prefix, ns.URI); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, e := range b.edges {
		_, err := fmt.Fprintf(w, "%s %s %s .\n", b.term(e.Subject), e.Predicate, b.term(e.Object))
		if err != nil {
			return err
		}
	}
	return nil
}

// Turtle returns the serialization as a string.
func (b *Builder) Turtle() string {
	var sb strings.Builder
	b.WriteTurtle(&sb)
	return sb.String()
}

func (b *Builder) term(id string) string {
	node, ok := b.nodes[id]
	if !ok {
		return id
	}
	if node.Type == Literal {
		return `"` + strings.ReplaceAll(node.Label, `"`, `\"`) + `"`
	}
	if node.URI != id && strings.HasPrefix(node.URI, "http") {
		return "<" + node.URI + ">"
	}
	return id
}
