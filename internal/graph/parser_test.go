package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	query := `
	SELECT ?s ?l WHERE {
		?s a dbo:Song .
		?s dbo:artist dbr:Michael_Jackson .
		?s rdfs:label ?l .
	}`

	parsed := ParseQuery(query)

	assert.Equal(t, "dbr:Michael_Jackson", parsed.MainEntity)
	assert.Equal(t, []ClassBinding{{Variable: "?s", Class: "dbo:Song"}}, parsed.Classes)

	assert.Len(t, parsed.Triples, 3)
	assert.Equal(t, TriplePattern{Subject: "?s", Predicate: "rdf:type", Object: "dbo:Song"}, parsed.Triples[0])
	assert.Equal(t, TriplePattern{Subject: "?s", Predicate: "dbo:artist", Object: "dbr:Michael_Jackson"}, parsed.Triples[1])
	assert.Equal(t, TriplePattern{Subject: "?s", Predicate: "rdfs:label", Object: "?l"}, parsed.Triples[2])
}

func TestParseQueryNoWhere(t *testing.T) {
	parsed := ParseQuery("DESCRIBE dbr:Paris")

	// Main entity is scanned over the whole query text; everything else
	// needs a WHERE block.
	assert.Equal(t, "dbr:Paris", parsed.MainEntity)
	assert.Empty(t, parsed.Classes)
	assert.Empty(t, parsed.Triples)
}

func TestParseQueryLiteralsAndURIs(t *testing.T) {
	query := `SELECT ?x WHERE {
		?x rdfs:label "Thriller" .
		<http://dbpedia.org/resource/Thriller> dbo:artist ?x .
	}`

	parsed := ParseQuery(query)

	assert.Len(t, parsed.Triples, 2)
	assert.Equal(t, `"Thriller"`, parsed.Triples[0].Object)
	assert.Equal(t, "<http://dbpedia.org/resource/Thriller>", parsed.Triples[1].Subject)
}

func TestParseQueryTypedConstantIsNotClassBinding(t *testing.T) {
	parsed := ParseQuery(`SELECT * WHERE { dbr:Thriller a dbo:Album . }`)

	// Only variable subjects produce class bindings.
	assert.Empty(t, parsed.Classes)
	assert.Len(t, parsed.Triples, 1)
	assert.Equal(t, "rdf:type", parsed.Triples[0].Predicate)
}

func TestNormalizePredicate(t *testing.T) {
	assert.Equal(t, "rdf:type", NormalizePredicate("a"))
	assert.Equal(t, "rdf:type", NormalizePredicate("rdf:type"))
	assert.Equal(t, "dbo:artist", NormalizePredicate("dbo:artist"))
}
