package rdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixBlock(t *testing.T) {
	block := PrefixBlock()

	assert.Contains(t, block, "PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>")
	assert.Contains(t, block, "PREFIX dbr: <http://dbpedia.org/resource/>")
	assert.Equal(t, len(Namespaces), strings.Count(block, "PREFIX "))
}

func TestURIToPrefixed(t *testing.T) {
	assert.Equal(t, "dbo:birthDate", URIToPrefixed("http://dbpedia.org/ontology/birthDate"))
	assert.Equal(t, "dbr:Barack_Obama", URIToPrefixed("http://dbpedia.org/resource/Barack_Obama"))

	// Unregistered namespaces pass through unchanged.
	assert.Equal(t, "http://example.org/x", URIToPrefixed("http://example.org/x"))
}

func TestURIToPrefixedLongestMatch(t *testing.T) {
	// Category and Template URIs extend the resource namespace; the longer
	// prefix must win.
	assert.Equal(t, "dbc:Presidents", URIToPrefixed("http://dbpedia.org/resource/Category:Presidents"))
	assert.Equal(t, "dbt:Infobox", URIToPrefixed("http://dbpedia.org/resource/Template:Infobox"))
}

func TestPrefixedToURI(t *testing.T) {
	assert.Equal(t, "http://dbpedia.org/ontology/birthDate", PrefixedToURI("dbo:birthDate"))

	// Unknown prefix and non-prefixed input pass through.
	assert.Equal(t, "ex:thing", PrefixedToURI("ex:thing"))
	assert.Equal(t, "plain", PrefixedToURI("plain"))
}

func TestRoundTrip(t *testing.T) {
	for _, ns := range Namespaces {
		uri := ns.URI + "Example"
		assert.Equal(t, uri, PrefixedToURI(URIToPrefixed(uri)))
	}
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "Song", LocalName("dbo:Song"))
	assert.Equal(t, "plain", LocalName("plain"))
}
