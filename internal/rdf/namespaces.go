package rdf

import (
	"sort"
	"strings"
)

// Namespace binds a short prefix to a full URI.
type Namespace struct {
	Prefix string
	URI    string
}

// Namespaces is the fixed prefix table used for query headers and for
// URI <-> prefixed-name conversion. Order matters for the PREFIX block.
var Namespaces = []Namespace{
	// Core RDF/OWL
	{"rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	{"rdfs", "http://www.w3.org/2000/01/rdf-schema#"},
	{"owl", "http://www.w3.org/2002/07/owl#"},
	{"xsd", "http://www.w3.org/2001/XMLSchema#"},
	// DBpedia specific
	{"dbr", "http://dbpedia.org/resource/"},
	{"dbo", "http://dbpedia.org/ontology/"},
	{"dbp", "http://dbpedia.org/property/"},
	{"dbc", "http://dbpedia.org/resource/Category:"},
	{"dbt", "http://dbpedia.org/resource/Template:"},
	// Common external vocabularies
	{"foaf", "http://xmlns.com/foaf/0.1/"},
	{"dc", "http://purl.org/dc/elements/1.1/"},
	{"dcterms", "http://purl.org/dc/terms/"},
	{"skos", "http://www.w3.org/2004/02/skos/core#"},
	{"geo", "http://www.w3.org/2003/01/geo/wgs84_pos#"},
	{"georss", "http://www.georss.org/georss/"},
	{"prov", "http://www.w3.org/ns/prov#"},
	// Links to other datasets
	{"wikidata", "http://www.wikidata.org/entity/"},
	{"schema", "http://schema.org/"},
}

var (
	byPrefix map[string]string
	// Namespaces sorted by URI length, longest first, so that
	// dbc/dbt win over the dbr prefix they extend.
	byURILen []Namespace

	prefixBlock string
)

func init() {
	byPrefix = make(map[string]string, len(Namespaces))
	for _, ns := range Namespaces {
		byPrefix[ns.Prefix] = ns.URI
	}

	byURILen = make([]Namespace, len(Namespaces))
	copy(byURILen, Namespaces)
	sort.SliceStable(byURILen, func(i, j int) bool {
		return len(byURILen[i].URI) > len(byURILen[j].URI)
	})

	var b strings.Builder
	for _, ns := range Namespaces {
		b.WriteString("PREFIX ")
		b.WriteString(ns.Prefix)
		b.WriteString(": <")
		b.WriteString(ns.URI)
		b.WriteString(">\n")
	}
	prefixBlock = b.String()
}

// PrefixBlock returns the PREFIX declarations prepended to every query
// sent to the endpoint.
func PrefixBlock() string {
	return prefixBlock
}

// URIToPrefixed converts a full URI to its prefixed form, e.g.
// "http://dbpedia.org/ontology/birthDate" -> "dbo:birthDate".
// Unregistered namespaces are returned unchanged.
func URIToPrefixed(uri string) string {
	for _, ns := range byURILen {
		if strings.HasPrefix(uri, ns.URI) {
			return ns.Prefix + ":" + uri[len(ns.URI):]
		}
	}
	return uri
}

// PrefixedToURI converts a prefixed name back to a full URI, e.g.
// "dbo:birthDate" -> "http://dbpedia.org/ontology/birthDate".
// Unknown prefixes are returned unchanged.
func PrefixedToURI(prefixed string) string {
	prefix, local, ok := strings.Cut(prefixed, ":")
	if !ok {
		return prefixed
	}
	if uri, known := byPrefix[prefix]; known {
		return uri + local
	}
	return prefixed
}

// LocalName returns the part after the last prefix separator, used for
// human-readable node labels.
func LocalName(id string) string {
	if i := strings.LastIndex(id, ":"); i >= 0 {
		return id[i+1:]
	}
	return id
}
