package graph

import (
	"regexp"
	"strings"
)

// TriplePattern is one subject/predicate/object clause from a WHERE block.
// Tokens may be variables (?x), angle-bracketed URIs, quoted literals or
// prefixed names.
type TriplePattern struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// ClassBinding records that a variable is typed to a class via rdf:type.
type ClassBinding struct {
	Variable string `json:"variable"`
	Class    string `json:"class"`
}

// ParsedQuery is a structural summary of a SPARQL query: the first named
// resource, the rdf:type declarations, and the raw triple patterns.
type ParsedQuery struct {
	MainEntity string          `json:"main_entity,omitempty"`
	Classes    []ClassBinding  `json:"classes"`
	Triples    []TriplePattern `json:"triples"`
}

var (
	whereRe  = regexp.MustCompile(`(?is)WHERE\s*\{(.*?)\}`)
	tripleRe = regexp.MustCompile(`(\?\w+|<[^>]+>|[a-zA-Z_][\w]*:[\w]*)\s+(a|[a-zA-Z_][\w]*:[\w]*)\s+(\?\w+|<[^>]+>|"[^"]*"|[a-zA-Z_][\w]*:[\w]*)`)
	entityRe = regexp.MustCompile(`dbr:[A-Za-z_0-9]+`)
)

// ParseQuery extracts triple patterns, type declarations and the primary
// named resource from a query. This is a deliberately approximate,
// regex-level scan, not a grammar: nested braces, OPTIONAL, UNION and
// FILTER subexpressions get no special treatment. A query without a WHERE
// block yields an all-empty shape.
func ParseQuery(query string) ParsedQuery {
	var parsed ParsedQuery

	// The main entity is scanned over the whole query text, not just the
	// WHERE block.
	if m := entityRe.FindString(query); m != "" {
		parsed.MainEntity = m
	}

	whereMatch := whereRe.FindStringSubmatch(query)
	if whereMatch == nil {
		return parsed
	}
	whereClause := whereMatch[1]

	for _, m := range tripleRe.FindAllStringSubmatch(whereClause, -1) {
		subject, predicate, object := m[1], m[2], m[3]
		predicate = NormalizePredicate(predicate)

		parsed.Triples = append(parsed.Triples, TriplePattern{
			Subject:   subject,
			Predicate: predicate,
			Object:    object,
		})

		if predicate == "rdf:type" && strings.HasPrefix(subject, "?") {
			parsed.Classes = append(parsed.Classes, ClassBinding{
				Variable: subject,
				Class:    object,
			})
		}
	}

	return parsed
}

// NormalizePredicate maps the "a" shorthand to rdf:type.
func NormalizePredicate(predicate string) string {
	if predicate == "a" || strings.EqualFold(predicate, "rdf:type") {
		return "rdf:type"
	}
	return predicate
}
