package nl2sparql

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
	"github.com/querif/querif/internal/spotlight"
)

// Namespaces whose properties are noise for prompt construction
// (owl:sameAs, provenance, templates, external IDs, linguistic data).
var excludedNamespaces = []string{
	"http://www.w3.org/2002/07/owl#",
	"http://www.w3.org/ns/prov#",
	"http://dbpedia.org/resource/Template:",
	"http://www.wikidata.org/entity/",
	"http://purl.org/linguistics/gold/",
}

// Resolver gathers context for query generation from the entity-linking
// service, the LLM and the live ontology. It holds no state across calls.
type Resolver struct {
	llm         chatFn
	sparql      *sparql.Client
	spotlight   *spotlight.Client
	temperature float32
}

type chatFn interface {
	Chat(ctx context.Context, system, user string, temperature float32) (string, error)
}

func NewResolver(llm chatFn, sp *spotlight.Client, sq *sparql.Client, temperature float32) *Resolver {
	return &Resolver{llm: llm, sparql: sq, spotlight: sp, temperature: temperature}
}

// Entities links DBpedia resources in the prompt. An empty result is
// valid; a failed request is an error.
func (r *Resolver) Entities(ctx context.Context, text string) ([]spotlight.Entity, error) {
	return r.spotlight.Annotate(ctx, text)
}

// TargetClasses asks the LLM for up to n candidate DBpedia classes and
// keeps only those confirmed to be owl:Class, in the LLM's relevance
// order. Verification filters, never reorders; a failed verification
// query fails open and returns the unverified candidates.
func (r *Resolver) TargetClasses(ctx context.Context, prompt string, n int) ([]string, error) {
	reply, err := r.llm.Chat(ctx, fmt.Sprintf(targetClassDetectionPrompt, n), prompt, r.temperature)
	if err != nil {
		return nil, err
	}

	classes := strings.Fields(reply)
	if len(classes) > n {
		classes = classes[:n]
	}

	verified := r.verifyClassesExist(ctx, classes)
	if len(verified) == 0 {
		log.Printf("warning: no valid DBpedia classes found for prompt: %s", prompt)
	}
	return verified, nil
}

func (r *Resolver) verifyClassesExist(ctx context.Context, classes []string) []string {
	if len(classes) == 0 {
		return nil
	}

	var values []string
	for _, c := range classes {
		values = append(values, "("+c+")")
	}
	query := fmt.Sprintf(`
	SELECT DISTINCT ?class WHERE {
		VALUES (?class) { %s }
		?class rdf:type owl:Class .
	}
	`, strings.Join(values, " "))

	results, err := r.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		log.Printf("warning: failed to verify classes: %v", err)
		return classes // unverified, fail open
	}

	existing := make(map[string]bool)
	for _, b := range rows(results) {
		existing[rdf.URIToPrefixed(b["class"].Value)] = true
	}

	var kept []string
	for _, c := range classes {
		if existing[c] {
			kept = append(kept, c)
		}
	}
	return kept
}

// ClassProperties discovers the datatype and object properties whose
// domain is the class, capped at 20 per kind. When verify is set, each
// list is restricted to properties actually observed on instances, via
// one batched existence check per kind.
func (r *Resolver) ClassProperties(ctx context.Context, classURI string, verify bool) (ClassProfile, error) {
	dataProps, err := r.ontologyProperties(ctx, classURI, "owl:DatatypeProperty")
	if err != nil {
		return ClassProfile{}, err
	}
	objectProps, err := r.ontologyProperties(ctx, classURI, "owl:ObjectProperty")
	if err != nil {
		return ClassProfile{}, err
	}

	dataProps = capList(dataProps, 20)
	objectProps = capList(objectProps, 20)

	if !verify {
		return ClassProfile{Data: dataProps, Object: objectProps}, nil
	}

	return ClassProfile{
		Data:   r.verifyPropertiesBatch(ctx, classURI, dataProps),
		Object: r.verifyPropertiesBatch(ctx, classURI, objectProps),
	}, nil
}

func (r *Resolver) ontologyProperties(ctx context.Context, classURI, propertyType string) ([]string, error) {
	query := fmt.Sprintf(`
	SELECT DISTINCT ?property
	WHERE {
		?property rdf:type %s ;
		          rdfs:domain %s .
	}
	`, propertyType, classURI)

	results, err := r.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		return nil, err
	}

	var props []string
	for _, b := range rows(results) {
		props = append(props, rdf.URIToPrefixed(b["property"].Value))
	}
	return props, nil
}

// verifyPropertiesBatch keeps the properties actually used on instances
// of the class, checked in a single VALUES query rather than one round
// trip per property. A failed check fails open.
func (r *Resolver) verifyPropertiesBatch(ctx context.Context, classURI string, properties []string) []string {
	if len(properties) == 0 {
		return nil
	}

	var values []string
	for _, p := range properties {
		values = append(values, "("+p+")")
	}
	query := fmt.Sprintf(`
	SELECT DISTINCT ?property WHERE {
		VALUES (?property) { %s }
		?s rdf:type %s ;
		   ?property ?o .
	}
	`, strings.Join(values, " "), classURI)

	results, err := r.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		log.Printf("warning: failed to verify properties for %s: %v", classURI, err)
		return properties
	}

	var verified []string
	for _, b := range rows(results) {
		verified = append(verified, rdf.URIToPrefixed(b["property"].Value))
	}
	return verified
}

// EntityProperties samples property/value pairs of an entity, skipping
// noisy namespaces. Long values are truncated for prompt use.
func (r *Resolver) EntityProperties(ctx context.Context, entityURI string, limit int) ([]PropertyValue, error) {
	query := fmt.Sprintf(`
	SELECT DISTINCT ?property ?value WHERE {
		%s ?property ?value .
		FILTER(%s)
	} LIMIT %d
	`, entityURI, exclusionFilters(), limit)

	results, err := r.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		return nil, err
	}

	var props []PropertyValue
	for _, b := range rows(results) {
		value := b["value"].Value
		if len(value) > 100 {
			value = value[:100] + "..."
		}
		props = append(props, PropertyValue{
			Property: rdf.URIToPrefixed(b["property"].Value),
			Value:    value,
		})
	}
	return props, nil
}

// CommonProperties finds predicates present on both of the first two
// entities. Fewer than two entities yields an empty list without a query.
func (r *Resolver) CommonProperties(ctx context.Context, entityURIs []string, limit int) ([]string, error) {
	if len(entityURIs) < 2 {
		return nil, nil
	}

	query := fmt.Sprintf(`
	SELECT DISTINCT ?property WHERE {
		%s ?property ?val1 .
		%s ?property ?val2 .
		FILTER(%s)
	} LIMIT %d
	`, entityURIs[0], entityURIs[1], exclusionFilters(), limit)

	results, err := r.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		return nil, err
	}

	var props []string
	for _, b := range rows(results) {
		props = append(props, rdf.URIToPrefixed(b["property"].Value))
	}
	return props, nil
}

func exclusionFilters() string {
	var filters []string
	for _, ns := range excludedNamespaces {
		filters = append(filters, fmt.Sprintf(`!STRSTARTS(STR(?property), "%s")`, ns))
	}
	return strings.Join(filters, " && ")
}

func capList(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
