package nl2sparql

import (
	"context"
	"fmt"

	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
)

// definition answers "What is X?" with a fixed label/abstract template.
// No LLM is involved; with no resolvable entity there is nothing to define
// and no SPARQL call is made either.
func (p *Pipeline) definition(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	entities, err := p.resolver.Entities(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	if len(entities) == 0 {
		return "", nil, nil
	}

	mainEntity := entities[0].URI

	query := fmt.Sprintf(`
	SELECT ?label ?abstract ?type WHERE {
		%[1]s rdfs:label ?label ;
		      dbo:abstract ?abstract .
		OPTIONAL { %[1]s rdf:type ?type . }
		FILTER (lang(?label) = "en" && lang(?abstract) = "en")
	} LIMIT 1
	`, mainEntity)

	results, err := p.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		return "", nil, err
	}
	return query, results, nil
}
