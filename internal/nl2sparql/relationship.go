package nl2sparql

import (
	"context"
	"fmt"

	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
)

// relationship looks for direct predicates between the first two resolved
// entities, in both directions, with a fixed UNION template and no LLM.
func (p *Pipeline) relationship(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	entities, err := p.resolver.Entities(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	if len(entities) < 2 {
		return "", nil, nil
	}

	entity1, entity2 := entities[0].URI, entities[1].URI

	query := fmt.Sprintf(`
	SELECT ?predicate ?direction WHERE {
		{
			%[1]s ?predicate %[2]s .
			BIND("forward" AS ?direction)
		}
		UNION
		{
			%[2]s ?predicate %[1]s .
			BIND("reverse" AS ?direction)
		}
	}
	`, entity1, entity2)

	results, err := p.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		return "", nil, err
	}
	return query, results, nil
}
