package nl2sparql

import (
	"context"
	"fmt"
	"strings"

	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
)

// boolean turns yes/no questions into ASK queries. Like superlative,
// execution is unguarded and whatever comes back is returned.
func (p *Pipeline) boolean(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	entities, err := p.resolver.Entities(ctx, prompt)
	if err != nil {
		return "", nil, err
	}

	system := fmt.Sprintf(booleanPrompt, prompt, "["+strings.Join(entityURIs(entities), ", ")+"]")
	reply, err := p.llm.Chat(ctx, system, prompt, p.temperature)
	if err != nil {
		return "", nil, err
	}

	query := cleanSPARQL(reply)
	results, err := p.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		return "", nil, err
	}
	return query, results, nil
}
