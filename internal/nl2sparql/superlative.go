package nl2sparql

import (
	"context"
	"fmt"
	"strings"

	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
)

// superlative finds extremes ("Largest city in Germany"). Execution is
// deliberately unguarded: errors propagate and the result set is returned
// without an emptiness check.
func (p *Pipeline) superlative(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	targetClasses, err := p.resolver.TargetClasses(ctx, prompt, 1)
	if err != nil {
		return "", nil, err
	}
	if len(targetClasses) == 0 {
		return "", nil, nil
	}

	targetClass := targetClasses[0]
	props, err := p.resolver.ClassProperties(ctx, targetClass, true)
	if err != nil {
		return "", nil, err
	}
	allProps := append(capList(props.Data, 10), capList(props.Object, 10)...)

	system := fmt.Sprintf(superlativePrompt, prompt, targetClass, strings.Join(allProps, "\n"))
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
