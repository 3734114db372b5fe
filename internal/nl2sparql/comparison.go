package nl2sparql

import (
	"context"
	"fmt"
	"strings"

	"github.com/querif/querif/internal/sparql"
)

// comparison compares two or more entities ("Who is older, Obama or
// Trump?"). Fewer than two resolved entities bails out before any LLM
// call.
func (p *Pipeline) comparison(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	entities, err := p.resolver.Entities(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	if len(entities) < 2 {
		return "", nil, nil
	}

	uris := entityURIs(entities)
	commonProps, err := p.resolver.CommonProperties(ctx, uris[:2], 20)
	if err != nil {
		return "", nil, err
	}
	if len(commonProps) == 0 {
		// Fall back to the first entity's own properties.
		props, err := p.resolver.EntityProperties(ctx, uris[0], 20)
		if err != nil {
			return "", nil, err
		}
		for _, pv := range props {
			commonProps = append(commonProps, pv.Property)
		}
	}

	var lines []string
	for _, prop := range commonProps {
		lines = append(lines, "  "+prop)
	}

	userContent := fmt.Sprintf(comparisonPrompt, prompt, entityJSON(entities), strings.Join(lines, "\n"))
	reply, err := p.llm.Chat(ctx, "", userContent, p.temperature)
	if err != nil {
		return "", nil, err
	}

	return p.executeChecked(ctx, cleanSPARQL(reply), "comparison")
}
