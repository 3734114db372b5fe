package nl2sparql

import (
	"context"
	"fmt"
	"strings"

	"github.com/querif/querif/internal/sparql"
)

// factLookup answers questions about one specific property of a named
// entity ("When was Obama born?"). Unlike its siblings it treats missing
// context as a hard error: no entities or no properties means the prompt
// cannot be a fact lookup at all.
func (p *Pipeline) factLookup(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	entities, err := p.resolver.Entities(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	if len(entities) == 0 {
		return "", nil, fmt.Errorf("no entities found in the prompt for fact lookup query")
	}

	mainEntity := entities[0].URI
	props, err := p.resolver.EntityProperties(ctx, mainEntity, 30)
	if err != nil {
		return "", nil, err
	}
	if len(props) == 0 {
		return "", nil, fmt.Errorf("no properties found for the main entity in fact lookup query")
	}

	var lines []string
	for _, pv := range props {
		lines = append(lines, fmt.Sprintf("  %s: %s", pv.Property, pv.Value))
	}

	userContent := fmt.Sprintf(factLookupPrompt, prompt, mainEntity, strings.Join(lines, "\n"))
	reply, err := p.llm.Chat(ctx, "", userContent, p.temperature)
	if err != nil {
		return "", nil, err
	}

	return p.executeChecked(ctx, cleanSPARQL(reply), "fact lookup")
}
