package nl2sparql

import (
	"context"
	"fmt"
	"strings"

	"github.com/querif/querif/internal/sparql"
)

// aggregation handles counting and statistics questions ("How many albums
// did Adele release?"). With no resolvable class it still asks, scoped to
// owl:Thing.
func (p *Pipeline) aggregation(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	targetClasses, err := p.resolver.TargetClasses(ctx, prompt, 1)
	if err != nil {
		return "", nil, err
	}

	targetClass := "owl:Thing"
	if len(targetClasses) > 0 {
		targetClass = targetClasses[0]
	}

	props, err := p.resolver.ClassProperties(ctx, targetClass, true)
	if err != nil {
		return "", nil, err
	}

	var lines []string
	for _, prop := range append(props.Data, props.Object...) {
		lines = append(lines, "  "+prop)
	}

	userContent := fmt.Sprintf(aggregationPrompt, prompt, targetClass, strings.Join(lines, "\n"))
	reply, err := p.llm.Chat(ctx, "", userContent, p.temperature)
	if err != nil {
		return "", nil, err
	}

	return p.executeChecked(ctx, cleanSPARQL(reply), "aggregation")
}
