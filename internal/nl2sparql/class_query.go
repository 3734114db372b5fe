package nl2sparql

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/querif/querif/internal/sparql"
)

// classQuery finds instances of a class matching the user's criteria
// ("Movies directed by Spielberg"). It is the only generator that retries:
// candidate classes are tried in relevance order until one yields a
// non-empty result set.
func (p *Pipeline) classQuery(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	entities, err := p.resolver.Entities(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	targetClasses, err := p.resolver.TargetClasses(ctx, prompt, 3)
	if err != nil {
		return "", nil, err
	}

	for _, targetClass := range targetClasses {
		props, err := p.resolver.ClassProperties(ctx, targetClass, true)
		if err != nil {
			return "", nil, err
		}

		userContent := fmt.Sprintf(classQueryPrompt,
			prompt,
			targetClass,
			entityJSON(entities),
			strings.Join(capList(props.Data, 15), ", "),
			strings.Join(capList(props.Object, 15), ", "),
		)

		reply, err := p.llm.Chat(ctx, "", userContent, p.temperature)
		if err != nil {
			return "", nil, err
		}

		query, results, err := p.executeChecked(ctx, cleanSPARQL(reply), "class")
		if err != nil {
			return "", nil, err
		}
		if query != "" {
			return query, results, nil
		}
		log.Printf("no results for class %s, trying next candidate", targetClass)
	}

	return "", nil, nil
}
