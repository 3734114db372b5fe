package nl2sparql

import (
	"context"
	"log"
	"strings"
)

// Classification runs cooler than generation to reduce category flicker.
const classifierTemperature = 0.1

var queryTypes = map[string]QueryType{
	"FACT_LOOKUP":  FactLookup,
	"CLASS_QUERY":  ClassQuery,
	"AGGREGATION":  Aggregation,
	"COMPARISON":   Comparison,
	"DEFINITION":   Definition,
	"RELATIONSHIP": Relationship,
	"SUPERLATIVE":  Superlative,
	"BOOLEAN":      Boolean,
}

// ClassifyQuery maps a prompt to one of the eight query types with a
// single LLM call. A reply outside the known categories silently defaults
// to CLASS_QUERY.
func (p *Pipeline) ClassifyQuery(ctx context.Context, prompt string) (QueryType, error) {
	reply, err := p.llm.Chat(ctx, queryTypeDetectionPrompt, prompt, classifierTemperature)
	if err != nil {
		return "", err
	}

	key := strings.ToUpper(strings.TrimSpace(reply))
	if qt, ok := queryTypes[key]; ok {
		return qt, nil
	}
	log.Printf("unknown query type %q, defaulting to CLASS_QUERY", key)
	return ClassQuery, nil
}
