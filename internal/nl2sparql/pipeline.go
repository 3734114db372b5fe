package nl2sparql

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/querif/querif/internal/config"
	"github.com/querif/querif/internal/llm"
	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
	"github.com/querif/querif/internal/spotlight"
)

// Pipeline turns a natural-language prompt into an executed SPARQL query.
// The soft-failure convention is ("", nil, nil): the question could not be
// answered, as opposed to a propagated error.
type Pipeline struct {
	llm         llm.ChatClient
	sparql      *sparql.Client
	resolver    *Resolver
	temperature float32
}

func New(llmClient llm.ChatClient, sp *spotlight.Client, sq *sparql.Client, temperature float32) *Pipeline {
	return &Pipeline{
		llm:         llmClient,
		sparql:      sq,
		resolver:    NewResolver(llmClient, sp, sq, temperature),
		temperature: temperature,
	}
}

// FromConfig wires a pipeline for a named LLM profile. Client construction
// fails fast on missing credentials.
func FromConfig(ctx context.Context, cfg *config.Config, profileKey string) (*Pipeline, error) {
	if profileKey == "" {
		profileKey = cfg.DefaultProfile
	}
	profile, err := cfg.Profile(profileKey)
	if err != nil {
		return nil, err
	}
	client, err := llm.NewClient(ctx, profileKey, profile)
	if err != nil {
		return nil, err
	}
	sp := spotlight.NewClient(cfg.Endpoints.Spotlight, cfg.Endpoints.Confidence)
	sq := sparql.NewClient(cfg.Endpoints.SPARQL)
	return New(client, sp, sq, profile.Temperature), nil
}

// Resolver exposes the pipeline's context-gathering half.
func (p *Pipeline) Resolver() *Resolver {
	return p.resolver
}

// GenerateAndExecute classifies the prompt and routes it to the matching
// generator. A type with no generator is the defined soft failure, not an
// error; generator errors propagate untouched.
func (p *Pipeline) GenerateAndExecute(ctx context.Context, prompt string) (string, *sparql.Result, error) {
	queryType, err := p.ClassifyQuery(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	log.Printf("detected query type: %s", queryType)

	switch queryType {
	case FactLookup:
		return p.factLookup(ctx, prompt)
	case ClassQuery:
		return p.classQuery(ctx, prompt)
	case Aggregation:
		return p.aggregation(ctx, prompt)
	case Comparison:
		return p.comparison(ctx, prompt)
	case Definition:
		return p.definition(ctx, prompt)
	case Relationship:
		return p.relationship(ctx, prompt)
	case Superlative:
		return p.superlative(ctx, prompt)
	case Boolean:
		return p.boolean(ctx, prompt)
	default:
		return "", nil, nil
	}
}

// cleanSPARQL strips the markdown code fences LLMs like to wrap queries in.
func cleanSPARQL(response string) string {
	query := strings.TrimSpace(response)
	query = strings.ReplaceAll(query, "```sparql", "")
	query = strings.ReplaceAll(query, "```sql", "")
	query = strings.ReplaceAll(query, "```", "")
	return strings.TrimSpace(query)
}

// executeChecked runs a generated query and applies the common
// soft-failure policy: execution errors and empty result sets both become
// ("", nil, nil).
func (p *Pipeline) executeChecked(ctx context.Context, query, label string) (string, *sparql.Result, error) {
	results, err := p.sparql.Execute(ctx, rdf.PrefixBlock()+query)
	if err != nil {
		log.Printf("%s query execution failed: %v", label, err)
		return "", nil, nil
	}
	if !results.Empty() {
		return query, results, nil
	}
	return "", nil, nil
}

// rows is a nil-safe accessor for a binding set.
func rows(r *sparql.Result) []sparql.Binding {
	if r == nil || r.Results == nil {
		return nil
	}
	return r.Results.Bindings
}

// entityJSON renders resolved entities the way generator prompts expect:
// a surface-form to URI object.
func entityJSON(entities []spotlight.Entity) string {
	if len(entities) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for i, e := range entities {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %q", e.Surface, e.URI)
	}
	b.WriteString("}")
	return b.String()
}

func entityURIs(entities []spotlight.Entity) []string {
	uris := make([]string, len(entities))
	for i, e := range entities {
		uris[i] = e.URI
	}
	return uris
}
