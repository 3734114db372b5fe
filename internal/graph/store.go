package graph

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Store exports built graphs to a Bolt-speaking graph database
// (Memgraph/Neo4j). Each export gets its own group id so graphs from
// different questions stay separable.
type Store struct {
	driver neo4j.DriverWithContext
}

func NewStore(uri, username, password string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}
	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}
	log.Println("connected to graph store")
	return &Store{driver: driver}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *Store) execute(ctx context.Context, query string, params map[string]interface{}) error {
	_, err := neo4j.ExecuteQuery(ctx, s.driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// BuildIndices creates the id/group indices. Failures are logged and
// skipped, the index may already exist.
func (s *Store) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :RDFNode(id);",
		"CREATE INDEX ON :RDFNode(group_id);",
	}
	for _, q := range queries {
		if err := s.execute(ctx, q, nil); err != nil {
			log.Printf("warning: failed to create index '%s': %v", q, err)
		}
	}
	return nil
}

// SaveGraph writes the builder's nodes and edges under a fresh group id
// and returns it. Nodes are merged by id within the group; edges are
// created per triple, duplicates included, mirroring the in-memory edge
// list.
func (s *Store) SaveGraph(ctx context.Context, b *Builder) (string, error) {
	groupID := uuid.New().String()

	for _, id := range b.NodeIDs() {
		node, _ := b.Node(id)
		params := map[string]interface{}{
			"id":       id,
			"group_id": groupID,
			"type":     string(node.Type),
			"label":    node.Label,
			"uri":      node.URI,
		}
		query := `
			MERGE (n:RDFNode {id: $id, group_id: $group_id})
			SET n.type = $type, n.label = $label, n.uri = $uri
		`
		if err := s.execute(ctx, query, params); err != nil {
			return "", fmt.Errorf("failed to save node %s: %w", id, err)
		}
	}

	for _, e := range b.Edges() {
		params := map[string]interface{}{
			"subject":   e.Subject,
			"object":    e.Object,
			"predicate": e.Predicate,
			"group_id":  groupID,
		}
		query := `
			MATCH (s:RDFNode {id: $subject, group_id: $group_id})
			MATCH (o:RDFNode {id: $object, group_id: $group_id})
			CREATE (s)-[:RELATES {predicate: $predicate, group_id: $group_id}]->(o)
		`
		if err := s.execute(ctx, query, params); err != nil {
			return "", fmt.Errorf("failed to save edge %s-%s: %w", e.Subject, e.Object, err)
		}
	}

	return groupID, nil
}
