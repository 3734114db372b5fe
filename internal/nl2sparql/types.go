package nl2sparql

// QueryType classifies a natural-language question into one of the eight
// SPARQL generation strategies.
type QueryType string

const (
	FactLookup   QueryType = "FACT_LOOKUP"  // direct property of an entity
	ClassQuery   QueryType = "CLASS_QUERY"  // find instances of a class
	Aggregation  QueryType = "AGGREGATION"  // COUNT, SUM, AVG, etc.
	Comparison   QueryType = "COMPARISON"   // compare two entities
	Definition   QueryType = "DEFINITION"   // define a term or concept
	Relationship QueryType = "RELATIONSHIP" // relationship between entities
	Superlative  QueryType = "SUPERLATIVE"  // largest, oldest, most, ...
	Boolean      QueryType = "BOOLEAN"      // yes/no questions
)

// ClassProfile lists the properties of a target class, split by kind.
type ClassProfile struct {
	Data   []string `json:"data"`
	Object []string `json:"object"`
}

// PropertyValue is a sampled property/value pair of an entity.
type PropertyValue struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}
