// Package catalog holds the predefined queries and parameterized
// templates that can be executed without the LLM pipeline.
package catalog

import (
	"fmt"
	"strings"
)

// Query is a ready-to-run SPARQL query with a short description.
type Query struct {
	Name string `json:"name"`
	Req  string `json:"req"`
	Desc string `json:"desc"`
}

// Template is a SPARQL skeleton with {placeholder} parameters.
type Template struct {
	Name   string   `json:"name"`
	Req    string   `json:"req"`
	Desc   string   `json:"desc"`
	Params []string `json:"params"`
}

var queries = []Query{
	{
		Name: "Barack_Obama",
		Req:  "SELECT ?object WHERE {dbr:Barack_Obama rdfs:label ?object.}",
		Desc: "Get labels of Barack Obama",
	},
	{
		Name: "Michael_Jackson_songs",
		Req: `
SELECT DISTINCT ?song ?songName ?releaseDate ?genre
WHERE {
    ?song a dbo:Song .
    ?song dbo:artist dbr:Michael_Jackson .
    ?song rdfs:label ?songName .

    OPTIONAL {
        ?song dbo:releaseDate ?releaseDate .
        ?song dbo:genre ?genre .
    }

    FILTER (lang(?songName) = "en")
}
LIMIT 100
`,
		Desc: "Get songs by Michael Jackson with optional release dates and genres",
	},
}

var templates = []Template{
	{
		Name: "Artist_Albums",
		Req: `
SELECT DISTINCT ?album_label ?release_date WHERE {
    ?artist rdfs:label "{artist_name}"@en .
    ?album dbo:artist ?artist ;
            rdfs:label ?album_label ;
            dbo:releaseDate ?release_date .
    FILTER (lang(?album_label) = "en")
}
ORDER BY DESC(?release_date)
LIMIT {limit}
`,
		Desc:   "Get N most recent albums of a specified artist with release dates",
		Params: []string{"artist_name", "limit"},
	},
}

// Queries lists the predefined queries.
func Queries() []Query {
	return append([]Query(nil), queries...)
}

// Templates lists the parameterized templates.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// Lookup finds a predefined query by name.
func Lookup(name string) (Query, bool) {
	for _, q := range queries {
		if q.Name == name {
			return q, true
		}
	}
	return Query{}, false
}

// Render fills a template's placeholders. Every declared parameter must
// be supplied.
func Render(name string, params map[string]string) (string, error) {
	for _, t := range templates {
		if t.Name != name {
			continue
		}
		query := t.Req
		for _, p := range t.Params {
			v, ok := params[p]
			if !ok {
				return "", fmt.Errorf("missing template parameter: %s", p)
			}
			query = strings.ReplaceAll(query, "{"+p+"}", v)
		}
		return query, nil
	}
	return "", fmt.Errorf("unknown template: %s", name)
}
