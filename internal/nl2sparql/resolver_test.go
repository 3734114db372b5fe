package nl2sparql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/querif/querif/internal/sparql"
)

func TestTargetClasses(t *testing.T) {
	mock := &MockChat{ResponseQueue: []string{"dbo:Song dbo:Album dbo:Band dbo:Artist"}}

	srv := sparqlServer(func(query string) string {
		assert.Contains(t, query, "owl:Class")
		return bindingsJSON(
			uriRow("class", "http://dbpedia.org/ontology/Band"),
			uriRow("class", "http://dbpedia.org/ontology/Song"),
		)
	})
	defer srv.Close()

	r := NewResolver(mock, nil, sparql.NewClient(srv.URL), 0.4)
	classes, err := r.TargetClasses(context.Background(), "bands from Seattle", 3)

	assert.NoError(t, err)
	// Candidates past n are dropped before verification, and verification
	// filters without reordering: the LLM's relevance order survives.
	assert.Equal(t, []string{"dbo:Song", "dbo:Band"}, classes)
}

func TestTargetClassesVerificationFailsOpen(t *testing.T) {
	mock := &MockChat{ResponseQueue: []string{"dbo:Song dbo:Album"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewResolver(mock, nil, sparql.NewClient(srv.URL), 0.4)
	classes, err := r.TargetClasses(context.Background(), "songs", 3)

	assert.NoError(t, err)
	assert.Equal(t, []string{"dbo:Song", "dbo:Album"}, classes)
}

func TestClassProperties(t *testing.T) {
	srv := sparqlServer(func(query string) string {
		switch {
		case strings.Contains(query, "owl:DatatypeProperty"):
			return bindingsJSON(uriRow("property", "http://dbpedia.org/ontology/releaseDate"))
		case strings.Contains(query, "owl:ObjectProperty"):
			return bindingsJSON(uriRow("property", "http://dbpedia.org/ontology/artist"))
		default:
			t.Errorf("unexpected query: %s", query)
			return bindingsJSON()
		}
	})
	defer srv.Close()

	r := NewResolver(&MockChat{}, nil, sparql.NewClient(srv.URL), 0.4)
	profile, err := r.ClassProperties(context.Background(), "dbo:Song", false)

	assert.NoError(t, err)
	assert.Equal(t, []string{"dbo:releaseDate"}, profile.Data)
	assert.Equal(t, []string{"dbo:artist"}, profile.Object)
}

func TestClassPropertiesVerified(t *testing.T) {
	srv := sparqlServer(func(query string) string {
		switch {
		case strings.Contains(query, "VALUES (?property)"):
			// Only releaseDate is observed on instances.
			return bindingsJSON(uriRow("property", "http://dbpedia.org/ontology/releaseDate"))
		case strings.Contains(query, "owl:DatatypeProperty"):
			return bindingsJSON(
				uriRow("property", "http://dbpedia.org/ontology/releaseDate"),
				uriRow("property", "http://dbpedia.org/ontology/recordedIn"),
			)
		default:
			return bindingsJSON()
		}
	})
	defer srv.Close()

	r := NewResolver(&MockChat{}, nil, sparql.NewClient(srv.URL), 0.4)
	profile, err := r.ClassProperties(context.Background(), "dbo:Song", true)

	assert.NoError(t, err)
	assert.Equal(t, []string{"dbo:releaseDate"}, profile.Data)
	assert.Empty(t, profile.Object)
}

func TestEntityPropertiesTruncatesValues(t *testing.T) {
	long := strings.Repeat("a", 150)
	srv := sparqlServer(func(query string) string {
		assert.Contains(t, query, "!STRSTARTS(STR(?property)")
		return `{"results": {"bindings": [
			{"property": {"type": "uri", "value": "http://dbpedia.org/ontology/abstract"},
			 "value": {"type": "literal", "value": "` + long + `"}}
		]}}`
	})
	defer srv.Close()

	r := NewResolver(&MockChat{}, nil, sparql.NewClient(srv.URL), 0.4)
	props, err := r.EntityProperties(context.Background(), "dbr:Paris", 30)

	assert.NoError(t, err)
	assert.Len(t, props, 1)
	assert.Equal(t, "dbo:abstract", props[0].Property)
	assert.Len(t, props[0].Value, 103)
	assert.True(t, strings.HasSuffix(props[0].Value, "..."))
}

func TestCommonPropertiesNeedsTwoEntities(t *testing.T) {
	// No endpoint is contacted at all.
	r := NewResolver(&MockChat{}, nil, sparql.NewClient("http://invalid.test"), 0.4)

	props, err := r.CommonProperties(context.Background(), []string{"dbr:Paris"}, 20)
	assert.NoError(t, err)
	assert.Nil(t, props)
}
