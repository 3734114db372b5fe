package sparql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	var gotQuery, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotFormat = r.URL.Query().Get("format")
		w.Write([]byte(`{"results": {"bindings": [{"s": {"type": "uri", "value": "http://dbpedia.org/resource/Paris"}}]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Execute(context.Background(), "SELECT ?s WHERE { ?s a dbo:City }")

	assert.NoError(t, err)
	assert.Equal(t, "SELECT ?s WHERE { ?s a dbo:City }", gotQuery)
	assert.Equal(t, "application/sparql-results+json", gotFormat)

	assert.False(t, result.Empty())
	assert.Len(t, result.Results.Bindings, 1)
	assert.Equal(t, "http://dbpedia.org/resource/Paris", result.Results.Bindings[0]["s"].Value)
}

func TestExecuteAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"head": {}, "boolean": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Execute(context.Background(), "ASK { dbr:Paris a dbo:City }")

	assert.NoError(t, err)
	assert.NotNil(t, result.Boolean)
	assert.True(t, *result.Boolean)

	// An ASK response has no binding set, which is not the same as an
	// empty one.
	assert.Nil(t, result.Results)
	assert.False(t, result.Empty())
}

func TestExecuteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "malformed query", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Execute(context.Background(), "not sparql")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestEmpty(t *testing.T) {
	empty := &Result{Results: &struct {
		Bindings []Binding `json:"bindings"`
	}{}}
	assert.True(t, empty.Empty())

	var nilResult *Result
	assert.False(t, nilResult.Empty())
}
