package spotlight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotate(t *testing.T) {
	var gotText, gotConfidence string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotText = r.URL.Query().Get("text")
		gotConfidence = r.URL.Query().Get("confidence")
		w.Write([]byte(`{"Resources": [
			{"@surfaceForm": "Obama", "@URI": "http://dbpedia.org/resource/Barack_Obama"},
			{"@surfaceForm": "Hawaii", "@URI": "http://dbpedia.org/resource/Hawaii"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0.3)
	entities, err := client.Annotate(context.Background(), "Where was Obama born in Hawaii?")

	assert.NoError(t, err)
	assert.Equal(t, "Where was Obama born in Hawaii?", gotText)
	assert.Equal(t, "0.3", gotConfidence)

	// Service order and dbr rewriting are both preserved.
	assert.Equal(t, []Entity{
		{Surface: "Obama", URI: "dbr:Barack_Obama"},
		{Surface: "Hawaii", URI: "dbr:Hawaii"},
	}, entities)
}

func TestAnnotateNoEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0.3)
	entities, err := client.Annotate(context.Background(), "gibberish")

	assert.NoError(t, err)
	assert.Empty(t, entities)
}

func TestAnnotateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0.3)
	_, err := client.Annotate(context.Background(), "anything")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status code 429")
}
