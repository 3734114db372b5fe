package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	q, ok := Lookup("Barack_Obama")
	assert.True(t, ok)
	assert.Contains(t, q.Req, "dbr:Barack_Obama rdfs:label")

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	query, err := Render("Artist_Albums", map[string]string{
		"artist_name": "Daft Punk",
		"limit":       "5",
	})

	assert.NoError(t, err)
	assert.Contains(t, query, `rdfs:label "Daft Punk"@en`)
	assert.Contains(t, query, "LIMIT 5")
	assert.NotContains(t, query, "{artist_name}")
}

func TestRenderMissingParam(t *testing.T) {
	_, err := Render("Artist_Albums", map[string]string{"artist_name": "Daft Punk"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing template parameter: limit")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("nope", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}
