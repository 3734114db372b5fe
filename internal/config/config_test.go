package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "liris", cfg.DefaultProfile)
	assert.Equal(t, "https://dbpedia.org/sparql", cfg.Endpoints.SPARQL)
	assert.Equal(t, 0.3, cfg.Endpoints.Confidence)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
default_profile = "deepseek"

[profiles.deepseek]
provider = "openai"
model = "deepseek-chat"
temperature = 0.2

[endpoints]
sparql = "http://localhost:8890/sparql"
`), 0o644)
	assert.NoError(t, err)

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "deepseek", cfg.DefaultProfile)
	assert.Equal(t, "http://localhost:8890/sparql", cfg.Endpoints.SPARQL)

	// Values the file does not mention keep their defaults.
	assert.Equal(t, "https://api.dbpedia-spotlight.org/en/annotate", cfg.Endpoints.Spotlight)

	p, err := cfg.Profile("")
	assert.NoError(t, err)
	assert.Equal(t, "deepseek-chat", p.Model)
	assert.Equal(t, float32(0.2), p.Temperature)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.toml")
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LIRIS_API", "http://llm.example.org/v1")
	t.Setenv("LIRIS_API_KEY", "secret")
	t.Setenv("SPARQL_ENDPOINT", "http://localhost:8890/sparql")

	cfg := Default()
	cfg.ApplyEnv()

	p := cfg.Profiles["liris"]
	assert.Equal(t, "http://llm.example.org/v1", p.BaseURL)
	assert.Equal(t, "secret", p.APIKey)
	assert.Equal(t, "http://localhost:8890/sparql", cfg.Endpoints.SPARQL)
}

func TestProfileMissingKey(t *testing.T) {
	cfg := Default()
	_, err := cfg.Profile("nope")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration found for profile: nope")
}
