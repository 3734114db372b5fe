package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Profile is one named LLM configuration. Profiles are addressed by key
// ("liris", "deepseek", ...) when running the pipeline.
type Profile struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Temperature float32 `toml:"temperature"`
}

type Endpoints struct {
	Spotlight  string  `toml:"spotlight"`
	SPARQL     string  `toml:"sparql"`
	Confidence float64 `toml:"confidence"`
}

// Sink is an optional Bolt graph database the materialized RDF graphs can
// be exported to. Empty URI disables the sink.
type Sink struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Config struct {
	DefaultProfile string             `toml:"default_profile"`
	Profiles       map[string]Profile `toml:"profiles"`
	Endpoints      Endpoints          `toml:"endpoints"`
	Sink           Sink               `toml:"sink"`
}

// Default returns the built-in configuration used when no file is given:
// public DBpedia endpoints and OpenAI-compatible profiles whose
// credentials come from the environment.
func Default() *Config {
	return &Config{
		DefaultProfile: "liris",
		Profiles: map[string]Profile{
			"liris": {
				Provider:    "openai",
				Model:       "llama3:70b",
				Temperature: 0.4,
			},
			"deepseek": {
				Provider:    "openai",
				Model:       "deepseek-chat",
				Temperature: 0.4,
			},
		},
		Endpoints: Endpoints{
			Spotlight:  "https://api.dbpedia-spotlight.org/en/annotate",
			SPARQL:     "https://dbpedia.org/sparql",
			Confidence: 0.3,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides profile credentials from {PROFILE}_API and
// {PROFILE}_API_KEY environment variables, plus endpoint/sink overrides.
func (c *Config) ApplyEnv() {
	for key, p := range c.Profiles {
		prefix := strings.ToUpper(key)
		if v := os.Getenv(prefix + "_API"); v != "" {
			p.BaseURL = v
		}
		if v := os.Getenv(prefix + "_API_KEY"); v != "" {
			p.APIKey = v
		}
		c.Profiles[key] = p
	}
	if v := os.Getenv("SPARQL_ENDPOINT"); v != "" {
		c.Endpoints.SPARQL = v
	}
	if v := os.Getenv("SPOTLIGHT_ENDPOINT"); v != "" {
		c.Endpoints.Spotlight = v
	}
	if v := os.Getenv("GRAPH_SINK_URI"); v != "" {
		c.Sink.URI = v
	}
}

// Profile looks up a named profile. A missing key is a configuration
// error, not a silent default.
func (c *Config) Profile(key string) (Profile, error) {
	if key == "" {
		key = c.DefaultProfile
	}
	p, ok := c.Profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("no configuration found for profile: %s", key)
	}
	return p, nil
}
