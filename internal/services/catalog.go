package services

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultModel is used when a request does not name one.
const DefaultModel = "deepseek-r1-distill-llama-70b"

var defaultModels = map[string]string{
	"deepseek-r1-distill-llama-70b": "deepseek-r1-distill-llama-70b",
	"llama-3.3-70b-versatile":       "llama-3.3-70b-versatile",
	"qwen-qwq-32b":                  "qwen-qwq-32b",
	"qwen-2.5-coder-32b":            "qwen-2.5-coder-32b",
}

// ModelCatalog maps caller-facing model names to Groq model ids. It is built
// once at startup and never mutated, so it is safe to share across requests.
type ModelCatalog struct {
	models map[string]string
	names  []string
}

// NewModelCatalog copies the given mapping. An empty mapping yields the
// built-in catalog.
func NewModelCatalog(models map[string]string) *ModelCatalog {
	if len(models) == 0 {
		models = defaultModels
	}

	c := &ModelCatalog{models: make(map[string]string, len(models))}
	for name, id := range models {
		if id == "" {
			id = name
		}
		c.models[name] = id
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// DefaultModelCatalog returns the built-in catalog.
func DefaultModelCatalog() *ModelCatalog {
	return NewModelCatalog(nil)
}

// catalogFile is the YAML layout accepted by LoadModelCatalog:
//
//	models:
//	  llama-3.3-70b-versatile: llama-3.3-70b-versatile
//	  fast: llama-3.1-8b-instant
type catalogFile struct {
	Models map[string]string `yaml:"models"`
}

// LoadModelCatalog reads a catalog from a YAML file. An empty path returns
// the built-in catalog.
func LoadModelCatalog(path string) (*ModelCatalog, error) {
	if path == "" {
		return DefaultModelCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse model catalog: %w", err)
	}
	if len(f.Models) == 0 {
		return nil, fmt.Errorf("model catalog %s has no models", path)
	}

	return NewModelCatalog(f.Models), nil
}

// Resolve returns the Groq model id for a caller-facing name.
func (c *ModelCatalog) Resolve(name string) (string, bool) {
	id, ok := c.models[name]
	return id, ok
}

// Names returns the accepted caller-facing names in sorted order.
func (c *ModelCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
