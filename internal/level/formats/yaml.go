package formats

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed level.schema.json
var levelSchemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func levelSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("level.schema.json", levelSchemaJSON)
	})
	return schema, schemaErr
}

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file after validating it against the level schema.
func ParseYAML(data []byte) (Level, error) {
	if err := ValidateYAML(data); err != nil {
		return Level{}, err
	}

	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	return Level{ID: yl.ID, Name: name, Rows: yl.Rows, Metadata: yl.Metadata}, nil
}

// ValidateYAML checks a YAML level document against the level schema.
func ValidateYAML(data []byte) error {
	s, err := levelSchema()
	if err != nil {
		return fmt.Errorf("compile level schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	// The validator expects values shaped like encoding/json output.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("yaml to json: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("yaml to json: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
