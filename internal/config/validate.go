// Where: internal/config/validate.go
// What: Schema validation for the global config file.
// Why: Catch malformed config with a field-level message instead of a misbehaving refresh.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	yamlv3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"
)

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "profile": {"type": "string", "minLength": 1},
    "domain": {"type": "string"},
    "domain_owner": {"type": "string", "pattern": "^([0-9]{12})?$"},
    "region": {"type": "string", "minLength": 1},
    "source": {"type": "string", "minLength": 1},
    "log_path": {"type": "string"},
    "timeout_seconds": {"type": "integer", "minimum": 1, "maximum": 600},
    "nuget_config_path": {"type": "string"}
  },
  "required": ["version", "profile", "region", "source", "timeout_seconds"],
  "additionalProperties": false
}`

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("config.schema.json")
	})
	return compiledSchema, schemaErr
}

// Validate checks a resolved Config against the embedded schema.
func Validate(cfg Config) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	payload, err := yamlv3.Marshal(&cfg)
	if err != nil {
		return err
	}
	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
