package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// moduleSchema is the manifest contract. Unknown extra keys are permitted so
// presentation-layer metadata can ride along without breaking gating.
const moduleSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["module", "title", "lessons"],
  "properties": {
    "module": {"type": "string", "minLength": 1},
    "title": {"type": "string"},
    "lessons": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "checkpoint": {
            "type": "object",
            "required": ["fields"],
            "properties": {
              "fields": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["name", "type"],
                  "properties": {
                    "name": {"type": "string", "minLength": 1},
                    "type": {"enum": ["text", "textarea", "url"]},
                    "label": {"type": "string"},
                    "placeholder": {"type": "string"},
                    "required": {"type": "boolean"},
                    "minChars": {"type": "integer", "minimum": 0},
                    "minWords": {"type": "integer", "minimum": 0},
                    "mustIncludeAny": {"type": "array", "items": {"type": "string"}},
                    "mustIncludeAll": {"type": "array", "items": {"type": "string"}},
                    "urlPattern": {"type": "string"}
                  }
                }
              }
            }
          },
          "questions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "text"],
              "properties": {
                "id": {"type": "string", "minLength": 1},
                "text": {"type": "string"},
                "kind": {"enum": ["atomic", "practice"]},
                "options": {"type": "array", "items": {"type": "string"}},
                "answer": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the manifest schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(moduleSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse manifest schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://module.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateManifest checks raw manifest bytes against the schema.
func validateManifest(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiled()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
