package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://hamexam/bank.json"

// bankSchema accepts both the legacy bare array and the object form with a
// "questions" array and optional "_meta" block.
var bankSchema = map[string]any{
	"$defs": map[string]any{
		"question": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":             map[string]any{"type": "string", "minLength": SectionLen},
				"question":       map[string]any{"type": "string", "minLength": 1},
				"options":        map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string"}},
				"correct_answer": map[string]any{"type": "string", "minLength": 1},
				"image":          map[string]any{"type": []any{"string", "null"}},
			},
			"required": []any{"id", "question", "options", "correct_answer"},
		},
		"questions": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/question"},
		},
	},
	"oneOf": []any{
		map[string]any{"$ref": "#/$defs/questions"},
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{"$ref": "#/$defs/questions"},
				"_meta":     map[string]any{"type": "object"},
			},
			"required": []any{"questions"},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles bankSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON document against the bank schema.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
