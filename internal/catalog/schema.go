package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// topicSchemaURL identifies the compiled topic schema.
const topicSchemaURL = "schema://algebra-topic.json"

func numberProps(names ...string) map[string]any {
	props := make(map[string]any, len(names)+1)
	for _, n := range names {
		props[n] = map[string]any{"type": "number"}
	}
	return props
}

// plotVariant builds the schema branch for one plot type.
func plotVariant(kind string, props map[string]any, required ...string) map[string]any {
	props["type"] = map[string]any{"const": kind}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             append([]any{"type"}, toAny(required)...),
		"additionalProperties": false,
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

var numberArray = map[string]any{
	"type":     "array",
	"items":    map[string]any{"type": "number"},
	"minItems": 1,
}

// TopicSchema is the JSON Schema every topic file must satisfy before it
// is decoded.
var TopicSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "pattern": "^[a-z][a-z0-9-]*$"},
		"name":  map[string]any{"type": "string", "minLength": 1},
		"order": map[string]any{"type": "integer", "minimum": 0},
		"problems": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    problemSchema,
		},
	},
	"required":             []any{"id", "name", "order", "problems"},
	"additionalProperties": false,
}

var problemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "pattern": "^[a-z0-9][a-z0-9-]*$"},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"question":    map[string]any{"type": "string", "minLength": 1},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{string(MultipleChoice), string(FreeResponse)},
		},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"answer": map[string]any{"type": "string", "minLength": 1},
		"hint":   map[string]any{"type": "string"},
		"level":  map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
		"plot":   plotSchema,
	},
	"required":             []any{"id", "title", "question", "kind", "answer", "hint", "level", "plot"},
	"additionalProperties": false,
}

var plotSchema = map[string]any{
	"oneOf": []any{
		plotVariant("quadratic", numberProps("a", "b", "c"), "a", "b", "c"),
		plotVariant("polynomial", map[string]any{"coeffs": numberArray}, "coeffs"),
		plotVariant("exponential", numberProps("a", "b"), "a", "b"),
		plotVariant("logarithm", numberProps("base"), "base"),
		plotVariant("rational", map[string]any{"num": numberArray, "den": numberArray}, "num", "den"),
		plotVariant("linear_system", map[string]any{
			"lines": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "number"},
					"minItems": 2,
					"maxItems": 2,
				},
			},
		}, "lines"),
		plotVariant("circle", numberProps("h", "k", "r"), "h", "k", "r"),
		plotVariant("sequence", func() map[string]any {
			p := numberProps("first", "step")
			p["rule"] = map[string]any{"type": "string", "enum": []any{"arithmetic", "geometric"}}
			return p
		}(), "rule", "first", "step"),
		plotVariant("radical", numberProps("a", "h"), "a", "h"),
		plotVariant("complex_plane", map[string]any{}),
	},
}

var compiledTopicSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler expects a JSON-decoded value, so round-trip the Go map.
	defBytes, err := json.Marshal(TopicSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(topicSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(topicSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateDocument checks a decoded topic document against TopicSchema.
// doc must be JSON-compatible (maps with string keys, float64 numbers).
func validateDocument(doc any) error {
	schema, err := compiledTopicSchema()
	if err != nil {
		return fmt.Errorf("topic schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
