package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []string{"title", "count"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title":"Paris basics","count":3}`)
	if err := validateResponse(testSchema("validate-valid"), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"no count"}`)
	err := validateResponse(testSchema("validate-missing"), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": `)
	err := validateResponse(testSchema("validate-malformed"), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`"anything goes"`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	s := testSchema("validate-cache")
	raw := json.RawMessage(`{"title":"x","count":1}`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	// Second validation hits the cache.
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("unexpected error on cached path: %v", err)
	}
}
