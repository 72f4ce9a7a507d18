package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/wfzhang/report-extractor/constants"
	"github.com/wfzhang/report-extractor/internal/common"
)

// buildKeywordsJSONSchema returns the JSON-Schema (draft 2020-12 subset)
// a keyword-override file must satisfy: per-role arrays of non-empty
// strings, no unknown roles.
func buildKeywordsJSONSchema() map[string]any {
	roleProp := map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    map[string]any{"type": "string", "minLength": 1},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			string(constants.RoleItem):     roleProp,
			string(constants.RoleValue):    roleProp,
			string(constants.RoleJudgment): roleProp,
		},
	}
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// LoadKeywords returns the header-role keyword sets: the built-in
// defaults when path is empty, otherwise the defaults overridden per
// role by the validated JSON file at path.
func LoadKeywords(path string) (map[constants.Role][]string, error) {
	kw := make(map[constants.Role][]string, len(constants.DefaultKeywords))
	for role, words := range constants.DefaultKeywords {
		kw[role] = append([]string(nil), words...)
	}
	if path == "" {
		return kw, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read keywords file")
	}
	if err := validateJSONAgainstSchema(buildKeywordsJSONSchema(), data); err != nil {
		return nil, fmt.Errorf("%w: keywords file %s: %v", common.ErrValidation, path, err)
	}

	var overrides map[constants.Role][]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("decode keywords file: %w", err)
	}
	for role, words := range overrides {
		kw[role] = words
	}
	return kw, nil
}
