package composio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Each structured-input method owns a fixed schema, compiled once at package
// init. Violations surface as validation_error naming the offending fields.

var (
	createConnectedAccountSchema = mustCompileSchema(`{
		"type": "object",
		"properties": {
			"integrationId": {"type": "string", "minLength": 1},
			"entityId":      {"type": "string"},
			"labels":        {"type": "array", "items": {"type": "string"}},
			"redirectUri":   {"type": "string"},
			"data":          {"type": "object"}
		},
		"required": ["integrationId"]
	}`)

	initiateConnectionSchema = mustCompileSchema(`{
		"type": "object",
		"properties": {
			"integrationId": {"type": "string"},
			"appName":       {"type": "string"},
			"authMode":      {"type": "string"},
			"authConfig":    {"type": "object"},
			"entityId":      {"type": "string"},
			"labels":        {"type": "array", "items": {"type": "string"}},
			"redirectUri":   {"type": "string"},
			"data":          {"type": "object"}
		}
	}`)

	createIntegrationSchema = mustCompileSchema(`{
		"type": "object",
		"properties": {
			"appId":           {"type": "string", "minLength": 1},
			"name":            {"type": "string", "minLength": 1},
			"authScheme":      {"type": "string"},
			"authConfig":      {"type": "object"},
			"useComposioAuth": {"type": "boolean"}
		},
		"required": ["appId", "name"]
	}`)

	saveUserAccessDataSchema = mustCompileSchema(`{
		"type": "object",
		"properties": {
			"fieldInputs": {"type": "object"},
			"redirectUrl": {"type": "string"},
			"entityId":    {"type": "string"}
		},
		"required": ["fieldInputs"]
	}`)
)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("composio: invalid embedded schema: %v", err))
	}
	return schema
}

func validatePayload(method string, schema *gojsonschema.Schema, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return newValidationError(method, "payload is not serializable: %v", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return newValidationError(method, "payload is not valid JSON: %v", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}
	return newValidationError(method, "invalid payload: %s", strings.Join(msgs, "; "))
}

func validateID(method, name, id string) error {
	if strings.TrimSpace(id) == "" {
		return newValidationError(method, "%s must be a non-empty string", name)
	}
	return nil
}
