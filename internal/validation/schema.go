package validation

import (
	"embed"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

// Schema identifiers of the request bodies.
const (
	SchemaSignup          = "https://barterup.app/schemas/signup.json"
	SchemaLogin           = "https://barterup.app/schemas/login.json"
	SchemaCompleteProfile = "https://barterup.app/schemas/complete_profile.json"
	SchemaProfileUpdate   = "https://barterup.app/schemas/profile_update.json"
	SchemaPictureUpload   = "https://barterup.app/schemas/picture_upload.json"
	SchemaPostCreate      = "https://barterup.app/schemas/post_create.json"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// BodyValidator checks raw request bodies against compiled JSON schemas.
type BodyValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewBodyValidator compiles every embedded schema, keyed by its $id.
func NewBodyValidator() (*BodyValidator, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("cannot read schemas: %w", err)
	}

	v := &BodyValidator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, e := range entries {
		raw, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("cannot read schema %s: %w", e.Name(), err)
		}

		var head struct {
			ID string `json:"$id"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return nil, fmt.Errorf("parse error in schema %s: %w", e.Name(), err)
		}
		if head.ID == "" {
			return nil, fmt.Errorf("schema %s does not contain $id", e.Name())
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("cannot compile schema %s: %w", head.ID, err)
		}
		v.schemas[head.ID] = schema
	}
	return v, nil
}

// MustNewBodyValidator is NewBodyValidator that panics on error.
func MustNewBodyValidator() *BodyValidator {
	v, err := NewBodyValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate returns a validation Error when body does not match schemaID.
func (v *BodyValidator) Validate(schemaID string, body []byte) error {
	schema, ok := v.schemas[schemaID]
	if !ok {
		return fmt.Errorf("there is no schema %s", schemaID)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return Errorf("Invalid request body")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return Errorf("Invalid request body: " + strings.Join(msgs, "; "))
	}
	return nil
}
