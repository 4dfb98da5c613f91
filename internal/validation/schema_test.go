package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyValidator(t *testing.T) {
	v, err := NewBodyValidator()
	require.NoError(t, err)

	tests := []struct {
		name     string
		schemaID string
		body     string
		wantErr  bool
	}{
		{"signup ok", SchemaSignup, `{"email":"a@b.co","password":"secret1"}`, false},
		{"signup with username", SchemaSignup, `{"email":"a@b.co","password":"secret1","username":"jane"}`, false},
		{"signup null username", SchemaSignup, `{"email":"a@b.co","password":"secret1","username":null}`, false},
		{"signup missing password", SchemaSignup, `{"email":"a@b.co"}`, true},
		{"signup wrong type", SchemaSignup, `{"email":42,"password":"secret1"}`, true},
		{"login ok", SchemaLogin, `{"email":"a@b.co","password":"x"}`, false},
		{"complete profile ok", SchemaCompleteProfile, `{"email":"a@b.co","password":"x","profile":{"date_of_birth":"","primary_skill":"","skill_to_learn":"","bio":""}}`, false},
		{"complete profile missing profile", SchemaCompleteProfile, `{"email":"a@b.co","password":"x"}`, true},
		{"profile update missing bio", SchemaProfileUpdate, `{"date_of_birth":"","primary_skill":"Music","skill_to_learn":"Art"}`, true},
		{"upload ok", SchemaPictureUpload, `{"image_data":"aGk=","file_name":"a.png","content_type":"image/png"}`, false},
		{"upload missing type", SchemaPictureUpload, `{"image_data":"aGk="}`, true},
		{"post ok", SchemaPostCreate, `{"content":"hello","image_url":null}`, false},
		{"post array", SchemaPostCreate, `[]`, true},
		{"malformed json", SchemaLogin, `{invalid json}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.schemaID, []byte(tt.body))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			msg, ok := Message(err)
			assert.True(t, ok)
			assert.Contains(t, msg, "Invalid request body")
		})
	}
}

func TestBodyValidator_UnknownSchema(t *testing.T) {
	v := MustNewBodyValidator()

	err := v.Validate("https://barterup.app/schemas/nope.json", []byte(`{}`))
	assert.Error(t, err)
	_, ok := Message(err)
	assert.False(t, ok)
}
