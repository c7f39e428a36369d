// Package config parses and validates the source configuration envelope
// the pipeline hands to every step. Field presence is checked structurally
// against a typed envelope and a JSON Schema, never by substring probing of
// a stringified payload.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kaptinlin/jsonschema"

	coreerrors "github.com/orgpull/orgpull/core/errors"
)

const (
	// DefaultRoleName is the per-account role written into the inventory
	// when the source omits rolename.
	DefaultRoleName = "tf-admin"

	// DefaultScopePath is the scope used when the source omits scope:
	// the whole organization from the tree root.
	DefaultScopePath = "/"
)

// Envelope is the outer input document: {"source": {...}}.
type Envelope struct {
	Source json.RawMessage `json:"source"`
}

// Source holds the validated configuration for one run.
type Source struct {
	AssumeRole          string   `json:"assumerole"`
	OrganizationAccount string   `json:"organization_account"`
	RoleName            string   `json:"rolename"`
	Scope               []string `json:"scope"`
	Active              FlexBool `json:"active"`
}

// sourceSchema constrains field types; required-field diagnostics are
// produced separately so each missing field is named individually.
const sourceSchema = `{
  "type": "object",
  "properties": {
    "assumerole": {"type": "string"},
    "organization_account": {"type": "string"},
    "rolename": {"type": "string"},
    "scope": {"type": "array", "items": {"type": "string"}},
    "active": {"type": ["boolean", "string"]}
  }
}`

// Load reads a configuration envelope from reader and returns the validated
// source with defaults applied. All failures are classified invalid-input
// and occur before any directory access.
func Load(reader io.Reader) (Source, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return Source{}, invalidInput(fmt.Errorf("read configuration: %w", err))
	}
	return Parse(content)
}

// Parse validates and decodes a raw configuration envelope.
func Parse(content []byte) (Source, error) {
	var envelope Envelope
	if err := json.Unmarshal(content, &envelope); err != nil {
		return Source{}, invalidInput(fmt.Errorf("parse configuration envelope: %w", err))
	}
	if len(envelope.Source) == 0 || string(envelope.Source) == "null" {
		return Source{}, invalidInput(fmt.Errorf("configuration envelope has no source object"))
	}

	if err := validateSourceShape(envelope.Source); err != nil {
		return Source{}, err
	}

	var source Source
	if err := json.Unmarshal(envelope.Source, &source); err != nil {
		return Source{}, invalidInput(fmt.Errorf("parse source configuration: %w", err))
	}

	if strings.TrimSpace(source.AssumeRole) == "" {
		return Source{}, invalidInput(fmt.Errorf("source configuration is missing required field %q", "assumerole"))
	}
	if strings.TrimSpace(source.OrganizationAccount) == "" {
		return Source{}, invalidInput(fmt.Errorf("source configuration is missing required field %q", "organization_account"))
	}

	source.applyDefaults()
	return source, nil
}

func validateSourceShape(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile([]byte(sourceSchema))
	if err != nil {
		return coreerrors.Wrap(
			fmt.Errorf("compile source schema: %w", err),
			coreerrors.CategoryInternal,
			"schema_compile_failed",
			"",
			false,
		)
	}
	result := schema.ValidateJSON(raw)
	if !result.IsValid() {
		return invalidInput(fmt.Errorf("source configuration is malformed: %v", result.Errors))
	}
	return nil
}

func (source *Source) applyDefaults() {
	source.AssumeRole = strings.TrimSpace(source.AssumeRole)
	source.OrganizationAccount = strings.TrimSpace(source.OrganizationAccount)
	source.RoleName = strings.TrimSpace(source.RoleName)
	if source.RoleName == "" {
		source.RoleName = DefaultRoleName
	}
	if len(source.Scope) == 0 {
		source.Scope = []string{DefaultScopePath}
	}
}

// SessionRoleARN is the assumable role exchanged for the directory session.
func (source Source) SessionRoleARN() string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", source.OrganizationAccount, source.AssumeRole)
}

func invalidInput(cause error) error {
	return coreerrors.Wrap(
		cause,
		coreerrors.CategoryInvalidInput,
		"invalid_configuration",
		"provide a source object with assumerole and organization_account",
		false,
	)
}
