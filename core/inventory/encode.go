package inventory

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	coreerrors "github.com/orgpull/orgpull/core/errors"
	"github.com/orgpull/orgpull/core/jcs"
)

// EncodeYAML serializes the record for the inventory sink.
func EncodeYAML(record Record) ([]byte, error) {
	encoded, err := yaml.Marshal(record)
	if err != nil {
		return nil, wrapSerializationError(fmt.Errorf("marshal inventory yaml: %w", err))
	}
	return encoded, nil
}

// Fingerprint returns the hex sha-256 of the record's canonical (RFC 8785)
// JSON form. It is a pure function of the record content and ordering:
// identical inventories always hash identically, and any change to an
// account field, path tag, or position changes the digest.
func Fingerprint(record Record) (string, error) {
	encoded, err := json.Marshal(record)
	if err != nil {
		return "", wrapSerializationError(fmt.Errorf("marshal inventory json: %w", err))
	}
	digest, err := jcs.Digest(encoded)
	if err != nil {
		return "", wrapSerializationError(fmt.Errorf("canonicalize inventory: %w", err))
	}
	return digest, nil
}

func wrapSerializationError(cause error) error {
	return coreerrors.Wrap(
		cause,
		coreerrors.CategorySerialization,
		"serialize_failed",
		"",
		false,
	)
}
