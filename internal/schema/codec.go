// Package schema encodes portfolio documents to their persisted JSON form and
// decodes stored JSON, upgrading older layouts through a migration chain.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
)

var (
	// ErrMalformed means the stored bytes are not a JSON object.
	ErrMalformed = errors.New("malformed document")
	// ErrUnsupportedVersion means the document was written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
)

// Encode serializes doc at the current schema version. doc itself is not
// modified.
func Encode(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("encoding document: %w", ErrMalformed)
	}
	out := *doc
	// Normalize writes into project elements; give it its own backing array.
	out.Projects = append([]domain.Project(nil), doc.Projects...)
	out.SchemaVersion = domain.CurrentSchemaVersion
	out.Normalize()
	data, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// Decode parses stored bytes into a document, migrating it to the current
// schema version first. Missing optional fields are tolerated.
func Decode(data []byte) (*domain.Document, error) {
	raw, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	version, err := versionOf(raw)
	if err != nil {
		return nil, err
	}
	if version > domain.CurrentSchemaVersion {
		return nil, fmt.Errorf("document version %d: %w", version, ErrUnsupportedVersion)
	}
	if err := Migrate(raw, version); err != nil {
		return nil, err
	}

	upgraded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encoding migrated document: %w", err)
	}
	var doc domain.Document
	if err := json.Unmarshal(upgraded, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %v: %w", err, ErrMalformed)
	}
	doc.Normalize()
	return &doc, nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing document: %v: %w", err, ErrMalformed)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing document: null: %w", ErrMalformed)
	}
	return raw, nil
}

func versionOf(raw map[string]any) (int, error) {
	v, ok := raw["schemaVersion"]
	if !ok || v == nil {
		return 0, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("schemaVersion %v: %w", v, ErrMalformed)
	}
	i, err := n.Int64()
	if err != nil || i < 0 {
		return 0, fmt.Errorf("schemaVersion %s: %w", n, ErrMalformed)
	}
	return int(i), nil
}
