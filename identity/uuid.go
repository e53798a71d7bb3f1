// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// UUIDFromParams derives a deterministic UUID from a parameter map.
// The map is serialized as JSON with sorted keys and no HTML escaping,
// digested with SHA-256, and the first 16 digest bytes are formatted
// as a UUID. Equal maps always yield the same UUID regardless of
// insertion order.
func UUIDFromParams(params map[string]any) (string, error) {
	canonical, err := canonicalJSON(params)
	if err != nil {
		return "", fmt.Errorf("encode params: %w", err)
	}

	sum := sha256.Sum256(canonical)
	id, err := uuid.FromBytes(sum[:16])
	if err != nil {
		return "", fmt.Errorf("derive uuid: %w", err)
	}
	return id.String(), nil
}

// canonicalJSON serializes a map with deterministic key order. Nested
// maps are handled by encoding/json, which already sorts map keys.
func canonicalJSON(params map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, params[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode appends a newline; strip it so separators stay tight.
	buf.Truncate(buf.Len() - 1)
	return nil
}
