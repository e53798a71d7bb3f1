// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"regexp"
	"testing"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestUUIDFromParams(t *testing.T) {
	t.Parallel()

	t.Run("well formed", func(t *testing.T) {
		t.Parallel()

		id, err := UUIDFromParams(map[string]any{"prompt": "piano", "steps": 27})
		if err != nil {
			t.Fatal(err)
		}
		if !uuidPattern.MatchString(id) {
			t.Fatalf("UUIDFromParams = %q, not a canonical UUID", id)
		}
	})

	t.Run("key order independent", func(t *testing.T) {
		t.Parallel()

		a, err := UUIDFromParams(map[string]any{"a": 1, "b": "two", "c": 3.5})
		if err != nil {
			t.Fatal(err)
		}
		b, err := UUIDFromParams(map[string]any{"c": 3.5, "a": 1, "b": "two"})
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Fatalf("equal maps produced %q and %q", a, b)
		}
	})

	t.Run("value sensitive", func(t *testing.T) {
		t.Parallel()

		a, err := UUIDFromParams(map[string]any{"seed": 1})
		if err != nil {
			t.Fatal(err)
		}
		b, err := UUIDFromParams(map[string]any{"seed": 2})
		if err != nil {
			t.Fatal(err)
		}
		if a == b {
			t.Fatal("distinct params produced the same UUID")
		}
	})

	t.Run("html characters not escaped", func(t *testing.T) {
		t.Parallel()

		got, err := canonicalJSON(map[string]any{"tag": "<a&b>"})
		if err != nil {
			t.Fatal(err)
		}
		if want := `{"tag":"<a&b>"}`; string(got) != want {
			t.Fatalf("canonicalJSON = %s, want %s", got, want)
		}
	})

	t.Run("unencodable value", func(t *testing.T) {
		t.Parallel()

		if _, err := UUIDFromParams(map[string]any{"fn": func() {}}); err == nil {
			t.Fatal("expected error for unencodable value")
		}
	})
}
