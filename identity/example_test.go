// SPDX-License-Identifier: Apache-2.0

package identity_test

import (
	"fmt"

	"github.com/henricksmedia/ACE-Step-1.5/identity"
)

func ExampleUUIDFromParams() {
	id, err := identity.UUIDFromParams(map[string]any{
		"prompt": "ambient piano, 90 bpm",
		"seed":   42,
	})
	if err != nil {
		panic(err)
	}

	// The same parameters always derive the same UUID.
	again, _ := identity.UUIDFromParams(map[string]any{
		"seed":   42,
		"prompt": "ambient piano, 90 bpm",
	})
	fmt.Println(id == again)
	// Output:
	// true
}

func ExampleBufferHashSeeded() {
	samples := [][]float32{{0.5, -0.5, 0.25, -0.25}}

	a := identity.BufferHashSeeded(samples, 1)
	b := identity.BufferHashSeeded(samples, 2)
	fmt.Println(a != b)
	// Output:
	// true
}
