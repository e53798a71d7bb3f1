// SPDX-License-Identifier: Apache-2.0

package saver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputNotFound reports a missing conversion source, checked
	// before any decode attempt.
	ErrInputNotFound = errors.New("input file not found")
	// ErrUndecodable reports an input no registered decoder accepts.
	ErrUndecodable = errors.New("no decoder accepts input file")
)

// EncodeError reports that every backend in a format's fallback chain
// failed (or that the chain was empty). It carries one error per
// attempted backend.
type EncodeError struct {
	Format   Format
	Path     string
	Attempts []error
}

func (e *EncodeError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("saving %s: no encoder available for %s", e.Path, e.Format)
	}
	msgs := make([]string, len(e.Attempts))
	for i, err := range e.Attempts {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("saving %s as %s: all encoders failed: %s",
		e.Path, e.Format, strings.Join(msgs, "; "))
}

func (e *EncodeError) Unwrap() []error { return e.Attempts }
