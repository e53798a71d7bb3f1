// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"errors"
	"fmt"
)

// ErrBackendNotFound reports a transcoding binary missing from PATH.
var ErrBackendNotFound = errors.New("transcoding backend not found in PATH")

// ExecError reports a failed external encoder invocation.
type ExecError struct {
	Backend  string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s failed (exit=%d, stderr=%q): %v",
		e.Backend, e.ExitCode, truncate(e.Stderr, 200), e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
