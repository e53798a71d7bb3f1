// SPDX-License-Identifier: Apache-2.0

// Package identity derives stable identifiers for audio content:
// MD5 digests over files and sample buffers, and deterministic UUIDs
// over generation parameter maps. All identifiers are pure functions
// of their inputs, so equal content always maps to equal IDs across
// processes and machines.
package identity
