// Package docstore provides path-addressed access to the hierarchical document
// tree, backed by Firebase Realtime Database or an in-memory tree.
package docstore

import (
	"context"
	"encoding/json"
	"strings"

	"smartfit/internal/errors"
)

// ErrNotFound is returned by Read when nothing is stored at the path.
var ErrNotFound = errors.New("document not found")

// Store is the document tree. Paths are slash-delimited and relative to the
// configured root.
type Store interface {
	// Create writes payload at path, replacing whatever was there.
	// ownerID is the identity the record is created for; it is recorded in the change feed.
	Create(ctx context.Context, path, ownerID string, payload any) error

	// Read decodes the value at path into dest. Returns ErrNotFound when absent.
	Read(ctx context.Context, path string, dest any) error

	// Update merges patch into the node at path. Keys may themselves be
	// slash-delimited sub-paths; a nil value deletes that child. All keys are
	// applied atomically.
	Update(ctx context.Context, path string, patch map[string]any) error

	// Delete removes the node at path.
	Delete(ctx context.Context, path string) error

	// Transaction reads the node at path, passes it to fn, and writes fn's
	// result back atomically. A nil result deletes the node. An error from fn
	// aborts without writing.
	Transaction(ctx context.Context, path string, fn TxFunc) error

	// Close releases backend resources.
	Close() error
}

// TxFunc computes the new value of a node from its current value.
type TxFunc func(node Node) (any, error)

// Node is the current value of a node inside a transaction.
type Node interface {
	// Unmarshal decodes the current value into v. An absent node decodes as JSON null.
	Unmarshal(v any) error
}

// Join builds a store path from segments, skipping empty ones.
func Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, "/")
}

// ValidateKey rejects segments the Realtime Database cannot store as keys.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("empty key")
	}
	if strings.ContainsAny(key, ".#$[]/") {
		return errors.Errorf("key %q contains a forbidden character", key)
	}
	for _, r := range key {
		if r < 0x20 || r == 0x7f {
			return errors.Errorf("key %q contains a control character", key)
		}
	}

	return nil
}

// ValidatePath checks every segment of a slash-delimited path.
func ValidatePath(path string) error {
	if strings.Trim(path, "/") == "" {
		return errors.New("empty path")
	}
	for _, segment := range splitPath(path) {
		if err := ValidateKey(segment); err != nil {
			return errors.Wrapf(err, "invalid path %q", path)
		}
	}

	return nil
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	return segments
}

// IsNull reports whether raw is an absent value.
func IsNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))

	return trimmed == "" || trimmed == "null"
}

// Overlaps reports whether a change at one path can affect a reader of the other.
func Overlaps(a, b string) bool {
	a, b = strings.Trim(a, "/"), strings.Trim(b, "/")
	if a == "" || b == "" || a == b {
		return true
	}

	return strings.HasPrefix(a, b+"/") || strings.HasPrefix(b, a+"/")
}
