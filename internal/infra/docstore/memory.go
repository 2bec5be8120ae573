package docstore

import (
	"context"
	"encoding/json"
	"sync"

	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"
)

// memoryStore keeps the document tree in process. Values are normalized to
// JSON types and nulls are pruned, matching Realtime Database semantics.
type memoryStore struct {
	mu   sync.RWMutex
	tree map[string]any
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{tree: map[string]any{}}
}

// NewMemoryStoreFromJSON creates an in-memory store seeded from a JSON export.
func NewMemoryStoreFromJSON(data []byte) (Store, error) {
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrap(err, "decode seed data")
	}

	pruned, _ := prune(tree).(map[string]any)
	if pruned == nil {
		pruned = map[string]any{}
	}

	return &memoryStore{tree: pruned}, nil
}

func (s *memoryStore) Create(ctx context.Context, path, _ string, payload any) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	value, err := normalize(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(splitPath(path), value)

	return nil
}

func (s *memoryStore) Read(ctx context.Context, path string, dest any) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	s.mu.RLock()
	raw, err := json.Marshal(s.get(splitPath(path)))
	s.mu.RUnlock()
	if err != nil {
		return errors.WithStack(err)
	}

	if IsNull(raw) {
		return ErrNotFound
	}

	return errors.WithStack(json.Unmarshal(raw, dest))
}

func (s *memoryStore) Update(ctx context.Context, path string, patch map[string]any) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if len(patch) == 0 {
		return nil
	}

	base := splitPath(path)
	updates := make(map[string]any, len(patch))
	for key, v := range patch {
		if err := ValidatePath(key); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		value, err := normalize(v)
		if err != nil {
			return err
		}
		updates[key] = value
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range updates {
		s.set(append(append([]string{}, base...), splitPath(key)...), value)
	}

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, path string) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(splitPath(path), nil)

	return nil
}

func (s *memoryStore) Transaction(ctx context.Context, path string, fn TxFunc) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	segments := splitPath(path)
	raw, err := json.Marshal(s.get(segments))
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := fn(rawNode(raw))
	if err != nil {
		return err
	}

	value, err := normalize(result)
	if err != nil {
		return err
	}
	s.set(segments, value)

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}

// get returns the value at segments or nil. Callers hold the lock.
func (s *memoryStore) get(segments []string) any {
	var current any = s.tree
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[seg]
	}

	return current
}

// set writes value at segments, creating parents and pruning emptied ones.
// Callers hold the lock.
func (s *memoryStore) set(segments []string, value any) {
	s.tree = setIn(s.tree, segments, value)
	if s.tree == nil {
		s.tree = map[string]any{}
	}
}

func setIn(node map[string]any, segments []string, value any) map[string]any {
	if len(segments) == 0 {
		m, _ := value.(map[string]any)

		return m
	}

	if node == nil {
		if value == nil {
			return nil
		}
		node = map[string]any{}
	}

	key := segments[0]
	if len(segments) == 1 {
		if value == nil {
			delete(node, key)
		} else {
			node[key] = value
		}
	} else {
		child, _ := node[key].(map[string]any)
		child = setIn(child, segments[1:], value)
		if child == nil {
			delete(node, key)
		} else {
			node[key] = child
		}
	}

	if len(node) == 0 {
		return nil
	}

	return node
}

// normalize converts a payload into plain JSON values with nulls and empty objects removed.
func normalize(payload any) (any, error) {
	if payload == nil {
		return nil, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode payload")
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, errors.Wrap(err, "decode payload")
	}

	return prune(value), nil
}

func prune(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			pruned := prune(child)
			if pruned == nil {
				delete(v, key)
			} else {
				v[key] = pruned
			}
		}
		if len(v) == 0 {
			return nil
		}

		return v
	case []any:
		kept := make([]any, 0, len(v))
		for _, child := range v {
			if pruned := prune(child); pruned != nil {
				kept = append(kept, pruned)
			}
		}
		if len(kept) == 0 {
			return nil
		}

		return kept
	default:
		return v
	}
}

type rawNode json.RawMessage

func (n rawNode) Unmarshal(v any) error {
	return errors.WithStack(json.Unmarshal(n, v))
}
