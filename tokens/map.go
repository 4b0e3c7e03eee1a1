package tokens

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SystemDefaultKey is the reserved table key holding the fallback limit
// used when no pattern matches. Its value is always a bare Limit, never a
// TokenConfig.
const SystemDefaultKey = "system_default"

// Entry is a key/value pair for building a TokenMap in a fixed order.
type Entry struct {
	Key   string
	Value Value
}

// TokenMap is an insertion-ordered mapping from a lowercase pattern key
// (typically a model-name prefix or fragment) to a token table entry.
//
// Key order is significant: pattern resolution scans keys in reverse
// insertion order, so tables are authored general-before-specific and the
// most recently added matching entry wins. A TokenMap is never mutated
// after construction by this package; concurrent readers need no locking.
type TokenMap struct {
	entries *orderedmap.OrderedMap[string, Value]
}

// NewTokenMap creates an empty TokenMap.
func NewTokenMap() *TokenMap {
	return &TokenMap{entries: orderedmap.New[string, Value]()}
}

// NewTokenMapFrom creates a TokenMap holding the given entries in order.
// A repeated key updates the value but keeps the key's original position.
func NewTokenMapFrom(entries ...Entry) *TokenMap {
	m := &TokenMap{entries: orderedmap.New[string, Value](len(entries))}
	for _, e := range entries {
		m.entries.Set(e.Key, e.Value)
	}
	return m
}

// Set adds or updates an entry. An existing key keeps its position.
func (m *TokenMap) Set(key string, v Value) {
	m.entries.Set(key, v)
}

// Get returns the entry stored under the exact key.
func (m *TokenMap) Get(key string) (Value, bool) {
	return m.entries.Get(key)
}

// Len returns the number of entries.
func (m *TokenMap) Len() int {
	if m == nil {
		return 0
	}
	return m.entries.Len()
}

// SystemDefault returns the reserved fallback limit, if present.
func (m *TokenMap) SystemDefault() (float64, bool) {
	v, ok := m.entries.Get(SystemDefaultKey)
	if !ok {
		return 0, false
	}
	lim, ok := v.(Limit)
	if !ok {
		return 0, false
	}
	return float64(lim), true
}

// Keys returns the keys in insertion order.
func (m *TokenMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// newest returns the last-inserted pair, for reverse iteration.
func (m *TokenMap) newest() *orderedmap.Pair[string, Value] {
	return m.entries.Newest()
}
