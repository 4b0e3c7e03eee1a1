package tokens

import "strings"

// FindMatchingPattern finds the table key governing a model name when no
// exact entry exists. The model name is lowercased once, then keys are
// scanned in reverse insertion order and the first key contained in the
// name as a substring wins. Tables are authored general-before-specific,
// so the reverse scan gives the most specific entry priority without an
// explicit specificity score. No secondary tie-break (such as longest key)
// is applied.
func FindMatchingPattern(modelName string, m *TokenMap) (string, bool) {
	if m == nil || m.Len() == 0 {
		return "", false
	}
	lower := strings.ToLower(modelName)
	for pair := m.newest(); pair != nil; pair = pair.Prev() {
		if strings.Contains(lower, pair.Key) {
			return pair.Key, true
		}
	}
	return "", false
}

// MatchModelName canonicalizes a free-form model name to its table key for
// the given endpoint. The input is returned unchanged when no built-in
// table exists for the endpoint, when the name is already an exact key, or
// when no pattern matches. Unlike GetModelTokenValue, this never falls back
// to the system default; an unmatched name echoes through so callers can
// pass it along as-is.
func MatchModelName(modelName string, endpoint Endpoint) string {
	m, ok := maxTokensTables[endpoint]
	if !ok {
		return modelName
	}
	if _, ok := m.Get(modelName); ok {
		return modelName
	}
	if key, ok := FindMatchingPattern(modelName, m); ok {
		return key
	}
	return modelName
}
