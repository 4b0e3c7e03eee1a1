package tokens

// GetModelTokenValue answers "what is token attribute field for model
// modelName" against the given table. A false result is not an error; it
// signals "no limit known" and the caller applies its own default policy.
//
// Resolution order, first success wins:
//  1. Exact key holding a bare number: returned directly.
//  2. Exact key holding a structured record with Context set: Context is
//     returned regardless of the requested field. This is a fast path for
//     the common case and is kept as current behavior even though it
//     ignores field.
//  3. Pattern match via FindMatchingPattern: a bare number is returned
//     directly; a structured record yields the requested field, or falls
//     through when that field is unknown.
//  4. The table's system_default entry, if any.
func GetModelTokenValue(modelName string, m *TokenMap, field Field) (float64, bool) {
	if modelName == "" || m == nil || m.Len() == 0 {
		return 0, false
	}

	if v, ok := m.Get(modelName); ok {
		switch v := v.(type) {
		case Limit:
			return float64(v), true
		case TokenConfig:
			if v.Context != nil {
				return *v.Context, true
			}
		}
	}

	if key, ok := FindMatchingPattern(modelName, m); ok {
		v, _ := m.Get(key)
		switch v := v.(type) {
		case Limit:
			return float64(v), true
		case TokenConfig:
			if n, ok := v.Get(field); ok {
				return n, true
			}
		}
	}

	return m.SystemDefault()
}

// GetModelMaxTokens returns the context window for a model. The override
// table takes precedence when non-nil; otherwise the built-in
// context-window table for the endpoint is used.
func GetModelMaxTokens(modelName string, endpoint Endpoint, override *TokenMap) (int, bool) {
	m := override
	if m == nil {
		m = maxTokensTables[endpoint]
	}
	v, ok := GetModelTokenValue(modelName, m, FieldContext)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// GetModelMaxOutputTokens returns the output cap for a model. The built-in
// output tables are sparse; an endpoint without one yields "unknown" rather
// than borrowing the context-window table.
func GetModelMaxOutputTokens(modelName string, endpoint Endpoint, override *TokenMap) (int, bool) {
	m := override
	if m == nil {
		m = maxOutputTokensTables[endpoint]
	}
	v, ok := GetModelTokenValue(modelName, m, FieldOutput)
	if !ok {
		return 0, false
	}
	return int(v), true
}
