// Package tokens resolves per-model token limits and pricing for chat
// completion platforms that talk to many model providers.
//
// Model identifiers in the wild are free-form: dated snapshots, size
// suffixes, quantization tags. Given a name like "gpt-4-32k-0613" and a
// table of known patterns, this package decides which entry governs the
// model's limits, with deterministic tie-breaking when no exact entry
// exists.
//
// # Lookup
//
// The common questions are context window and output cap:
//
//	max, ok := tokens.GetModelMaxTokens("gpt-4-32k-0613", tokens.EndpointOpenAI, nil)
//	// max == 32768: no exact entry, the "gpt-4-32k" pattern governs
//
//	out, ok := tokens.GetModelMaxOutputTokens("claude-3-5-sonnet-20241022", tokens.EndpointAnthropic, nil)
//
// Passing a non-nil TokenMap overrides the built-in table for the
// endpoint. For arbitrary fields use GetModelTokenValue directly.
//
// # Pattern matching
//
// Tables are insertion-ordered and authored general-before-specific.
// FindMatchingPattern scans keys in reverse insertion order and returns
// the first key contained in the lowercased model name, so the most
// recently added (by convention most specific) entry wins:
//
//	key, ok := tokens.FindMatchingPattern("gpt-4-32k-unknown", table)
//	// key == "gpt-4-32k"
//
// MatchModelName canonicalizes a free-form name to its table key, echoing
// the input back when nothing matches.
//
// # Budgets
//
// Budget splits a resolved context window across prompt components:
//
//	budget, ok := tokens.NewBudgetForModel("gpt-4o", tokens.EndpointOpenAI, nil)
//	budget.FitsContextTokens(n)
//	budget.RemainingContext(used)
//
// A false result from any lookup means "no limit known", never an error;
// callers apply their own default policy.
package tokens
