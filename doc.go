// Package tokenkit resolves per-model token limits and pricing for chat
// completion platforms that talk to many model providers.
//
// tokenkit is designed to be imported à la carte. Each subpackage can be
// used independently:
//
//   - tokens: pattern-based token limit resolution, built-in per-endpoint
//     tables, and context-window budgets
//   - catalog: remote model catalog fetching and normalization
//   - overrides: operator override tables loaded from YAML/TOML files
//
// # Quick Start
//
// Resolving limits:
//
//	import "github.com/tokenkit/tokenkit/tokens"
//	max, ok := tokens.GetModelMaxTokens("gpt-4-32k-0613", tokens.EndpointOpenAI, nil)
//
// Ingesting a catalog:
//
//	import "github.com/tokenkit/tokenkit/catalog"
//	client := catalog.NewClient("https://openrouter.ai/api/v1/models")
//	table, err := client.FetchTokenMap(ctx)
//
// Layering operator overrides:
//
//	import "github.com/tokenkit/tokenkit/overrides"
//	custom, err := overrides.Load("limits.yaml")
//
// # Design Philosophy
//
// tokenkit follows these principles:
//
//   - Pure, stateless resolution functions: the same inputs always give
//     the same answer
//   - Token tables are immutable once built; refreshes swap references
//   - "Unknown" is an answer, not an error: lookups return a second
//     boolean result and leave default policy to the caller
//   - Deterministic, explainable tie-breaking: reverse insertion order,
//     no hidden specificity scoring
package tokenkit
