// Package catalog ingests a remote model catalog and normalizes it into
// the token table shape the tokens package consumes.
//
// The feed is a JSON envelope of model descriptors:
//
//	{ "data": [ { "id": "m1",
//	              "pricing": { "prompt": "0.000002", "completion": "0.000004" },
//	              "context_length": 8192 } ] }
//
// Prices arrive as decimal strings in dollars per token and normalize to
// dollars per million tokens:
//
//	p, err := catalog.ParsePayload(raw)
//	m, err := catalog.Normalize(p)
//	// m entry "m1": Prompt 2, Completion 4, Context 8192
//
// Validation is all-or-nothing: a malformed entry fails the whole batch
// with ErrInvalidPayload, never a partial table.
//
// Client fetches the feed over HTTP with retries:
//
//	client := catalog.NewClient("https://openrouter.ai/api/v1/models")
//	m, err := client.FetchTokenMap(ctx)
//
// Token tables are immutable once built; refreshing the catalog means
// fetching a new table and swapping the reference, so concurrent readers
// of the previous table are unaffected.
package catalog
