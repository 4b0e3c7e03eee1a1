// Package overrides loads operator-supplied token table overrides from
// YAML or TOML files and layers them over the built-in tables.
//
// An override file is an ordered mapping from pattern key to either a
// bare limit or a structured record:
//
//	gpt-4: 8192
//	gpt-4-32k:
//	  context: 32768
//	  output: 4096
//	system_default: 4096
//
// File order carries through to the table, so overrides follow the same
// general-before-specific convention as everything else:
//
//	custom, err := overrides.Load("limits.yaml")
//	table := overrides.Layer(builtin, custom)
//	max, ok := tokens.GetModelTokenValue("gpt-4-32k-0613", table, tokens.FieldContext)
//
// Watcher republishes a fresh table when the file changes:
//
//	w := overrides.NewWatcher("limits.yaml")
//	if err := w.Start(ctx); err != nil { ... }
//	for m := range w.Maps() {
//	    // swap the active table reference
//	}
//
// Tables are never mutated after construction; a change produces a new
// table and readers of the old one are unaffected.
package overrides
