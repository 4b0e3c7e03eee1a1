package catalog

import (
	"github.com/invopop/jsonschema"
)

// PayloadSchema returns a JSON Schema describing the catalog feed shape,
// for validating feeds out-of-band (CI checks, operator tooling). The
// schema mirrors the struct tags ParsePayload enforces.
func PayloadSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return reflector.Reflect(&Payload{})
}
