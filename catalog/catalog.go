package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/tokenkit/tokenkit/tokens"
)

// ErrInvalidPayload indicates the catalog payload does not conform to the
// expected shape. Normalization is all-or-nothing: one malformed entry
// fails the whole batch.
var ErrInvalidPayload = errors.New("invalid catalog payload")

// AutoRouterID is the auto-routing meta-model id. Its advertised pricing
// is unreliable upstream, so a conservative fixed estimate is substituted.
const AutoRouterID = "openrouter/auto"

// Fixed pricing substituted for AutoRouterID, in dollars per token.
const (
	autoRouterPromptPrice     = 0.00001
	autoRouterCompletionPrice = 0.00003
)

// dollarsPerTokenToPerMillion converts catalog prices (dollars per token)
// to the dollars-per-million-tokens unit token tables use.
const dollarsPerTokenToPerMillion = 1_000_000

// Pricing carries an entry's prices as decimal strings in dollars per
// token, the unit the catalog feed advertises.
type Pricing struct {
	Prompt     string `json:"prompt" validate:"required"`
	Completion string `json:"completion" validate:"required"`
}

// Entry describes one model in the catalog feed.
type Entry struct {
	ID            string   `json:"id" validate:"required"`
	Pricing       *Pricing `json:"pricing" validate:"required"`
	ContextLength int      `json:"context_length" validate:"required,gt=0"`
}

// Payload is the catalog feed envelope.
type Payload struct {
	Data []Entry `json:"data" validate:"required,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParsePayload decodes and validates a raw catalog feed.
func ParsePayload(raw []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := validate.Struct(p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return p, nil
}

// Normalize transforms a catalog payload into a token table keyed by model
// id. Prices convert from dollars per token to dollars per million tokens.
// Every output entry is a full record with Prompt, Completion, and Context
// set. Input order is preserved; a duplicate id overwrites the earlier
// value, last write wins.
func Normalize(p Payload) (*tokens.TokenMap, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	m := tokens.NewTokenMap()
	for _, e := range p.Data {
		var promptPrice, completionPrice float64
		if e.ID == AutoRouterID {
			// Advertised pricing for the auto router is ignored.
			promptPrice = autoRouterPromptPrice
			completionPrice = autoRouterCompletionPrice
		} else {
			var err error
			promptPrice, err = strconv.ParseFloat(e.Pricing.Prompt, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %q: prompt price %q is not numeric", ErrInvalidPayload, e.ID, e.Pricing.Prompt)
			}
			completionPrice, err = strconv.ParseFloat(e.Pricing.Completion, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %q: completion price %q is not numeric", ErrInvalidPayload, e.ID, e.Pricing.Completion)
			}
		}

		m.Set(e.ID, tokens.TokenConfig{
			Prompt:     tokens.Num(promptPrice * dollarsPerTokenToPerMillion),
			Completion: tokens.Num(completionPrice * dollarsPerTokenToPerMillion),
			Context:    tokens.Num(float64(e.ContextLength)),
		})
	}
	return m, nil
}
