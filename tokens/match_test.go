package tokens

import (
	"testing"
)

func testMap() *TokenMap {
	return NewTokenMapFrom(
		Entry{"gpt-4", Limit(8192)},
		Entry{"gpt-4-32k", Limit(32768)},
		Entry{"gpt-4-32k-0314", Limit(32768)},
	)
}

func TestFindMatchingPattern(t *testing.T) {
	m := testMap()

	tests := []struct {
		name      string
		modelName string
		wantKey   string
		wantOK    bool
	}{
		{
			name:      "suffix variant matches most specific pattern",
			modelName: "gpt-4-32k-0613",
			wantKey:   "gpt-4-32k",
			wantOK:    true,
		},
		{
			name:      "exact pattern text",
			modelName: "gpt-4-32k-0314",
			wantKey:   "gpt-4-32k-0314",
			wantOK:    true,
		},
		{
			name:      "base model",
			modelName: "gpt-4-0613",
			wantKey:   "gpt-4",
			wantOK:    true,
		},
		{
			name:      "case insensitive",
			modelName: "GPT-4-32K-0613",
			wantKey:   "gpt-4-32k",
			wantOK:    true,
		},
		{
			name:      "no match",
			modelName: "unknown-model",
			wantOK:    false,
		},
		{
			name:      "empty model name",
			modelName: "",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := FindMatchingPattern(tt.modelName, m)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if key != tt.wantKey {
				t.Errorf("expected key %q, got %q", tt.wantKey, key)
			}
		})
	}
}

func TestFindMatchingPattern_ReverseOrderWins(t *testing.T) {
	// Both keys match; the later-inserted one wins even though it is
	// shorter. No longest-match tie-break is applied.
	m := NewTokenMapFrom(
		Entry{"gpt-4-32k", Limit(32768)},
		Entry{"gpt-4", Limit(8192)},
	)

	key, ok := FindMatchingPattern("gpt-4-32k-0613", m)
	if !ok {
		t.Fatal("expected a match")
	}
	if key != "gpt-4" {
		t.Errorf("expected last-inserted key %q, got %q", "gpt-4", key)
	}
}

func TestFindMatchingPattern_EmptyMap(t *testing.T) {
	if _, ok := FindMatchingPattern("gpt-4", NewTokenMap()); ok {
		t.Error("expected no match on empty map")
	}
	if _, ok := FindMatchingPattern("gpt-4", nil); ok {
		t.Error("expected no match on nil map")
	}
}

func TestMatchModelName(t *testing.T) {
	tests := []struct {
		name      string
		modelName string
		endpoint  Endpoint
		want      string
	}{
		{
			name:      "pattern match canonicalizes",
			modelName: "gpt-4-32k-unknown",
			endpoint:  EndpointOpenAI,
			want:      "gpt-4-32k",
		},
		{
			name:      "exact key returned unchanged",
			modelName: "gpt-4-32k",
			endpoint:  EndpointOpenAI,
			want:      "gpt-4-32k",
		},
		{
			name:      "unmatched name echoes through",
			modelName: "unknown-model",
			endpoint:  EndpointOpenAI,
			want:      "unknown-model",
		},
		{
			name:      "endpoint without a table echoes through",
			modelName: "gpt-4-32k-unknown",
			endpoint:  EndpointCustom,
			want:      "gpt-4-32k-unknown",
		},
		{
			name:      "anthropic dated snapshot",
			modelName: "claude-3-5-sonnet-20241022",
			endpoint:  EndpointAnthropic,
			want:      "claude-3-5-sonnet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchModelName(tt.modelName, tt.endpoint)
			if got != tt.want {
				t.Errorf("MatchModelName(%q, %q) = %q, want %q",
					tt.modelName, tt.endpoint, got, tt.want)
			}
		})
	}
}
