package tokens

import (
	"testing"
)

func TestGetModelTokenValue(t *testing.T) {
	m := NewTokenMapFrom(
		Entry{"gpt-4", Limit(8192)},
		Entry{"gpt-4-32k", TokenConfig{
			Context: Num(32768),
			Output:  Num(4096),
		}},
		Entry{SystemDefaultKey, Limit(4096)},
	)

	tests := []struct {
		name      string
		modelName string
		field     Field
		want      float64
		wantOK    bool
	}{
		{
			name:      "exact bare number",
			modelName: "gpt-4",
			field:     FieldContext,
			want:      8192,
			wantOK:    true,
		},
		{
			name:      "pattern fallback returns context",
			modelName: "gpt-4-32k-0613",
			field:     FieldContext,
			want:      32768,
			wantOK:    true,
		},
		{
			name:      "pattern fallback returns requested field",
			modelName: "gpt-4-32k-0613",
			field:     FieldOutput,
			want:      4096,
			wantOK:    true,
		},
		{
			name:      "absent field falls through to system default",
			modelName: "gpt-4-32k-0613",
			field:     FieldPrompt,
			want:      4096,
			wantOK:    true,
		},
		{
			name:      "no pattern falls through to system default",
			modelName: "unknown-model",
			field:     FieldContext,
			want:      4096,
			wantOK:    true,
		},
		{
			name:      "empty model name",
			modelName: "",
			field:     FieldContext,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetModelTokenValue(tt.modelName, m, tt.field)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGetModelTokenValue_ExactConfigReturnsContext(t *testing.T) {
	// The exact-match fast path returns Context regardless of the
	// requested field. Kept as current behavior.
	m := NewTokenMapFrom(
		Entry{"gpt-4-32k", TokenConfig{
			Context: Num(32768),
			Output:  Num(4096),
		}},
	)

	got, ok := GetModelTokenValue("gpt-4-32k", m, FieldOutput)
	if !ok {
		t.Fatal("expected a value")
	}
	if got != 32768 {
		t.Errorf("expected context value 32768, got %v", got)
	}
}

func TestGetModelTokenValue_ExactConfigWithoutContextFallsThrough(t *testing.T) {
	// An exact entry with no Context is not a fast-path hit; resolution
	// continues through pattern matching.
	m := NewTokenMapFrom(
		Entry{"gpt-4", Limit(8192)},
		Entry{"gpt-4-32k", TokenConfig{Output: Num(4096)}},
	)

	got, ok := GetModelTokenValue("gpt-4-32k", m, FieldOutput)
	if !ok {
		t.Fatal("expected a value")
	}
	if got != 4096 {
		t.Errorf("expected output value 4096, got %v", got)
	}
}

func TestGetModelTokenValue_EmptyMap(t *testing.T) {
	if _, ok := GetModelTokenValue("gpt-4", NewTokenMap(), FieldContext); ok {
		t.Error("expected no value from empty map")
	}
	if _, ok := GetModelTokenValue("gpt-4", nil, FieldContext); ok {
		t.Error("expected no value from nil map")
	}
}

func TestGetModelTokenValue_NoDefault(t *testing.T) {
	m := NewTokenMapFrom(Entry{"gpt-4", Limit(8192)})

	if _, ok := GetModelTokenValue("unknown-model", m, FieldContext); ok {
		t.Error("expected no value when nothing matches and no system default exists")
	}
}

func TestGetModelMaxTokens(t *testing.T) {
	tests := []struct {
		name      string
		modelName string
		endpoint  Endpoint
		want      int
		wantOK    bool
	}{
		{
			name:      "openai dated variant",
			modelName: "gpt-4-32k-0613",
			endpoint:  EndpointOpenAI,
			want:      32768,
			wantOK:    true,
		},
		{
			name:      "azure shares the openai table",
			modelName: "gpt-4o-2024-08-06",
			endpoint:  EndpointAzureOpenAI,
			want:      128000,
			wantOK:    true,
		},
		{
			name:      "anthropic dated snapshot",
			modelName: "claude-3-5-sonnet-20241022",
			endpoint:  EndpointAnthropic,
			want:      200000,
			wantOK:    true,
		},
		{
			name:      "bedrock qualified id",
			modelName: "anthropic.claude-3-sonnet-20240229-v1:0",
			endpoint:  EndpointBedrock,
			want:      200000,
			wantOK:    true,
		},
		{
			name:      "unknown model",
			modelName: "unknown-model",
			endpoint:  EndpointOpenAI,
			wantOK:    false,
		},
		{
			name:      "endpoint without a table",
			modelName: "gpt-4",
			endpoint:  EndpointCustom,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetModelMaxTokens(tt.modelName, tt.endpoint, nil)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestGetModelMaxTokens_Override(t *testing.T) {
	override := NewTokenMapFrom(Entry{"gpt-4", Limit(100)})

	got, ok := GetModelMaxTokens("gpt-4-0613", EndpointOpenAI, override)
	if !ok {
		t.Fatal("expected a value")
	}
	if got != 100 {
		t.Errorf("expected override value 100, got %d", got)
	}
}

func TestGetModelMaxOutputTokens(t *testing.T) {
	got, ok := GetModelMaxOutputTokens("claude-3-5-sonnet-20241022", EndpointAnthropic, nil)
	if !ok {
		t.Fatal("expected a value")
	}
	if got != 8192 {
		t.Errorf("expected 8192, got %d", got)
	}

	// The base claude- pattern still covers older names.
	got, ok = GetModelMaxOutputTokens("claude-2.1", EndpointAnthropic, nil)
	if !ok {
		t.Fatal("expected a value")
	}
	if got != 4096 {
		t.Errorf("expected 4096, got %d", got)
	}

	// No output table for this endpoint.
	if _, ok := GetModelMaxOutputTokens("gemini-1.5-pro", EndpointGoogle, nil); ok {
		t.Error("expected no output cap for endpoint without an output table")
	}
}
