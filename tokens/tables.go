package tokens

// Built-in token tables, keyed by endpoint. Entries are authored
// general-before-specific: the pattern scan walks keys newest-first, so a
// dated or size-suffixed variant added after its base model shadows it.
// All keys are lowercase.

var openAIMaxTokens = NewTokenMapFrom(
	Entry{"gpt-3.5-turbo", Limit(16385)},
	Entry{"gpt-3.5-turbo-0301", Limit(4096)},
	Entry{"gpt-3.5-turbo-0613", Limit(4096)},
	Entry{"gpt-3.5-turbo-16k", Limit(16385)},
	Entry{"gpt-4", Limit(8192)},
	Entry{"gpt-4-0314", Limit(8192)},
	Entry{"gpt-4-0613", Limit(8192)},
	Entry{"gpt-4-32k", Limit(32768)},
	Entry{"gpt-4-32k-0314", Limit(32768)},
	Entry{"gpt-4-32k-0613", Limit(32768)},
	Entry{"gpt-4-1106", Limit(128000)},
	Entry{"gpt-4-0125", Limit(128000)},
	Entry{"gpt-4-turbo", Limit(128000)},
	Entry{"gpt-4-vision", Limit(128000)},
	Entry{"gpt-4o", Limit(128000)},
	Entry{"gpt-4o-mini", Limit(128000)},
	Entry{"chatgpt-4o-latest", Limit(128000)},
	Entry{"gpt-4.1", Limit(1047576)},
	Entry{"gpt-4.1-mini", Limit(1047576)},
	Entry{"gpt-4.1-nano", Limit(1047576)},
	Entry{"o1", Limit(200000)},
	Entry{"o1-mini", Limit(128000)},
	Entry{"o1-preview", Limit(128000)},
	Entry{"o3", Limit(200000)},
	Entry{"o3-mini", Limit(200000)},
	Entry{"o4-mini", Limit(200000)},
	Entry{"gpt-5", Limit(400000)},
	Entry{"gpt-5-mini", Limit(400000)},
	Entry{"gpt-5-nano", Limit(400000)},
)

var anthropicMaxTokens = NewTokenMapFrom(
	Entry{"claude-", Limit(100000)},
	Entry{"claude-instant", Limit(100000)},
	Entry{"claude-2", Limit(100000)},
	Entry{"claude-2.1", Limit(200000)},
	Entry{"claude-3", Limit(200000)},
	Entry{"claude-3-5-sonnet", Limit(200000)},
	Entry{"claude-3-5-haiku", Limit(200000)},
	Entry{"claude-3-7-sonnet", Limit(200000)},
	Entry{"claude-sonnet-4", Limit(200000)},
	Entry{"claude-opus-4", Limit(200000)},
	Entry{"claude-haiku-4", Limit(200000)},
)

var googleMaxTokens = NewTokenMapFrom(
	Entry{"text-bison", Limit(8192)},
	Entry{"chat-bison", Limit(8192)},
	Entry{"gemini", Limit(32768)},
	Entry{"gemini-pro-vision", Limit(16384)},
	Entry{"gemini-1.5", Limit(1048576)},
	Entry{"gemini-2.0-flash", Limit(1048576)},
	Entry{"gemini-2.5-pro", Limit(1048576)},
	Entry{"gemini-2.5-flash", Limit(1048576)},
)

var bedrockMaxTokens = NewTokenMapFrom(
	Entry{"amazon.titan", Limit(8000)},
	Entry{"amazon.nova", Limit(300000)},
	Entry{"anthropic.claude", Limit(100000)},
	Entry{"anthropic.claude-3", Limit(200000)},
	Entry{"meta.llama2", Limit(4096)},
	Entry{"meta.llama3", Limit(8192)},
	Entry{"meta.llama3-1", Limit(128000)},
	Entry{"mistral.mistral", Limit(32768)},
	Entry{"mistral.mistral-large", Limit(128000)},
	Entry{"cohere.command", Limit(4096)},
	Entry{"cohere.command-r", Limit(128000)},
)

// maxTokensTables maps each endpoint to its built-in context-window table.
// Azure serves the same models as OpenAI and shares its table.
var maxTokensTables = map[Endpoint]*TokenMap{
	EndpointOpenAI:      openAIMaxTokens,
	EndpointAzureOpenAI: openAIMaxTokens,
	EndpointAnthropic:   anthropicMaxTokens,
	EndpointGoogle:      googleMaxTokens,
	EndpointBedrock:     bedrockMaxTokens,
}

var openAIMaxOutputTokens = NewTokenMapFrom(
	Entry{"gpt-3.5-turbo", Limit(4096)},
	Entry{"gpt-4", Limit(8192)},
	Entry{"gpt-4-turbo", Limit(4096)},
	Entry{"gpt-4o", Limit(16384)},
	Entry{"gpt-4.1", Limit(32768)},
	Entry{"o1", Limit(100000)},
	Entry{"o1-mini", Limit(65536)},
	Entry{"o3", Limit(100000)},
	Entry{"gpt-5", Limit(128000)},
)

var anthropicMaxOutputTokens = NewTokenMapFrom(
	Entry{"claude-", Limit(4096)},
	Entry{"claude-3-5-sonnet", Limit(8192)},
	Entry{"claude-3-5-haiku", Limit(8192)},
	Entry{"claude-3-7-sonnet", Limit(64000)},
	Entry{"claude-sonnet-4", Limit(64000)},
	Entry{"claude-opus-4", Limit(32000)},
	Entry{"claude-haiku-4", Limit(64000)},
)

// maxOutputTokensTables is sparse; endpoints without an entry fall back to
// their context-window table.
var maxOutputTokensTables = map[Endpoint]*TokenMap{
	EndpointOpenAI:      openAIMaxOutputTokens,
	EndpointAzureOpenAI: openAIMaxOutputTokens,
	EndpointAnthropic:   anthropicMaxOutputTokens,
}

// MaxTokensTable returns the built-in context-window table for an endpoint.
func MaxTokensTable(endpoint Endpoint) (*TokenMap, bool) {
	m, ok := maxTokensTables[endpoint]
	return m, ok
}

// MaxOutputTokensTable returns the built-in output-cap table for an
// endpoint.
func MaxOutputTokensTable(endpoint Endpoint) (*TokenMap, bool) {
	m, ok := maxOutputTokensTables[endpoint]
	return m, ok
}
