package tokens

// Endpoint identifies a model provider integration and selects which
// built-in token table applies when the caller supplies none.
type Endpoint string

// Known endpoints.
const (
	EndpointOpenAI      Endpoint = "openAI"
	EndpointAzureOpenAI Endpoint = "azureOpenAI"
	EndpointAnthropic   Endpoint = "anthropic"
	EndpointGoogle      Endpoint = "google"
	EndpointBedrock     Endpoint = "bedrock"
	EndpointCustom      Endpoint = "custom"
)
