package gemini

import (
	"time"

	pkghttp "webaudit-srv/pkg/http"

	"golang.org/x/time/rate"
)

// GeminiConfig holds the configuration for the Gemini client.
type GeminiConfig struct {
	APIKey            string
	Model             string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// geminiImpl implements IGemini using the Google Gemini API.
type geminiImpl struct {
	apiKey     string
	model      string
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
	httpClient pkghttp.IClient
}

// GenerateRequest is a single-turn generation.
type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
	EnableSearch      bool
	Temperature       float64
}

// ChatRequest is a multi-turn generation. History must alternate user and model turns.
type ChatRequest struct {
	SystemInstruction string
	History           []Content
	Message           string
	Temperature       float64
}

// GenerateResponse is the text answer plus grounding information when search was enabled.
type GenerateResponse struct {
	Text             string
	GroundingSources []string
	SearchQueries    []string
	Usage            UsageMetadata
}

// Request defines the request body for Generate Content API
type Request struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	Tools             []Tool            `json:"tools,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content represents a single content block
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content
type Part struct {
	Text string `json:"text,omitempty"`
}

// Tool enables a server side capability.
type Tool struct {
	GoogleSearch *GoogleSearch `json:"googleSearch,omitempty"`
}

// GoogleSearch turns on live web search grounding.
type GoogleSearch struct{}

// GenerationConfig holds sampling parameters.
type GenerationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
}

// Response defines the response body from Generate Content API
type Response struct {
	Candidates     []Candidate     `json:"candidates"`
	UsageMetadata  UsageMetadata   `json:"usageMetadata"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Candidate represents a generated candidate
type Candidate struct {
	Content           Content            `json:"content"`
	FinishReason      string             `json:"finishReason"`
	Index             int                `json:"index"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

// GroundingMetadata lists the web sources behind a grounded answer.
type GroundingMetadata struct {
	WebSearchQueries []string         `json:"webSearchQueries"`
	GroundingChunks  []GroundingChunk `json:"groundingChunks"`
}

// GroundingChunk is one grounding source.
type GroundingChunk struct {
	Web *WebChunk `json:"web,omitempty"`
}

// WebChunk is a web page used for grounding.
type WebChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// PromptFeedback is set when the prompt itself was blocked.
type PromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

// UsageMetadata represents token usage
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type errorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
