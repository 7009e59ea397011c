package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate runs a single-turn generation.
func (g *geminiImpl) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	body := Request{
		Contents: []Content{
			{Role: RoleUser, Parts: []Part{{Text: req.Prompt}}},
		},
		SystemInstruction: systemInstruction(req.SystemInstruction),
		GenerationConfig:  generationConfig(req.Temperature),
	}
	if req.EnableSearch {
		body.Tools = []Tool{{GoogleSearch: &GoogleSearch{}}}
	}
	return g.generateContent(ctx, body)
}

// Chat forwards the running conversation followed by the new user message.
func (g *geminiImpl) Chat(ctx context.Context, req ChatRequest) (GenerateResponse, error) {
	contents := make([]Content, 0, len(req.History)+1)
	contents = append(contents, req.History...)
	contents = append(contents, Content{Role: RoleUser, Parts: []Part{{Text: req.Message}}})

	return g.generateContent(ctx, Request{
		Contents:          contents,
		SystemInstruction: systemInstruction(req.SystemInstruction),
		GenerationConfig:  generationConfig(req.Temperature),
	})
}

func (g *geminiImpl) generateContent(ctx context.Context, body Request) (GenerateResponse, error) {
	if g.apiKey == "" {
		return GenerateResponse{}, ErrAPIKeyRequired
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: rate limiter: %v", ErrGenerationFailed, err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, g.model)
	raw, statusCode, err := g.httpClient.Post(ctx, url, body, map[string]string{headerAPIKey: g.apiKey})
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if statusCode != http.StatusOK {
		return GenerateResponse{}, newAPIError(statusCode, raw)
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return GenerateResponse{}, fmt.Errorf("%w: decode response: %v", ErrGenerationFailed, err)
	}
	return toGenerateResponse(resp)
}

func toGenerateResponse(resp Response) (GenerateResponse, error) {
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return GenerateResponse{}, fmt.Errorf("%w: prompt blocked: %s", ErrEmptyResponse, resp.PromptFeedback.BlockReason)
		}
		return GenerateResponse{}, ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	var b strings.Builder
	for _, part := range cand.Content.Parts {
		b.WriteString(part.Text)
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return GenerateResponse{}, fmt.Errorf("%w: finish reason %q", ErrEmptyResponse, cand.FinishReason)
	}

	out := GenerateResponse{Text: text, Usage: resp.UsageMetadata}
	if gm := cand.GroundingMetadata; gm != nil {
		out.SearchQueries = gm.WebSearchQueries
		for _, chunk := range gm.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				out.GroundingSources = append(out.GroundingSources, chunk.Web.URI)
			}
		}
	}
	return out, nil
}

func newAPIError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(raw))}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Error.Message != "" {
		apiErr.Status = eb.Error.Status
		apiErr.Message = eb.Error.Message
	}
	return apiErr
}

func systemInstruction(text string) *Content {
	if text == "" {
		return nil
	}
	return &Content{Parts: []Part{{Text: text}}}
}

func generationConfig(temperature float64) *GenerationConfig {
	if temperature <= 0 {
		return nil
	}
	return &GenerationConfig{Temperature: temperature}
}
