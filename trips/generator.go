package trips

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/RahimHoxha/travel-agency/config"
)

// Generator calls the Groq chat-completions endpoint (OpenAI compatible)
// to produce an itinerary document.
type Generator struct {
	client openai.Client
	model  shared.ChatModel
}

func NewGenerator(cfg config.Config) *Generator {
	client := openai.NewClient(
		option.WithAPIKey(cfg.GroqAPIKey),
		option.WithBaseURL(strings.TrimRight(cfg.GroqBaseURL, "/")+"/"),
		// Each request fails independently, retrying is left to the caller.
		option.WithMaxRetries(0),
	)

	return &Generator{
		client: client,
		model:  shared.ChatModel(cfg.GroqModel),
	}
}

// Generate runs one completion for the given trip request and returns the
// itinerary as normalized JSON text. The model output is recovered
// leniently first and parsed strictly as a fallback.
func (g *Generator) Generate(ctx context.Context, req TripRequest) (json.RawMessage, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(req)),
		},
		Temperature: openai.Float(0.7),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &UpstreamError{Status: apiErr.StatusCode, Body: apiErr.RawJSON()}
		}
		return nil, err
	}

	if len(completion.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyCompletion
	}

	return decodeItinerary(content)
}

// decodeItinerary tries the lenient extraction first and falls back to
// parsing the content as-is. Only when both fail does it surface a
// ParseError. Re-serializing the generic value normalizes whitespace
// without imposing any schema, so unexpected shapes are stored untouched.
func decodeItinerary(content string) (json.RawMessage, error) {
	if region := ExtractJSONObject(content); region != "" {
		if normalized, err := reserialize(region); err == nil {
			return normalized, nil
		}
	}

	normalized, err := reserialize(content)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return normalized, nil
}

func reserialize(text string) (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
