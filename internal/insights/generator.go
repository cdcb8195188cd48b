package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"
)

const systemPrompt = `You are a fitness and nutrition coach. You receive a JSON document with the
recent workouts, meals and aggregated stats of one user. Reply ONLY with a JSON array of
2 to 5 insights. Each insight is an object with the fields:
  "type": one of "pattern", "recommendation", "achievement"
  "title": a short headline
  "content": one or two sentences addressed to the user
  "data": optional object with the numbers the insight is based on
Base every insight on the supplied data. Do not invent activity.`

// OpenAIGenerator asks an OpenAI compatible chat completions API for insights.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a generator against baseURL (empty means the
// public OpenAI API). The http client carries the tracing transport.
func NewOpenAIGenerator(baseURL, apiKey, model string, httpClient *http.Client) *OpenAIGenerator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if httpClient != nil {
		config.HTTPClient = httpClient
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, in InsightInput) (_ []GeneratedInsight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.generator.openai")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("model", g.model))

	inputJson, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal insight input: %w", err)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(inputJson)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		log.Warnf("insights generator: empty completion from model %s", g.model)
		return nil, nil
	}
	span.SetAttributes(attribute.Int("usage.total_tokens", resp.Usage.TotalTokens))

	generated := ParseGenerated(resp.Choices[0].Message.Content)
	span.SetAttributes(attribute.Int("insights", len(generated)))
	log.Debugf("insights generator: model %s produced %d usable insights", g.model, len(generated))

	return generated, nil
}
