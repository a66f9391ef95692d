package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"arcane-armory/forge"
)

const defaultRequestTimeout = 60 * time.Second

const enhanceSystemPrompt = "You are a seasoned Dungeons & Dragons item designer. " +
	"Given a base magic item, you elaborate its lore and quirks in a vivid but table-usable way. " +
	"Keep it roughly 5e balanced, grounded in fantasy tone (no modern tech), " +
	"and avoid contradicting the core concept."

const enhanceTaskPrompt = "Task:\n" +
	"- Enrich the lore into 2–4 sentences of evocative description.\n" +
	"- Provide 1–2 quirky behaviors or narrative oddities.\n" +
	"- Optionally refine the item name and mechanical effect to be a bit more flavorful, " +
	"but keep them mechanically close to the original.\n\n" +
	"Respond ONLY as a JSON object with keys:\n" +
	"  name: string (final item name, can reuse the original)\n" +
	"  enhanced_lore: string (2–4 sentences)\n" +
	"  enhanced_quirk: string (1–2 sentences; can combine multiple quirks)\n" +
	"  mechanical_note: string (short note about how to interpret or keep it balanced)\n" +
	"No extra commentary, no markdown."

// OpenAIConfig configures the OpenAI-backed enhancer and image generator.
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	TextModel      string
	ImageModel     string
	RequestTimeout time.Duration
}

// OpenAIClient implements TextEnhancer and ImageGenerator against
// OpenAI-compatible APIs.
type OpenAIClient struct {
	client *openai.Client
	config OpenAIConfig
}

// NewOpenAIClient creates a client for OpenAI-compatible APIs.
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for OpenAI client")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// EnhanceItem sends the item as compact JSON and decodes the structured
// enhancement response. Each call carries a bounded timeout; timeout
// surfaces as an ordinary error.
func (c *OpenAIClient) EnhanceItem(ctx context.Context, item forge.Item) (*forge.Enhancement, error) {
	baseJSON, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encode item: %w", err)
	}

	userPrompt := fmt.Sprintf("Here is a base item description as JSON:\n%s\n\n%s", baseJSON, enhanceTaskPrompt)

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.TextModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: enhanceSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature:         0.9,
		MaxCompletionTokens: 400,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI returned empty response")
	}

	var enh forge.Enhancement
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &enh); err != nil {
		return nil, fmt.Errorf("decode enhancement response: %w", err)
	}
	return &enh, nil
}

// GenerateArt requests a single illustration and returns the decoded
// image bytes.
func (c *OpenAIClient) GenerateArt(ctx context.Context, item forge.Item) ([]byte, error) {
	prompt := fmt.Sprintf(
		"Fantasy illustration of a Dungeons & Dragons style magic item. "+
			"Item name: %s. Rarity: %s. Type: %s %s %s. "+
			"Show the item alone on a simple, dark backdrop, no text, no characters, "+
			"in a painterly illustration style.",
		item.Name, item.Rarity, item.Quality, item.Material, item.Type,
	)

	ctx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          c.config.ImageModel,
		Prompt:         prompt,
		Size:           openai.CreateImageSize1024x1024,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("image response contained no data")
	}

	img, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image data: %w", err)
	}
	return img, nil
}

// Close releases client resources. The HTTP client holds no persistent
// connection state worth tearing down.
func (c *OpenAIClient) Close() error {
	return nil
}
