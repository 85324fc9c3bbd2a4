package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

// chatResolver is the OpenAI-compatible chat completion call shared by the
// OpenAI and Groq adapters.
type chatResolver struct {
	name   string
	client *openai.Client
	model  string
	config Config
}

func (c *chatResolver) Resolve(ctx context.Context, req Request) (harmony.Spec, error) {
	if req.Empty() {
		return harmony.Spec{}, ErrEmptyRequest
	}

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: BuildSystemPrompt()},
			BuildUserMessage(req),
		},
		Temperature: c.config.temperature(),
		MaxTokens:   c.config.maxTokens(),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	duration := time.Since(start)

	if err != nil {
		log.Printf("%s: API call failed after %v: %v", c.name, duration, err)
		return harmony.Spec{}, fmt.Errorf("%s chat completion: %w", c.config.Provider, err)
	}

	if len(resp.Choices) == 0 {
		return harmony.Spec{}, fmt.Errorf("%s chat completion: no response choices", c.config.Provider)
	}

	content := resp.Choices[0].Message.Content
	spec, warnings := ParseSpec(content)
	for _, w := range warnings {
		log.Printf("%s: %s", c.name, w)
	}
	log.Printf("%s: resolved in %v: %q -> %s", c.name, duration, req.Prompt, spec)
	return spec, nil
}

// BuildUserMessage builds the multi-part user message: the prompt text and,
// when present, the image as a data URI.
func BuildUserMessage(req Request) openai.ChatCompletionMessage {
	var parts []openai.ChatMessagePart

	hasImage := req.Image != nil && len(req.Image.Data) > 0
	switch {
	case req.Prompt != "":
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: BuildUserPrompt(req.Prompt),
		})
	case hasImage:
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: imageOnlyPrompt,
		})
	}

	if hasImage {
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: DataURI(*req.Image)},
		})
	}

	return openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: parts,
	}
}

// DataURI encodes img as data:<mime>;base64,<payload>.
func DataURI(img Image) string {
	mime := img.MIMEType
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
