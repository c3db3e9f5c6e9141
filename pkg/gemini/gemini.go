package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type IGemini interface {
	ClassifyIntent(ctx context.Context, message string) (string, error)
	PhraseResponse(ctx context.Context, facts string) (string, error)
	Close()
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {

	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

const classifyPrompt = `You classify a customer message for an auto parts store chatbot.
Reply with exactly one label from this list and nothing else:
product_search, faq_store_info, faq_policy, faq_shipping, installation_help, request_quote, lead_capture, chitchat, promotions, car_sales, abuse, unknown.

Message: %s`

// ClassifyIntent asks the model for a single intent label. The caller is
// responsible for validating the label against its known set.
func (g *geminiClient) ClassifyIntent(ctx context.Context, message string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(classifyPrompt, message)))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	response := res.Candidates[0].Content.Parts[0]
	text, ok := response.(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return strings.ToLower(strings.TrimSpace(string(text))), nil
}

const phrasePrompt = `You phrase replies for an auto parts store chatbot.
Rewrite the facts below as one short, friendly customer reply.
Do not invent prices, stock levels or policies that are not in the facts.

Facts:
%s`

// PhraseResponse turns grounded facts into a conversational reply. Facts are
// produced by the dialogue controller; the model only rewords them.
func (g *geminiClient) PhraseResponse(ctx context.Context, facts string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(phrasePrompt, facts)))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	response := res.Candidates[0].Content.Parts[0]
	text, ok := response.(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return strings.TrimSpace(string(text)), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
