package vision

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"curador/internal/config"
)

const prompt = "\n\nDescreva este objeto, sugira uma categoria principal e até 5 tags relevantes. " +
	"Formato da resposta desejado (JSON):\n" +
	"{\n" +
	"  \"descricao_ia\": \"Uma breve descrição do objeto principal na imagem.\",\n" +
	"  \"categoria\": \"Nome da Categoria Sugerida\",\n" +
	"  \"tags\": [\"tag1\", \"tag2\", \"tag3\"]\n" +
	"}"

// Gemini classifies images with the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini builds a client for cfg.Model. cfg.Endpoint overrides the API
// base URL. Outgoing requests carry client spans.
func NewGemini(ctx context.Context, cfg config.VisionConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.Endpoint},
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &Gemini{
		client:  client,
		model:   cfg.Model,
		timeout: time.Duration(cfg.TimeoutSec) * time.Second,
	}, nil
}

// New returns a Gemini classifier, or Disabled when no API key is set.
func New(ctx context.Context, cfg config.VisionConfig) (Classifier, error) {
	if cfg.APIKey == "" {
		return Disabled{}, nil
	}
	return NewGemini(ctx, cfg)
}

func (g *Gemini) Model() string { return g.model }

// Classify sends the image and the catalog prompt in one request and returns
// the concatenated text parts of the first candidate.
func (g *Gemini) Classify(ctx context.Context, image []byte, mimeType string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		if cand.FinishReason != "" && cand.FinishReason != genai.FinishReasonStop {
			return "", fmt.Errorf("%w: %s", ErrBlocked, cand.FinishReason)
		}
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

// Ping fetches the model metadata and checks it can generate content.
func (g *Gemini) Ping(ctx context.Context) error {
	m, err := g.client.Models.Get(ctx, g.model, nil)
	if err != nil {
		return fmt.Errorf("get model: %w", err)
	}
	if !slices.Contains(m.SupportedActions, "generateContent") {
		return fmt.Errorf("%w: %s", ErrUnsupportedModel, g.model)
	}
	return nil
}
