package newsletter

import (
	"context"
	"fmt"
	"strings"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"google.golang.org/genai"
)

// Generator produces issue bodies from a prompt.
//
//go:generate mockgen -package mocknewsletter -source=generator.go -destination=mock/mockgenerator.go *
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API to draft issue bodies.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
	}, nil
}

// Generate sends the prompt to Gemini and returns the drafted text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("could not generate content: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty draft")
	}

	return text, nil
}

// composeFallbackBody renders a deterministic issue body from the aggregated
// articles. It stands in when no generator is configured or generation fails,
// so scheduled issues still go out.
func composeFallbackBody(niche domain.Niche, kind domain.IssueKind, articles []domain.Article) string {
	var b strings.Builder

	switch kind {
	case domain.IssueReport:
		fmt.Fprintf(&b, "## %s %s report\n\n", niche.Name, niche.ReportCadence)
	default:
		fmt.Fprintf(&b, "## %s briefing\n\n", niche.Name)
	}

	if niche.ShortDescription != "" {
		b.WriteString(niche.ShortDescription + "\n\n")
	}

	if len(articles) == 0 {
		b.WriteString("No fresh articles were available this time around.\n")

		return b.String()
	}

	b.WriteString("Highlights:\n")
	for _, article := range articles {
		fmt.Fprintf(&b, "- %s (%s)", article.Title, article.Source)
		if article.Summary != "" {
			b.WriteString(": " + article.Summary)
		}
		b.WriteString("\n")
	}

	return b.String()
}
