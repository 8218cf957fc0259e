package newsletter

import (
	"fmt"
	"strings"

	"github.com/aboldguess/Nichifier/pkg/domain"
)

const (
	defaultNewsletterVoice = "Use an energetic, professional tone."
	defaultNewsletterStyle = "Write in short paragraphs with bullet highlights."
	defaultReportVoice     = "Adopt an authoritative yet friendly tone."
	defaultReportStyle     = "Include executive summary, key metrics, and outlook."
)

// BuildNewsletterPrompt constructs the generation prompt for a newsletter
// issue from the niche's voice and style guidance plus the aggregated
// articles.
func BuildNewsletterPrompt(nicheName, voice, style string, articles []domain.Article) string {
	if voice == "" {
		voice = defaultNewsletterVoice
	}
	if style == "" {
		style = defaultNewsletterStyle
	}

	lines := make([]string, 0, len(articles))
	for _, article := range articles {
		lines = append(lines, fmt.Sprintf("- %s (%s)", article.Title, article.URL))
	}

	return fmt.Sprintf(
		"You are writing a daily briefing for the '%s' industry.\n"+
			"Voice guidance: %s\n"+
			"Style guidance: %s\n"+
			"Summarise the following articles with crisp insights and action items:\n%s",
		nicheName, voice, style, strings.Join(lines, "\n"))
}

// BuildReportPrompt constructs the generation prompt for a longform report.
func BuildReportPrompt(nicheName string, cadence domain.Cadence, voice, style string, insights []string) string {
	if voice == "" {
		voice = defaultReportVoice
	}
	if style == "" {
		style = defaultReportStyle
	}

	lines := make([]string, 0, len(insights))
	for _, point := range insights {
		lines = append(lines, "* "+point)
	}

	return fmt.Sprintf(
		"Draft a %s deep-dive report for the '%s' niche.\n"+
			"Voice guidance: %s\n"+
			"Style guidance: %s\n"+
			"Incorporate the following curated insights:\n%s",
		cadence, nicheName, voice, style, strings.Join(lines, "\n"))
}
