// Package content holds the AI-assisted authoring features: the marketing
// blog generator and the business-analyst chatbot.
package content

import (
	"context"
	"fmt"
	"strings"

	blogRepo "vango/database/repository/blog"
	categoryRepo "vango/database/repository/category"
	"vango/models"
	"vango/services/intelligence"

	"github.com/google/uuid"
)

// GeneratorService drafts blog posts with the language model and stores them
// as unpublished drafts for an admin to review.
type GeneratorService struct {
	Gemini     *intelligence.GeminiClient
	Blog       blogRepo.BlogRepository
	Categories categoryRepo.CategoryRepository
}

// GeneratePost drafts a post on the given topic. The fleet lineup is fed into
// the prompt so the copy references real categories.
func (s *GeneratorService) GeneratePost(ctx context.Context, topic string, tags []string) (*models.BlogPost, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	categories, err := s.Categories.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Write a blog post for a van rental company's website. Plain text, no markdown headers.\n")
	sb.WriteString("Topic: " + topic + "\n")
	sb.WriteString("Mention our fleet where it fits naturally:\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "- %s: %.1f m3, %.0f kg payload, %d seats\n", c.Name, c.CargoVolumeM3, c.PayloadKg, c.Seats)
	}
	sb.WriteString("Around 500 words. First line is the title, then a blank line, then the body.\n")

	raw, err := s.Gemini.GenerateContent(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	title, body := splitDraft(raw, topic)
	post := &models.BlogPost{
		ID:        uuid.NewString(),
		Slug:      Slugify(title),
		Title:     title,
		Body:      body,
		Tags:      tags,
		Generated: true,
		Published: false,
	}
	if err := s.Blog.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func splitDraft(raw, fallbackTitle string) (title, body string) {
	raw = strings.TrimSpace(raw)
	title, body, found := strings.Cut(raw, "\n")
	if !found || strings.TrimSpace(title) == "" {
		return fallbackTitle, raw
	}
	return strings.TrimSpace(strings.Trim(title, "#* ")), strings.TrimSpace(body)
}

// Slugify turns a title into a URL slug.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
