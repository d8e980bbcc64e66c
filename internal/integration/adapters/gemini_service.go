// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/domain/entity"
)

// GeminiService implements the CategoryAdvisor using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks Gemini to pick the best-fitting category for a crop.
// Returns nil advice when the model declines to pick one.
func (s *GeminiService) SuggestCategory(ctx context.Context, crop *entity.Crop, categories []*entity.CropCategory) (*adapter.CategoryAdvice, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(crop, categories)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	advice, err := s.parseResponse(resp, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return advice, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(crop *entity.Crop, categories []*entity.CropCategory) string {
	var sb strings.Builder

	sb.WriteString(`You are an agricultural expert. Your task is to classify a crop into
one of the available categories based on its name, growing season and notes.

RULES:
- Pick exactly one category from the list below, or none if no category fits
- Do not invent category names or IDs; use only the IDs provided
- Report the keywords from the crop details that led to your choice
- Confidence is a number between 0.0 and 1.0

AVAILABLE CATEGORIES:
`)

	for _, cat := range categories {
		sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s, Description: %s\n",
			cat.ID, cat.Name, cat.Description))
	}

	sb.WriteString("\nCROP TO CLASSIFY:\n")
	sb.WriteString(fmt.Sprintf("- Name: %q, Season: %s", crop.Name, crop.Season))
	if crop.Notes != "" {
		sb.WriteString(fmt.Sprintf(", Notes: %q", crop.Notes))
	}
	sb.WriteString("\n")

	sb.WriteString(`
Respond with a single JSON object:
{
  "category_id": "uuid of the chosen category or null if none fits",
  "confidence": 0.0-1.0,
  "keywords": ["terms from the crop details that matched"]
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiAdvice represents the raw response from Gemini.
type geminiAdvice struct {
	CategoryID *string  `json:"category_id"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
}

// parseResponse parses the Gemini response into a CategoryAdvice.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse, categories []*entity.CropCategory) (*adapter.CategoryAdvice, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiAdvice
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if raw.CategoryID == nil || *raw.CategoryID == "" {
		return nil, nil
	}

	categoryID, err := uuid.Parse(*raw.CategoryID)
	if err != nil {
		return nil, nil
	}

	// The model occasionally hallucinates IDs; only accept ones we offered.
	known := false
	for _, cat := range categories {
		if cat.ID == categoryID {
			known = true
			break
		}
	}
	if !known {
		return nil, nil
	}

	if raw.Confidence < 0 {
		raw.Confidence = 0
	}
	if raw.Confidence > 1 {
		raw.Confidence = 1
	}

	return &adapter.CategoryAdvice{
		CategoryID: categoryID,
		Confidence: raw.Confidence,
		Keywords:   raw.Keywords,
	}, nil
}
