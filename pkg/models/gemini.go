package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/docstore"
)

// ---------------------------- Google Gemini ----------------------------------

type GeminiLLM struct {
	Client *genai.Client
	Model  string
}

// NewGeminiLLM dials the Gemini API with an explicit key. The key comes from
// the interactive configuration path; there is no implicit environment
// lookup here.
func NewGeminiLLM(ctx context.Context, apiKey, model string) (*GeminiLLM, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: missing API key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiLLM{Client: client, Model: model}, nil
}

func (g *GeminiLLM) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.Client.GenerativeModel(g.Model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return responseText(resp)
}

// GenerateWithFiles sends the document handles first and the prompt last,
// as ordered content parts of a single synchronous request.
func (g *GeminiLLM) GenerateWithFiles(ctx context.Context, prompt string, files []docstore.FileHandle) (string, error) {
	model := g.Client.GenerativeModel(g.Model)
	parts := make([]genai.Part, 0, len(files)+1)
	for _, f := range files {
		parts = append(parts, genai.FileData{MIMEType: f.MIMEType, URI: f.URI})
	}
	parts = append(parts, genai.Text(prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return responseText(resp)
}

func (g *GeminiLLM) Close() error {
	return g.Client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini: response contained no text parts")
	}
	return sb.String(), nil
}

var _ Agent = (*GeminiLLM)(nil)
