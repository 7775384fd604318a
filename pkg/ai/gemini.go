package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GeminiService implements ExtractorService against the Gemini REST API.
type GeminiService struct {
	apiKey string
	client *http.Client
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		client: &http.Client{},
	}
}

func (g *GeminiService) ExtractRfp(ctx context.Context, text string) (*StructuredRfp, error) {
	raw, err := g.generate(ctx, buildRfpExtractionPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("failed to extract RFP from text: %w", err)
	}
	return decodeRfp(raw)
}

func (g *GeminiService) ParseVendorReply(ctx context.Context, emailBody, rfpContext string) (*ParsedProposal, error) {
	raw, err := g.generate(ctx, buildVendorReplyPrompt(emailBody, rfpContext))
	if err != nil {
		return nil, err
	}
	return decodeProposal(raw)
}

func (g *GeminiService) CompareProposals(ctx context.Context, rfpText string, proposals []ProposalSummary) (*ComparisonResult, error) {
	prompt, err := buildComparisonPrompt(rfpText, proposals)
	if err != nil {
		return nil, err
	}
	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return decodeComparison(raw)
}

// generate runs a single-turn completion and returns the model text.
func (g *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	// gemini-2.5-flash is fast enough for synchronous request handling
	url := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key=" + g.apiKey

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, nil
						}
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no text returned by Gemini")
}
