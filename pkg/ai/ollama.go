package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaService implements ExtractorService using a local Ollama instance.
type OllamaService struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		baseURL: baseURL,
		model:   model,
		// Local models can be slow on first load
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (o *OllamaService) ExtractRfp(ctx context.Context, text string) (*StructuredRfp, error) {
	raw, err := o.generate(ctx, buildRfpExtractionPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("failed to extract RFP from text: %w", err)
	}
	return decodeRfp(raw)
}

func (o *OllamaService) ParseVendorReply(ctx context.Context, emailBody, rfpContext string) (*ParsedProposal, error) {
	raw, err := o.generate(ctx, buildVendorReplyPrompt(emailBody, rfpContext))
	if err != nil {
		return nil, err
	}
	return decodeProposal(raw)
}

func (o *OllamaService) CompareProposals(ctx context.Context, rfpText string, proposals []ProposalSummary) (*ComparisonResult, error) {
	prompt, err := buildComparisonPrompt(rfpText, proposals)
	if err != nil {
		return nil, err
	}
	raw, err := o.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return decodeComparison(raw)
}

func (o *OllamaService) generate(ctx context.Context, prompt string) (string, error) {
	url := o.baseURL + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
		"options": map[string]interface{}{
			"temperature": 0.2,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama API error: %s", string(respBody))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Response == "" {
		return "", fmt.Errorf("no text returned by Ollama")
	}
	return result.Response, nil
}
