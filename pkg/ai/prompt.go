package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Prompts are shared across providers so Gemini and Ollama produce the same
// JSON shapes.

const rfpExtractionSystemPrompt = "You are an expert procurement analyst. " +
	"Given a free-form description of what a company wants to buy, " +
	"extract a clean structured RFP object as JSON. " +
	"Infer reasonable defaults (like currency) when missing. " +
	"IMPORTANT: budget must be a number (not null). If no budget is mentioned, omit the budget field entirely. " +
	"IMPORTANT: quantity in lineItems must be a positive integer (at least 1). " +
	"Respond with ONLY valid JSON, no explanations, no markdown code blocks."

const vendorReplySystemPrompt = "You are a procurement analyst. Given a vendor's email response to an RFP, " +
	"extract pricing, terms, and key notes as structured JSON. Respond with ONLY JSON."

const comparisonSystemPrompt = "You are a senior procurement specialist helping choose a vendor. " +
	"Given an RFP description and a set of parsed proposals with prices and terms, " +
	"you will recommend the best vendor, assign normalized scores (0-100), and explain tradeoffs. " +
	"Be concise but clear. Respond with ONLY JSON."

func buildRfpExtractionPrompt(text string) string {
	return rfpExtractionSystemPrompt + "\n\n" +
		fmt.Sprintf("Free-form procurement description:\n\"\"\"%s\"\"\"\n\n", text) +
		"Return JSON with keys: title (string), description (string), budget (number, omit if not mentioned), " +
		"currency (string, default USD), deliveryWindow (string), paymentTerms (string), warranty (string), lineItems (array). " +
		"Each lineItem must have: name (string), description (string, optional), quantity (positive integer, minimum 1), specs (string, optional). " +
		"Return ONLY the JSON object, no markdown, no code blocks, no explanations."
}

func buildVendorReplyPrompt(emailBody, rfpContext string) string {
	var b strings.Builder
	b.WriteString(vendorReplySystemPrompt)
	b.WriteString("\n\nVendor email response:\n```\n")
	b.WriteString(emailBody)
	b.WriteString("\n```")
	if rfpContext != "" {
		b.WriteString("\nOriginal RFP context for reference (do not re-state, just use for understanding):\n```\n")
		b.WriteString(rfpContext)
		b.WriteString("\n```")
	}
	b.WriteString("\n\nReturn JSON with keys: totalPrice (number), currency (string), deliveryDays (integer), " +
		"paymentTerms (string), warranty (string), lineItems (array of {name, quantity, unitPrice, totalPrice, notes}), " +
		"assumptions (string array), risks (string array), summary (string). Omit unknown fields.")
	return b.String()
}

func buildComparisonPrompt(rfpText string, proposals []ProposalSummary) (string, error) {
	proposalsJSON, err := json.MarshalIndent(proposals, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal proposals: %w", err)
	}
	return comparisonSystemPrompt + "\n\n" +
		fmt.Sprintf("RFP:\n%s\n\nProposals JSON:\n%s\n\n", rfpText, proposalsJSON) +
		"Return JSON with keys: recommendation (string), rationale (string), " +
		"perVendor: [{ vendorId, vendorName, strengths: string[], weaknesses: string[], score: number 0-100 }].", nil
}

var (
	fenceOpenRe  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```$")
)

// stripCodeFence removes markdown code block markers the models like to wrap
// JSON responses in.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = fenceOpenRe.ReplaceAllString(raw, "")
		raw = fenceCloseRe.ReplaceAllString(raw, "")
		raw = strings.TrimSpace(raw)
	}
	return raw
}

func decodeRfp(raw string) (*StructuredRfp, error) {
	raw = stripCodeFence(raw)
	var rfp StructuredRfp
	if err := json.Unmarshal([]byte(raw), &rfp); err != nil {
		return nil, fmt.Errorf("failed to parse RFP JSON from model. Raw response: %s", truncate(raw, 200))
	}
	if err := rfp.Normalize(); err != nil {
		return nil, err
	}
	return &rfp, nil
}

func decodeProposal(raw string) (*ParsedProposal, error) {
	raw = stripCodeFence(raw)
	var proposal ParsedProposal
	if err := json.Unmarshal([]byte(raw), &proposal); err != nil {
		return nil, fmt.Errorf("failed to parse proposal JSON from model. Raw: %s", truncate(raw, 200))
	}
	proposal.Normalize()
	return &proposal, nil
}

func decodeComparison(raw string) (*ComparisonResult, error) {
	raw = stripCodeFence(raw)
	var result ComparisonResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse comparison JSON: %v. Raw: %s", err, truncate(raw, 200))
	}
	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
