package ai

import (
	"context"
	"fmt"
)

// StructuredRfp is the extraction result for a free-form procurement
// description.
type StructuredRfp struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Budget         *float64          `json:"budget,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	DeliveryWindow string            `json:"deliveryWindow,omitempty"`
	PaymentTerms   string            `json:"paymentTerms,omitempty"`
	Warranty       string            `json:"warranty,omitempty"`
	LineItems      []RfpLineItemSpec `json:"lineItems"`
}

type RfpLineItemSpec struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Specs       string `json:"specs,omitempty"`
}

// ParsedProposal is the extraction result for a vendor reply email.
type ParsedProposal struct {
	TotalPrice   *float64           `json:"totalPrice,omitempty"`
	Currency     string             `json:"currency,omitempty"`
	DeliveryDays *int               `json:"deliveryDays,omitempty"`
	PaymentTerms string             `json:"paymentTerms,omitempty"`
	Warranty     string             `json:"warranty,omitempty"`
	LineItems    []ProposalLineItem `json:"lineItems"`
	Assumptions  []string           `json:"assumptions"`
	Risks        []string           `json:"risks"`
	Summary      string             `json:"summary,omitempty"`
}

type ProposalLineItem struct {
	Name       string   `json:"name"`
	Quantity   *int     `json:"quantity,omitempty"`
	UnitPrice  *float64 `json:"unitPrice,omitempty"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// ProposalSummary is the condensed per-vendor view fed into comparison.
type ProposalSummary struct {
	VendorID     uint     `json:"vendorId"`
	VendorName   string   `json:"vendorName"`
	TotalPrice   *float64 `json:"totalPrice,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	DeliveryDays *int     `json:"deliveryDays,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	AiSummary    string   `json:"aiSummary,omitempty"`
}

type VendorAssessment struct {
	VendorID   uint     `json:"vendorId"`
	VendorName string   `json:"vendorName"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Score      float64  `json:"score"`
}

type ComparisonResult struct {
	Recommendation string             `json:"recommendation"`
	Rationale      string             `json:"rationale"`
	PerVendor      []VendorAssessment `json:"perVendor"`
}

// ExtractorService is the interface for turning free text into structured
// procurement objects. Implement this interface to add new AI providers
// (Gemini, Ollama, OpenAI, etc.)
type ExtractorService interface {
	ExtractRfp(ctx context.Context, text string) (*StructuredRfp, error)
	ParseVendorReply(ctx context.Context, emailBody, rfpContext string) (*ParsedProposal, error)
	CompareProposals(ctx context.Context, rfpText string, proposals []ProposalSummary) (*ComparisonResult, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)

// Normalize repairs common model output quirks and validates required fields.
func (r *StructuredRfp) Normalize() error {
	if r.Title == "" {
		return fmt.Errorf("model response missing title")
	}
	if r.Description == "" {
		return fmt.Errorf("model response missing description")
	}
	if r.LineItems == nil {
		r.LineItems = []RfpLineItemSpec{}
	}
	for i := range r.LineItems {
		if r.LineItems[i].Quantity < 1 {
			r.LineItems[i].Quantity = 1
		}
	}
	return nil
}

// Normalize ensures the slice fields are never nil so the serialized form
// always carries arrays.
func (p *ParsedProposal) Normalize() {
	if p.LineItems == nil {
		p.LineItems = []ProposalLineItem{}
	}
	if p.Assumptions == nil {
		p.Assumptions = []string{}
	}
	if p.Risks == nil {
		p.Risks = []string{}
	}
}
