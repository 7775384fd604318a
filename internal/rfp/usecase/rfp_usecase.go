package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	proposaldomain "rfphub-backend/internal/proposal/domain"
	proposalrepo "rfphub-backend/internal/proposal/repository"
	"rfphub-backend/internal/rfp/domain"
	"rfphub-backend/internal/rfp/repository"
	vendorrepo "rfphub-backend/internal/vendors/repository"
	"rfphub-backend/pkg/ai"
)

var (
	ErrRfpNotFound = errors.New("RFP not found")
	ErrNoVendors   = errors.New("no vendors found with the provided IDs")
	ErrNoProposals = errors.New("no proposals to compare")
)

// MailSender sends plain-text mail. Satisfied by pkg/mailer.
type MailSender interface {
	Configured() bool
	Send(to, subject, body string) error
}

// RfpDetail is an RFP with its received proposals attached.
type RfpDetail struct {
	domain.Rfp
	Proposals []*proposaldomain.Proposal `json:"proposals"`
}

// RfpUsecase defines the interface for RFP business logic
type RfpUsecase interface {
	// CreateFromText extracts a structured RFP from free text and persists it
	CreateFromText(ctx context.Context, text string) (*domain.Rfp, error)

	// List returns all RFPs, newest first
	List() ([]*domain.Rfp, error)

	// GetByID returns an RFP with line items and proposals
	GetByID(id uint) (*RfpDetail, error)

	// SendToVendors emails the RFP invitation and marks the RFP sent
	SendToVendors(id uint, vendorIDs []uint) error

	// Compare runs AI comparison across all proposals of an RFP
	Compare(ctx context.Context, id uint) (*ai.ComparisonResult, error)

	// Delete removes the RFP, its line items and its proposals
	Delete(id uint) error
}

type rfpUsecase struct {
	rfpRepo      repository.RfpRepository
	vendorRepo   vendorrepo.VendorRepository
	proposalRepo proposalrepo.ProposalRepository
	extractor    ai.ExtractorService
	mailer       MailSender
}

func NewRfpUsecase(
	rfpRepo repository.RfpRepository,
	vendorRepo vendorrepo.VendorRepository,
	proposalRepo proposalrepo.ProposalRepository,
	extractor ai.ExtractorService,
	mailer MailSender,
) RfpUsecase {
	return &rfpUsecase{
		rfpRepo:      rfpRepo,
		vendorRepo:   vendorRepo,
		proposalRepo: proposalRepo,
		extractor:    extractor,
		mailer:       mailer,
	}
}

func (u *rfpUsecase) CreateFromText(ctx context.Context, text string) (*domain.Rfp, error) {
	structured, err := u.extractor.ExtractRfp(ctx, text)
	if err != nil {
		return nil, err
	}

	rfp := &domain.Rfp{
		Title:          structured.Title,
		Description:    structured.Description,
		Budget:         structured.Budget,
		Currency:       structured.Currency,
		DeliveryWindow: structured.DeliveryWindow,
		PaymentTerms:   structured.PaymentTerms,
		Warranty:       structured.Warranty,
		RawPrompt:      text,
		Status:         domain.StatusDraft,
	}
	for _, li := range structured.LineItems {
		rfp.LineItems = append(rfp.LineItems, domain.RfpLineItem{
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			Specs:       li.Specs,
		})
	}

	if err := u.rfpRepo.Create(rfp); err != nil {
		return nil, err
	}
	return rfp, nil
}

func (u *rfpUsecase) List() ([]*domain.Rfp, error) {
	return u.rfpRepo.List()
}

func (u *rfpUsecase) GetByID(id uint) (*RfpDetail, error) {
	rfp, err := u.rfpRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if rfp == nil {
		return nil, ErrRfpNotFound
	}

	proposals, err := u.proposalRepo.ListByRfp(id)
	if err != nil {
		return nil, err
	}
	if proposals == nil {
		proposals = []*proposaldomain.Proposal{}
	}

	return &RfpDetail{Rfp: *rfp, Proposals: proposals}, nil
}

func (u *rfpUsecase) SendToVendors(id uint, vendorIDs []uint) error {
	rfp, err := u.rfpRepo.FindByID(id)
	if err != nil {
		return err
	}
	if rfp == nil {
		return ErrRfpNotFound
	}

	vendors, err := u.vendorRepo.FindByIDs(vendorIDs)
	if err != nil {
		return err
	}
	if len(vendors) == 0 {
		return ErrNoVendors
	}

	subject := fmt.Sprintf("RFP #%d: %s", rfp.ID, rfp.Title)
	body := buildInvitationBody(rfp)

	logrus.Infof("[Mailer] Sending RFP #%d to %d vendor(s)", rfp.ID, len(vendors))
	for _, vendor := range vendors {
		if err := u.mailer.Send(vendor.Email, subject, body); err != nil {
			return fmt.Errorf("failed to send email to %s: %w", vendor.Email, err)
		}
		logrus.Infof("[Mailer] Email sent successfully to %s", vendor.Email)
	}

	return u.rfpRepo.UpdateStatus(id, domain.StatusSent)
}

func (u *rfpUsecase) Compare(ctx context.Context, id uint) (*ai.ComparisonResult, error) {
	rfp, err := u.rfpRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if rfp == nil {
		return nil, ErrRfpNotFound
	}

	proposals, err := u.proposalRepo.ListByRfp(id)
	if err != nil {
		return nil, err
	}
	if len(proposals) == 0 {
		return nil, ErrNoProposals
	}

	summaries := make([]ai.ProposalSummary, 0, len(proposals))
	for _, p := range proposals {
		summaries = append(summaries, ai.ProposalSummary{
			VendorID:     p.VendorID,
			VendorName:   p.Vendor.Name,
			TotalPrice:   p.TotalPrice,
			Currency:     p.Currency,
			DeliveryDays: p.DeliveryDays,
			Score:        p.Score,
			AiSummary:    p.AiSummary,
		})
	}

	rfpText := rfp.Title + "\n" + rfp.Description
	return u.extractor.CompareProposals(ctx, rfpText, summaries)
}

func (u *rfpUsecase) Delete(id uint) error {
	rfp, err := u.rfpRepo.FindByID(id)
	if err != nil {
		return err
	}
	if rfp == nil {
		return ErrRfpNotFound
	}

	if err := u.proposalRepo.DeleteByRfp(id); err != nil {
		return err
	}
	return u.rfpRepo.Delete(id)
}

// buildInvitationBody renders the plain-text invitation. The subject token
// instruction is what makes inbound correlation work, keep it intact.
func buildInvitationBody(rfp *domain.Rfp) string {
	lines := []string{
		"Dear Vendor,",
		"",
		"You are invited to submit a proposal for the following RFP:",
		"",
		"Title: " + rfp.Title,
		"Description: " + rfp.Description,
	}
	if rfp.Budget != nil {
		currency := rfp.Currency
		if currency == "" {
			currency = "USD"
		}
		lines = append(lines, "Budget: "+strconv.FormatFloat(*rfp.Budget, 'f', -1, 64)+" "+currency)
	}
	if rfp.DeliveryWindow != "" {
		lines = append(lines, "Delivery window: "+rfp.DeliveryWindow)
	}
	if rfp.PaymentTerms != "" {
		lines = append(lines, "Payment terms: "+rfp.PaymentTerms)
	}
	if rfp.Warranty != "" {
		lines = append(lines, "Warranty: "+rfp.Warranty)
	}
	lines = append(lines,
		"",
		"Please reply to this email with your proposal. "+
			"Keep the subject line unchanged so our system can automatically match your response.",
	)
	return strings.Join(lines, "\n")
}
