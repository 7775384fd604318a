package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	inboxdomain "rfphub-backend/internal/inbox/domain"
	proposaldomain "rfphub-backend/internal/proposal/domain"
	proposalrepo "rfphub-backend/internal/proposal/repository"
	rfprepo "rfphub-backend/internal/rfp/repository"
	vendorrepo "rfphub-backend/internal/vendors/repository"
	"rfphub-backend/pkg/ai"
	"rfphub-backend/pkg/config"
)

// subjectToken is the literal that correlates an inbound message to an RFP.
// Outbound invitations put it in the subject and ask vendors to keep it.
const subjectToken = "RFP #"

var rfpIDPattern = regexp.MustCompile(`RFP #(\d+)`)

// messageOutcome tags how a single message was handled. Only deferred
// messages keep their unseen flag, so they are retried on the next cycle.
type messageOutcome int

const (
	outcomeProcessed messageOutcome = iota // proposal created, flag seen
	outcomeSkipped                         // already handled, flag seen
	outcomeDeferred                        // left unseen for a later cycle
)

// Reconciler runs one inbox poll cycle: discover unseen vendor replies,
// correlate them to an RFP and vendor, extract a structured proposal and
// persist it exactly once per (RFP, vendor) pair.
type Reconciler struct {
	cfg          *config.Config
	dialer       inboxdomain.MailDialer
	rfpRepo      rfprepo.RfpRepository
	vendorRepo   vendorrepo.VendorRepository
	proposalRepo proposalrepo.ProposalRepository
	extractor    ai.ExtractorService
}

func NewReconciler(
	cfg *config.Config,
	dialer inboxdomain.MailDialer,
	rfpRepo rfprepo.RfpRepository,
	vendorRepo vendorrepo.VendorRepository,
	proposalRepo proposalrepo.ProposalRepository,
	extractor ai.ExtractorService,
) *Reconciler {
	return &Reconciler{
		cfg:          cfg,
		dialer:       dialer,
		rfpRepo:      rfpRepo,
		vendorRepo:   vendorRepo,
		proposalRepo: proposalRepo,
		extractor:    extractor,
	}
}

// ReconcileOnce executes one full cycle. Cycle-level failures (missing
// credentials, connection problems, deadline) return an error with no partial
// result; per-message problems are collected in the result and never abort
// the batch.
func (r *Reconciler) ReconcileOnce(ctx context.Context) (*inboxdomain.PollResult, error) {
	if !r.cfg.IMAPConfigured() {
		return nil, inboxdomain.ErrIMAPNotConfigured
	}

	if r.cfg.PollTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.PollTimeout)
		defer cancel()
	}

	log := logrus.WithField("cycle", uuid.NewString()[:8])

	log.Infof("[Inbox] Connecting to IMAP: %s:%d", r.cfg.IMAPHost, r.cfg.IMAPPort)
	session, err := r.dialer.Dial(ctx)
	if err != nil {
		return nil, &inboxdomain.ConnectionError{Err: err}
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warnf("[Inbox] Error closing IMAP session: %v", cerr)
		}
	}()

	log.Infof("[Inbox] Searching for unseen messages with %q in subject", subjectToken)
	uids, err := session.SearchUnseen(subjectToken)
	if err != nil {
		return nil, fmt.Errorf("search inbox: %w", err)
	}

	result := &inboxdomain.PollResult{Errors: []string{}}
	log.Infof("[Inbox] Found %d unread message(s) matching %q", len(uids), subjectToken)
	if len(uids) == 0 {
		return result, nil
	}

	messages, err := session.FetchEnvelopes(uids)
	if err != nil {
		return nil, fmt.Errorf("fetch envelopes: %w", err)
	}

	for _, msg := range messages {
		outcome, msgErr := r.handleMessage(ctx, session, msg, log)
		if msgErr != nil {
			result.Errors = append(result.Errors, msgErr.Error())
		}

		switch outcome {
		case outcomeProcessed:
			result.Processed++
			fallthrough
		case outcomeSkipped:
			if ferr := session.MarkSeen(msg.UID); ferr != nil {
				log.Warnf("[Inbox] Failed to flag message %d as seen: %v", msg.UID, ferr)
			}
		}
	}

	log.Infof("[Inbox] Polling complete. Processed: %d, Errors: %d", result.Processed, len(result.Errors))
	return result, nil
}

// handleMessage runs steps a-g for a single message. A returned error is a
// per-message error for the result; it never aborts the cycle. Panics are
// converted to deferred errors so one bad message cannot take the batch down.
func (r *Reconciler) handleMessage(
	ctx context.Context,
	session inboxdomain.MailSession,
	msg inboxdomain.InboundMessage,
	log *logrus.Entry,
) (outcome messageOutcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = outcomeDeferred
			err = fmt.Errorf("Error processing message: %v", rec)
		}
	}()

	log.Infof("[Inbox] Processing email from %s: %q", msg.From, msg.Subject)

	rfpID, ok := parseRfpID(msg.Subject)
	if !ok {
		// Left unseen for manual triage; intentionally not reported as an
		// error.
		log.Warnf("[Inbox] Subject does not contain RFP ID, skipping: %q", msg.Subject)
		return outcomeDeferred, nil
	}

	rfp, err := r.rfpRepo.FindByID(rfpID)
	if err != nil {
		return outcomeDeferred, fmt.Errorf("Error processing message: %v", err)
	}
	if rfp == nil {
		return outcomeDeferred, fmt.Errorf("RFP #%d not found in database", rfpID)
	}

	vendor, err := r.vendorRepo.FindByEmail(msg.From)
	if err != nil {
		return outcomeDeferred, fmt.Errorf("Error processing message: %v", err)
	}
	if vendor == nil {
		return outcomeDeferred, fmt.Errorf("Vendor with email %s not found in database", msg.From)
	}
	log.Infof("[Inbox] Found vendor: %s", vendor.Name)

	rawEmail, err := session.DownloadText(msg.UID)
	if err != nil {
		return outcomeDeferred, fmt.Errorf("Error processing message: %v", err)
	}
	// An empty body proceeds; extraction fails on it and is caught normally.

	existing, err := r.proposalRepo.FindByRfpAndVendor(rfp.ID, vendor.ID)
	if err != nil {
		return outcomeDeferred, fmt.Errorf("Error processing message: %v", err)
	}
	if existing != nil {
		log.Infof("[Inbox] Proposal already exists for RFP #%d and vendor %s, skipping", rfp.ID, vendor.Name)
		return outcomeSkipped, nil
	}

	log.Infof("[Inbox] Parsing email with AI (%d chars)", len(rawEmail))
	parsed, err := r.extractor.ParseVendorReply(ctx, rawEmail, rfp.Description)
	if err != nil {
		return outcomeDeferred, fmt.Errorf("Error processing message: %v", err)
	}

	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return outcomeDeferred, fmt.Errorf("Error processing message: %v", err)
	}

	proposal := &proposaldomain.Proposal{
		RfpID:          rfp.ID,
		VendorID:       vendor.ID,
		EmailMessageID: msg.MessageID,
		RawEmail:       rawEmail,
		ParsedJSON:     string(parsedJSON),
		TotalPrice:     parsed.TotalPrice,
		Currency:       parsed.Currency,
		DeliveryDays:   parsed.DeliveryDays,
		AiSummary:      parsed.Summary,
	}
	if err := r.proposalRepo.Create(proposal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent cycle recorded this pair first. Same as finding
			// an existing proposal: mark seen, produce nothing.
			log.Infof("[Inbox] Proposal for RFP #%d and vendor %s created concurrently, skipping", rfp.ID, vendor.Name)
			return outcomeSkipped, nil
		}
		return outcomeDeferred, fmt.Errorf("Error processing message: %v", err)
	}

	log.Infof("[Inbox] Successfully processed proposal from %s", vendor.Name)
	return outcomeProcessed, nil
}

// parseRfpID extracts the numeric identifier from the first "RFP #<digits>"
// token in a subject line.
func parseRfpID(subject string) (uint, bool) {
	m := rfpIDPattern.FindStringSubmatch(subject)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
