package main

import (
	"github.com/sirupsen/logrus"

	api "rfphub-backend/cmd/api"
	inboxUsecase "rfphub-backend/internal/inbox/usecase"
	proposaldomain "rfphub-backend/internal/proposal/domain"
	proposalRepo "rfphub-backend/internal/proposal/repository"
	rfpdomain "rfphub-backend/internal/rfp/domain"
	rfpRepo "rfphub-backend/internal/rfp/repository"
	rfpUsecase "rfphub-backend/internal/rfp/usecase"
	vendordomain "rfphub-backend/internal/vendors/domain"
	vendorRepo "rfphub-backend/internal/vendors/repository"
	vendorUsecase "rfphub-backend/internal/vendors/usecase"
	"rfphub-backend/pkg/ai"
	"rfphub-backend/pkg/config"
	"rfphub-backend/pkg/database"
	"rfphub-backend/pkg/imapclient"
	"rfphub-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&rfpdomain.Rfp{}, &rfpdomain.RfpLineItem{}, &vendordomain.Vendor{}, &proposaldomain.Proposal{}); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories (dependency injection)
	rfpRepository := rfpRepo.NewRfpRepository(db)
	vendorRepository := vendorRepo.NewVendorRepository(db)
	proposalRepository := proposalRepo.NewProposalRepository(db)

	// Initialize AI extraction service
	extractor, err := ai.NewExtractorService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize AI service: ", err)
	}

	// Initialize outbound mailer
	rfpMailer := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Secure:   cfg.SMTPSecure,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	})

	// Initialize inbox reconciliation pipeline
	dialer := imapclient.NewDialer(imapclient.Config{
		Host:     cfg.IMAPHost,
		Port:     cfg.IMAPPort,
		Secure:   cfg.IMAPSecure,
		Username: cfg.IMAPUser,
		Password: cfg.IMAPPass,
	})
	reconciler := inboxUsecase.NewReconciler(cfg, dialer, rfpRepository, vendorRepository, proposalRepository, extractor)
	poller := inboxUsecase.NewPoller(reconciler, cfg.PollInterval)

	// Initialize use cases (dependency injection)
	rfpUsecaseInstance := rfpUsecase.NewRfpUsecase(rfpRepository, vendorRepository, proposalRepository, extractor, rfpMailer)
	vendorUsecaseInstance := vendorUsecase.NewVendorUsecase(vendorRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(rfpUsecaseInstance, vendorUsecaseInstance, reconciler, poller)

	// Start automatic email polling when the mailbox is configured
	if cfg.IMAPConfigured() {
		poller.Start()
	} else {
		logrus.Warn("IMAP not configured, automatic polling disabled. Start manually via POST /api/email/polling/start")
	}

	logrus.Infof("Backend listening on http://localhost:%s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
