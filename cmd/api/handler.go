package api

import (
	"github.com/gin-gonic/gin"

	inboxDelivery "rfphub-backend/internal/inbox/delivery"
	inboxUsecase "rfphub-backend/internal/inbox/usecase"
	rfpDelivery "rfphub-backend/internal/rfp/delivery"
	rfpUsecasePkg "rfphub-backend/internal/rfp/usecase"
	vendorDelivery "rfphub-backend/internal/vendors/delivery"
	vendorUsecasePkg "rfphub-backend/internal/vendors/usecase"
)

type Handler struct {
	rfpHandler    *rfpDelivery.RfpHandler
	vendorHandler *vendorDelivery.VendorHandler
	inboxHandler  *inboxDelivery.InboxHandler
}

func NewHandler(
	rfpUc rfpUsecasePkg.RfpUsecase,
	vendorUc vendorUsecasePkg.VendorUsecase,
	syncer inboxUsecase.InboxSyncer,
	poller inboxDelivery.PollingService,
) *Handler {
	return &Handler{
		rfpHandler:    rfpDelivery.NewRfpHandler(rfpUc),
		vendorHandler: vendorDelivery.NewVendorHandler(vendorUc),
		inboxHandler:  inboxDelivery.NewInboxHandler(syncer, poller),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.rfpHandler, h.vendorHandler, h.inboxHandler)

	return r.Run(addr)
}
