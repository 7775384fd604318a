package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	inboxDelivery "rfphub-backend/internal/inbox/delivery"
	rfpDelivery "rfphub-backend/internal/rfp/delivery"
	vendorDelivery "rfphub-backend/internal/vendors/delivery"
)

func SetupRoutes(
	r *gin.Engine,
	rfpHandler *rfpDelivery.RfpHandler,
	vendorHandler *vendorDelivery.VendorHandler,
	inboxHandler *inboxDelivery.InboxHandler,
) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// RFP routes
		rfps := api.Group("/rfps")
		{
			rfps.POST("/from-text", rfpHandler.CreateFromText)
			rfps.GET("", rfpHandler.List)
			rfps.GET("/:id", rfpHandler.GetByID)
			rfps.POST("/:id/send", rfpHandler.Send)
			rfps.GET("/:id/compare", rfpHandler.Compare)
			rfps.DELETE("/:id", rfpHandler.Delete)
		}

		// Vendor routes
		vendors := api.Group("/vendors")
		{
			vendors.GET("", vendorHandler.List)
			vendors.POST("", vendorHandler.Create)
			vendors.PUT("/:id", vendorHandler.Update)
			vendors.DELETE("/:id", vendorHandler.Delete)
		}

		// Email polling routes
		email := api.Group("/email")
		{
			email.POST("/poll", inboxHandler.Poll)
			email.POST("/polling/start", inboxHandler.StartPolling)
			email.POST("/polling/stop", inboxHandler.StopPolling)
			email.GET("/polling/status", inboxHandler.PollingStatus)
		}
	}
}
