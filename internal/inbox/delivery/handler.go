package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rfphub-backend/internal/inbox/usecase"
)

// PollingService is the scheduler lifecycle surface exposed over HTTP.
type PollingService interface {
	Start()
	Stop()
	IsRunning() bool
}

// InboxHandler handles manual polling and scheduler lifecycle requests
type InboxHandler struct {
	syncer usecase.InboxSyncer
	poller PollingService
}

func NewInboxHandler(syncer usecase.InboxSyncer, poller PollingService) *InboxHandler {
	return &InboxHandler{
		syncer: syncer,
		poller: poller,
	}
}

// Poll runs one reconciliation cycle on demand
// POST /api/email/poll
func (h *InboxHandler) Poll(c *gin.Context) {
	result, err := h.syncer.ReconcileOnce(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to poll inbox: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// StartPolling starts the background scheduler
// POST /api/email/polling/start
func (h *InboxHandler) StartPolling(c *gin.Context) {
	h.poller.Start()
	c.JSON(http.StatusOK, gin.H{
		"status":  "started",
		"message": "Email polling service started",
	})
}

// StopPolling stops the background scheduler
// POST /api/email/polling/stop
func (h *InboxHandler) StopPolling(c *gin.Context) {
	h.poller.Stop()
	c.JSON(http.StatusOK, gin.H{
		"status":  "stopped",
		"message": "Email polling service stopped",
	})
}

// PollingStatus reports the scheduler state
// GET /api/email/polling/status
func (h *InboxHandler) PollingStatus(c *gin.Context) {
	isRunning := h.poller.IsRunning()
	message := "Polling service is stopped"
	if isRunning {
		message = "Polling service is running"
	}
	c.JSON(http.StatusOK, gin.H{
		"isRunning": isRunning,
		"message":   message,
	})
}
