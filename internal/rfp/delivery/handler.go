package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rfphub-backend/internal/rfp/usecase"
)

// RfpHandler handles RFP-related HTTP requests
type RfpHandler struct {
	rfpUsecase usecase.RfpUsecase
}

func NewRfpHandler(rfpUsecase usecase.RfpUsecase) *RfpHandler {
	return &RfpHandler{rfpUsecase: rfpUsecase}
}

// CreateFromTextRequest represents the request body for AI RFP creation
type CreateFromTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// SendRequest represents the request body for sending an RFP to vendors
type SendRequest struct {
	VendorIDs []uint `json:"vendorIds" binding:"required"`
}

// CreateFromText creates an RFP from a free-form description
// POST /api/rfps/from-text
func (h *RfpHandler) CreateFromText(c *gin.Context) {
	var req CreateFromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	rfp, err := h.rfpUsecase.CreateFromText(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rfp)
}

// List returns all RFPs
// GET /api/rfps
func (h *RfpHandler) List(c *gin.Context) {
	rfps, err := h.rfpUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rfps)
}

// GetByID returns one RFP with line items and proposals
// GET /api/rfps/:id
func (h *RfpHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rfp, err := h.rfpUsecase.GetByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrRfpNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "RFP not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rfp)
}

// Send emails the RFP to the selected vendors
// POST /api/rfps/:id/send
func (h *RfpHandler) Send(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.VendorIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendorIds array is required"})
		return
	}

	if err := h.rfpUsecase.SendToVendors(id, req.VendorIDs); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRfpNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "RFP not found"})
		case errors.Is(err, usecase.ErrNoVendors):
			c.JSON(http.StatusNotFound, gin.H{"error": "No vendors found with the provided IDs"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send RFP: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Compare runs AI comparison over the RFP's proposals
// GET /api/rfps/:id/compare
func (h *RfpHandler) Compare(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comparison, err := h.rfpUsecase.Compare(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRfpNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "RFP not found"})
		case errors.Is(err, usecase.ErrNoProposals):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No proposals to compare"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// Delete removes an RFP and everything attached to it
// DELETE /api/rfps/:id
func (h *RfpHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.rfpUsecase.Delete(id); err != nil {
		if errors.Is(err, usecase.ErrRfpNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "RFP not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
