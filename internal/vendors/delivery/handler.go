package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rfphub-backend/internal/vendors/usecase"
)

// VendorHandler handles vendor CRUD HTTP requests
type VendorHandler struct {
	vendorUsecase usecase.VendorUsecase
}

func NewVendorHandler(vendorUsecase usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{vendorUsecase: vendorUsecase}
}

// VendorRequest represents the request body for creating or updating a vendor
type VendorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// List returns all vendors
// GET /api/vendors
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendorUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// Create registers a new vendor
// POST /api/vendors
func (h *VendorHandler) Create(c *gin.Context) {
	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}

	vendor, err := h.vendorUsecase.Create(req.Name, req.Email, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// Update modifies an existing vendor
// PUT /api/vendors/:id
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorUsecase.Update(uint(id), req.Name, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, usecase.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// Delete removes a vendor
// DELETE /api/vendors/:id
func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.vendorUsecase.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
