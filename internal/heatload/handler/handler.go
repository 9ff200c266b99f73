package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"heatload_backend/internal/heatload/service"
	"heatload_backend/internal/heatload/transport"
	"heatload_backend/internal/pdf"
	"heatload_backend/platform/httpkit"
	"heatload_backend/platform/validator"
)

// Handler handles HTTP requests for heat-load reports.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	pdf *pdf.ReportGenerator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid report ID"
)

// New creates a new heat-load handler.
func New(svc *service.Service, val *validator.Validator, gen *pdf.ReportGenerator) *Handler {
	return &Handler{svc: svc, val: val, pdf: gen}
}

// Save computes and stores a heat-load report for a quote.
// POST /api/v1/heat-load
func (h *Handler) Save(c *gin.Context) {
	var req transport.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Save(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Calculate runs the calculation without persisting anything.
// POST /api/v1/heat-load/calculate
func (h *Handler) Calculate(c *gin.Context) {
	var req transport.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Calculate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetByID retrieves a stored report.
// GET /api/v1/heat-load/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), identity.UserID(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetByQuoteID retrieves the report attached to a quote.
// GET /api/v1/heat-load/quote/:quoteId
func (h *Handler) GetByQuoteID(c *gin.Context) {
	quoteID := c.Param("quoteId")
	if quoteID == "" {
		httpkit.Error(c, http.StatusBadRequest, "quote ID is required", nil)
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.GetByQuoteID(c.Request.Context(), identity.UserID(), quoteID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// List retrieves all reports of the authenticated user.
// GET /api/v1/heat-load
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.List(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Delete removes a stored report.
// DELETE /api/v1/heat-load/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), identity.UserID(), id); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}
