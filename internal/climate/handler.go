package climate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heatload_backend/platform/httpkit"
)

// Handler exposes the climate lookup endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// DesignTemperature handles GET /api/v1/climate/design-temperature?q=...
func (h *Handler) DesignTemperature(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' is required (min 3 chars)", nil)
		return
	}

	result, err := h.svc.DesignTemperature(c.Request.Context(), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
