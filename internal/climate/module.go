package climate

import (
	"github.com/redis/go-redis/v9"

	apphttp "heatload_backend/internal/http"
	"heatload_backend/platform/config"
	"heatload_backend/platform/logger"
)

// Module wires the climate lookup HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule creates the climate module. cache may be nil when Redis is not
// configured.
func NewModule(cfg config.ClimateConfig, cache *redis.Client, log *logger.Logger) *Module {
	svc := NewService(cfg, cache, log)
	h := NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "climate"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/climate")
	group.GET("/design-temperature", m.handler.DesignTemperature)
}

var _ apphttp.Module = (*Module)(nil)
