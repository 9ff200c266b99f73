// Package heatload provides the heat-load estimation bounded context module.
// It owns the calculation core, report persistence and the export endpoints.
package heatload

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"heatload_backend/internal/heatload/handler"
	"heatload_backend/internal/heatload/repository"
	"heatload_backend/internal/heatload/service"
	apphttp "heatload_backend/internal/http"
	"heatload_backend/internal/pdf"
	"heatload_backend/platform/logger"
	"heatload_backend/platform/validator"
)

// Module is the heat-load bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the heat-load module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val, pdf.NewReportGenerator())

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "heatload"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts heat-load routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/heat-load")
	group.POST("", m.handler.Save)
	group.POST("/calculate", m.handler.Calculate)
	group.GET("", m.handler.List)
	group.GET("/:id", m.handler.GetByID)
	group.GET("/quote/:quoteId", m.handler.GetByQuoteID)
	group.DELETE("/:id", m.handler.Delete)

	group.GET("/:id/export/csv", m.handler.ExportCSV)
	group.GET("/:id/export/json", m.handler.ExportJSON)
	group.GET("/:id/export/pdf", m.handler.ExportPDF)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
