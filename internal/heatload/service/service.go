package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"heatload_backend/internal/heatload/calc"
	"heatload_backend/internal/heatload/repository"
	"heatload_backend/internal/heatload/transport"
	"heatload_backend/platform/logger"
)

// Service provides business logic for heat-load reports.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new heat-load service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// storedInput is the shape persisted in the input JSONB column: the payload
// as submitted, so the wizard can reload a saved project.
type storedInput struct {
	Building transport.BuildingPayload `json:"building"`
	Floors   []transport.FloorPayload  `json:"floors"`
	Settings transport.SettingsPayload `json:"settings"`
}

// Calculate runs the stateless calculation without touching storage.
func (s *Service) Calculate(ctx context.Context, req transport.CalculateRequest) (transport.CalculationResponse, error) {
	results := run(transport.NormalizeCalculateRequest(req))
	return transport.CalculationResponse{Results: results}, nil
}

// Save computes and stores a report. Results are always recomputed here;
// client-supplied numbers are never persisted. Saving twice for the same
// quote replaces the earlier report.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, req transport.SaveRequest) (transport.ReportResponse, error) {
	results := run(transport.NormalizeSaveRequest(req))

	inputJSON, err := json.Marshal(storedInput{
		Building: req.Building,
		Floors:   req.Floors,
		Settings: req.Settings,
	})
	if err != nil {
		return transport.ReportResponse{}, fmt.Errorf("marshal report input: %w", err)
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return transport.ReportResponse{}, fmt.Errorf("marshal report results: %w", err)
	}

	report, err := s.repo.Upsert(ctx, repository.UpsertParams{
		UserID:      userID,
		QuoteID:     req.QuoteID,
		ProjectName: req.ProjectName,
		Input:       inputJSON,
		Results:     resultsJSON,
	})
	if err != nil {
		return transport.ReportResponse{}, err
	}

	s.log.Info("heat-load report saved",
		"id", report.ID,
		"quoteId", report.QuoteID,
		"totalKW", results.TotalKW,
	)

	return toResponse(report, results), nil
}

// GetByID retrieves a stored report with its computed results.
func (s *Service) GetByID(ctx context.Context, userID, id uuid.UUID) (transport.ReportResponse, error) {
	report, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return transport.ReportResponse{}, err
	}
	results, err := decodeResults(report)
	if err != nil {
		return transport.ReportResponse{}, err
	}
	return toResponse(report, results), nil
}

// GetByQuoteID retrieves the report attached to a quote.
func (s *Service) GetByQuoteID(ctx context.Context, userID uuid.UUID, quoteID string) (transport.ReportResponse, error) {
	report, err := s.repo.GetByQuoteID(ctx, userID, quoteID)
	if err != nil {
		return transport.ReportResponse{}, err
	}
	results, err := decodeResults(report)
	if err != nil {
		return transport.ReportResponse{}, err
	}
	return toResponse(report, results), nil
}

// List retrieves all reports of a user, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (transport.ReportListResponse, error) {
	reports, err := s.repo.List(ctx, userID)
	if err != nil {
		return transport.ReportListResponse{}, err
	}

	items := make([]transport.ReportListItem, 0, len(reports))
	for _, report := range reports {
		results, err := decodeResults(report)
		if err != nil {
			return transport.ReportListResponse{}, err
		}
		items = append(items, transport.ReportListItem{
			ID:          report.ID,
			QuoteID:     report.QuoteID,
			ProjectName: report.ProjectName,
			TotalKW:     results.TotalKW,
			CreatedAt:   report.CreatedAt,
			UpdatedAt:   report.UpdatedAt,
		})
	}

	return transport.ReportListResponse{Items: items, Total: len(items)}, nil
}

// Delete removes a stored report.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.Info("heat-load report deleted", "id", id)
	return nil
}

// run applies the optional preset fill and executes the calculation core.
func run(input transport.NormalizedInput) calc.BuildingResult {
	floors := input.Floors
	if input.ApplyPresets {
		for i := range floors {
			for j := range floors[i].Rooms {
				floors[i].Rooms[j] = calc.ApplyPresets(
					floors[i].Rooms[j],
					input.Era,
					input.Insulation,
					calc.PresetOptions{Force: input.ForcePresets},
				)
			}
		}
	}
	return calc.CalculateBuilding(input.Building, floors, input.Meta)
}

func decodeResults(report repository.Report) (calc.BuildingResult, error) {
	var results calc.BuildingResult
	if err := json.Unmarshal(report.Results, &results); err != nil {
		return calc.BuildingResult{}, fmt.Errorf("decode stored report results: %w", err)
	}
	return results, nil
}

func toResponse(report repository.Report, results calc.BuildingResult) transport.ReportResponse {
	return transport.ReportResponse{
		ID:          report.ID,
		QuoteID:     report.QuoteID,
		ProjectName: report.ProjectName,
		Results:     results,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}
}
