package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"heatload_backend/internal/heatload/calc"
	"heatload_backend/internal/heatload/repository"
	"heatload_backend/internal/heatload/transport"
	"heatload_backend/platform/apperr"
	"heatload_backend/platform/logger"
)

// fakeRepo is an in-memory Repository keyed by (user, quote).
type fakeRepo struct {
	reports map[string]repository.Report
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reports: make(map[string]repository.Report)}
}

func (f *fakeRepo) key(userID uuid.UUID, quoteID string) string {
	return userID.String() + "/" + quoteID
}

func (f *fakeRepo) Upsert(_ context.Context, params repository.UpsertParams) (repository.Report, error) {
	k := f.key(params.UserID, params.QuoteID)
	existing, ok := f.reports[k]
	now := time.Now()
	report := repository.Report{
		ID:          uuid.New(),
		UserID:      params.UserID,
		QuoteID:     params.QuoteID,
		ProjectName: params.ProjectName,
		Input:       params.Input,
		Results:     params.Results,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ok {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
	}
	f.reports[k] = report
	return report, nil
}

func (f *fakeRepo) GetByID(_ context.Context, userID, id uuid.UUID) (repository.Report, error) {
	for _, r := range f.reports {
		if r.ID == id && r.UserID == userID {
			return r, nil
		}
	}
	return repository.Report{}, apperr.NotFound("heat-load report not found")
}

func (f *fakeRepo) GetByQuoteID(_ context.Context, userID uuid.UUID, quoteID string) (repository.Report, error) {
	if r, ok := f.reports[f.key(userID, quoteID)]; ok {
		return r, nil
	}
	return repository.Report{}, apperr.NotFound("heat-load report not found")
}

func (f *fakeRepo) List(_ context.Context, userID uuid.UUID) ([]repository.Report, error) {
	var out []repository.Report
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for k, r := range f.reports {
		if r.ID == id && r.UserID == userID {
			delete(f.reports, k)
			return nil
		}
	}
	return apperr.NotFound("heat-load report not found")
}

func flex(v float64) *transport.FlexNumber {
	f := transport.FlexNumber(v)
	return &f
}

func saveRequest() transport.SaveRequest {
	return transport.SaveRequest{
		QuoteID:     "Q-2024-001",
		ProjectName: "EFH Musterstraße",
		Building: transport.BuildingPayload{
			Era:               "pre1978",
			Residents:         4,
			DesignOutdoorTemp: flex(-12),
		},
		Floors: []transport.FloorPayload{{
			ID:   "f1",
			Name: "EG",
			Rooms: []transport.RoomPayload{{
				ID:     "r1",
				Name:   "Wohnzimmer",
				AreaM2: 24,
				Walls:  []transport.WallPayload{{AreaM2: 12, UValue: 1.3}},
				Ventilation: &transport.VentilationPayload{
					RoomType:          "living",
					AirChangesPerHour: flex(0.5),
				},
			}},
		}},
	}
}

func newService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return New(repo, logger.New("test")), repo
}

func TestSave_RecomputesResultsServerSide(t *testing.T) {
	svc, repo := newService()
	userID := uuid.New()

	resp, err := svc.Save(context.Background(), userID, saveRequest())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if resp.Results.HeatingLoadKW <= 0 {
		t.Fatalf("expected positive heating load, got %v", resp.Results.HeatingLoadKW)
	}
	if resp.Results.DHWAllowanceKW <= 0 {
		t.Fatal("expected DHW allowance for 4 residents")
	}

	stored := repo.reports[repo.key(userID, "Q-2024-001")]
	var persisted calc.BuildingResult
	if err := json.Unmarshal(stored.Results, &persisted); err != nil {
		t.Fatalf("decode stored results: %v", err)
	}
	if persisted.TotalKW != resp.Results.TotalKW {
		t.Fatalf("stored results differ from response: %v vs %v", persisted.TotalKW, resp.Results.TotalKW)
	}
}

func TestSave_SecondSaveReplacesFirst(t *testing.T) {
	svc, repo := newService()
	userID := uuid.New()

	first, err := svc.Save(context.Background(), userID, saveRequest())
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	req := saveRequest()
	req.ProjectName = "EFH Musterstraße v2"
	second, err := svc.Save(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected upsert to keep the report ID, got %s then %s", first.ID, second.ID)
	}
	if len(repo.reports) != 1 {
		t.Fatalf("expected exactly one stored report, got %d", len(repo.reports))
	}
	if second.ProjectName != "EFH Musterstraße v2" {
		t.Fatalf("expected updated project name, got %q", second.ProjectName)
	}
}

func TestGetByID_RoundTrip(t *testing.T) {
	svc, _ := newService()
	userID := uuid.New()

	saved, err := svc.Save(context.Background(), userID, saveRequest())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.GetByID(context.Background(), userID, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Results.TotalKW != saved.Results.TotalKW {
		t.Fatalf("expected identical results after reload, got %v vs %v", got.Results.TotalKW, saved.Results.TotalKW)
	}
}

func TestGetByID_OtherUserCannotRead(t *testing.T) {
	svc, _ := newService()
	owner := uuid.New()

	saved, err := svc.Save(context.Background(), owner, saveRequest())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err = svc.GetByID(context.Background(), uuid.New(), saved.ID)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found for foreign user, got %v", err)
	}
}

func TestCalculate_DoesNotPersist(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Calculate(context.Background(), transport.CalculateRequest{
		Building: saveRequest().Building,
		Floors:   saveRequest().Floors,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if resp.Results.HeatingLoadKW <= 0 {
		t.Fatalf("expected positive heating load, got %v", resp.Results.HeatingLoadKW)
	}
	if len(repo.reports) != 0 {
		t.Fatalf("calculate must not store anything, got %d reports", len(repo.reports))
	}
}

func TestSave_PresetsFillMissingUValues(t *testing.T) {
	svc, _ := newService()
	userID := uuid.New()

	req := saveRequest()
	req.Floors[0].Rooms[0].Walls = []transport.WallPayload{{Name: "North", AreaM2: 10}}
	req.Settings.ApplyPresets = true

	resp, err := svc.Save(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Pre-1978, no insulation: wall preset 1.30 instead of the hard fallback.
	room := resp.Results.Rooms[0]
	var wallU float64
	for _, s := range room.Surfaces {
		if s.Kind == calc.SurfaceWall {
			wallU = s.UValue
		}
	}
	if wallU != 1.30 {
		t.Fatalf("expected preset wall U 1.30, got %v", wallU)
	}
}
