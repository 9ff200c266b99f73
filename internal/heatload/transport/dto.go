package transport

import (
	"time"

	"github.com/google/uuid"

	"heatload_backend/internal/heatload/calc"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// WallPayload is one exterior wall segment as sent by the wizard.
type WallPayload struct {
	Name    string     `json:"name" validate:"max=200"`
	AreaM2  FlexNumber `json:"area"`
	UValue  FlexNumber `json:"uValue"`
	RValue  FlexNumber `json:"rValue"`
	LengthM FlexNumber `json:"length"`
}

// WindowPayload is one glazed opening.
type WindowPayload struct {
	Name   string     `json:"name" validate:"max=200"`
	AreaM2 FlexNumber `json:"area"`
	UValue FlexNumber `json:"uValue"`
}

// DoorPayload is one exterior door.
type DoorPayload struct {
	Name   string     `json:"name" validate:"max=200"`
	AreaM2 FlexNumber `json:"area"`
	UValue FlexNumber `json:"uValue"`
}

// CeilingPayload describes the ceiling or roof surface.
type CeilingPayload struct {
	AreaM2 FlexNumber `json:"area"`
	UValue FlexNumber `json:"uValue"`
}

// FloorSlabPayload describes the floor slab and what it borders.
type FloorSlabPayload struct {
	AreaM2 FlexNumber `json:"area"`
	UValue FlexNumber `json:"uValue"`
	Type   string     `json:"type" validate:"omitempty,oneof=ground basement unheated outdoor"`
}

// VentilationPayload carries the per-room ventilation settings. Several
// generations of the wizard used different field names for the same value;
// every historical alias is accepted here and resolved exactly once in
// normalize.go. New clients should send only the first-listed name.
type VentilationPayload struct {
	RoomType    string     `json:"roomType" validate:"omitempty,oneof=living bedroom kitchen bathroom wc hallway office utility other"`
	TargetTempC FlexNumber `json:"targetTemp"`

	Mechanical        bool        `json:"mechanicalVentilation"`
	MechanicalFlowM3h *FlexNumber `json:"volumetricFlow"`

	AirChangesPerHour *FlexNumber `json:"airChangesPerHour"`
	ACH               *FlexNumber `json:"ach"`
	AirExchangeRate   *FlexNumber `json:"airExchangeRate"`

	InfiltrationACH *FlexNumber `json:"infiltrationACH"`

	HeatRecoveryEfficiency *FlexNumber `json:"heatRecoveryEfficiency"`
	HeatRecovery           *FlexNumber `json:"heatRecovery"`
	HRVEfficiency          *FlexNumber `json:"hrvEfficiency"`
	RecoveryRate           *FlexNumber `json:"recoveryRate"`

	InternalGainsW FlexNumber `json:"internalGains"`
}

// ThermalBridgePayload is one explicit linear thermal bridge.
type ThermalBridgePayload struct {
	ID       string     `json:"id" validate:"max=100"`
	Name     string     `json:"name" validate:"max=200"`
	PsiValue FlexNumber `json:"psiValue"`
	LengthM  FlexNumber `json:"length"`
}

// RoomPayload is one heated space.
type RoomPayload struct {
	ID             string                 `json:"id" validate:"max=100"`
	Name           string                 `json:"name" validate:"max=200"`
	AreaM2         FlexNumber             `json:"area"`
	HeightM        FlexNumber             `json:"height"`
	Walls          []WallPayload          `json:"walls" validate:"omitempty,dive"`
	Windows        []WindowPayload        `json:"windows" validate:"omitempty,dive"`
	Doors          []DoorPayload          `json:"doors" validate:"omitempty,dive"`
	Ceiling        *CeilingPayload        `json:"ceiling"`
	Floor          *FloorSlabPayload      `json:"floor"`
	Ventilation    *VentilationPayload    `json:"ventilation"`
	ThermalBridges []ThermalBridgePayload `json:"thermalBridges" validate:"omitempty,dive"`
}

// FloorPayload is one storey of the building.
type FloorPayload struct {
	ID    string        `json:"id" validate:"max=100"`
	Name  string        `json:"name" validate:"max=200"`
	Rooms []RoomPayload `json:"rooms" validate:"omitempty,dive"`
}

// HeatPumpPayload carries heat-pump sizing settings.
type HeatPumpPayload struct {
	BivalenceTempC *FlexNumber `json:"bivalenceTemp"`
}

// PVPayload carries photovoltaic settings, reported but not calculated on.
type PVPayload struct {
	PeakPowerKWp     FlexNumber `json:"peakPower"`
	SupportsHeatPump bool       `json:"supportsHeatPump"`
}

// BuildingPayload is the per-project building record.
type BuildingPayload struct {
	ConstructionYear int    `json:"constructionYear" validate:"omitempty,min=1500,max=2100"`
	Era              string `json:"era" validate:"omitempty,oneof=pre1978 1978-1983 1984-1994 1995-2001 2002-2008 2009-2015 from2016"`
	Insulation       string `json:"insulation" validate:"omitempty,oneof=none partial good premium"`
	FloorCount       int    `json:"floorCount" validate:"omitempty,min=0,max=50"`
	Residents        int    `json:"residents" validate:"omitempty,min=0,max=100"`

	DesignOutdoorTemp       *FlexNumber `json:"designOutdoorTemp"`
	ManualDesignOutdoorTemp *FlexNumber `json:"manualDesignOutdoorTemp"`

	DHWLitersPerPersonPerDay FlexNumber `json:"dhwLitersPerPersonPerDay"`

	AirtightnessN50 FlexNumber       `json:"airtightnessN50"`
	HeatPump        *HeatPumpPayload `json:"heatPump"`
	PV              *PVPayload       `json:"pv"`
}

// SettingsPayload carries project-wide calculation settings.
type SettingsPayload struct {
	ThermalBridgeFactor *FlexNumber `json:"thermalBridgeFactor"`
	IntermittentFactor  FlexNumber  `json:"intermittentFactor"`
	ApplyPresets        bool        `json:"applyPresets"`
	ForcePresets        bool        `json:"forcePresets"`
}

// CalculateRequest is the body of the stateless calculation endpoint.
type CalculateRequest struct {
	Building BuildingPayload `json:"building"`
	Floors   []FloorPayload  `json:"floors" validate:"omitempty,dive"`
	Settings SettingsPayload `json:"settings"`
}

// SaveRequest is the body of the save endpoint. Reports are upserted by
// (user, quoteId); results are always recomputed server-side on save.
type SaveRequest struct {
	QuoteID     string          `json:"quoteId" validate:"required,min=1,max=200"`
	ProjectName string          `json:"projectName" validate:"max=500"`
	Building    BuildingPayload `json:"building"`
	Floors      []FloorPayload  `json:"floors" validate:"omitempty,dive"`
	Settings    SettingsPayload `json:"settings"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// ReportResponse is a stored heat-load report with its computed results.
type ReportResponse struct {
	ID          uuid.UUID           `json:"id"`
	QuoteID     string              `json:"quoteId"`
	ProjectName string              `json:"projectName"`
	Results     calc.BuildingResult `json:"results"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ReportListItem is the list view of a stored report.
type ReportListItem struct {
	ID          uuid.UUID `json:"id"`
	QuoteID     string    `json:"quoteId"`
	ProjectName string    `json:"projectName"`
	TotalKW     float64   `json:"totalKW"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReportListResponse is the list endpoint response.
type ReportListResponse struct {
	Items []ReportListItem `json:"items"`
	Total int              `json:"total"`
}

// CalculationResponse is the stateless calculation response.
type CalculationResponse struct {
	Results calc.BuildingResult `json:"results"`
}
