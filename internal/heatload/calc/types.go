// Package calc implements the DIN EN 12831-inspired heat-load estimation
// core. Everything in this package is a pure function of its inputs: no I/O,
// no hidden state, safe to re-run on every edit. Results are estimates for
// sizing heat generators, not certified energy-performance figures.
package calc

// Era classifies the construction period of the building. The buckets follow
// the German thermal-insulation ordinance generations (WSchV/EnEV).
type Era string

const (
	EraPre1978     Era = "pre1978"
	Era1978to1983  Era = "1978-1983"
	Era1984to1994  Era = "1984-1994"
	Era1995to2001  Era = "1995-2001"
	Era2002to2008  Era = "2002-2008"
	Era2009to2015  Era = "2009-2015"
	EraFrom2016    Era = "from2016"
)

// InsulationLevel describes retrofitted insulation on top of the era baseline.
type InsulationLevel string

const (
	InsulationNone    InsulationLevel = "none"
	InsulationPartial InsulationLevel = "partial"
	InsulationGood    InsulationLevel = "good"
	InsulationPremium InsulationLevel = "premium"
)

// Wall is an exterior wall segment of a room.
// UValue wins over RValue; both unset (<= 0) means presets or the hard
// fallback apply.
type Wall struct {
	Name    string
	AreaM2  float64
	UValue  float64 // W/(m²K)
	RValue  float64 // m²K/W, UValue derived as 1/RValue when set
	LengthM float64 // optional, informational
}

// Window is a glazed opening.
type Window struct {
	Name   string
	AreaM2 float64
	UValue float64
}

// Door is an exterior door.
type Door struct {
	Name   string
	AreaM2 float64
	UValue float64
}

// CeilingConfig describes the ceiling or roof surface of a room.
// A zero area means "same as the room floor area".
type CeilingConfig struct {
	AreaM2 float64
	UValue float64
}

// FloorConfig describes the floor slab of a room.
// A zero area means "same as the room floor area".
type FloorConfig struct {
	AreaM2 float64
	UValue float64
	Type   FloorType
}

// VentilationConfig is the canonical per-room ventilation shape. Legacy
// payload aliases are resolved into this struct once at the transport
// boundary; the calculators never see alias fields.
type VentilationConfig struct {
	RoomType    RoomType
	TargetTempC float64 // 0 means "use the room-type default"

	// Mechanical system. MechanicalFlowM3h wins over AirChangesPerHour.
	Mechanical             bool
	MechanicalFlowM3h      float64
	AirChangesPerHour      float64
	HeatRecoveryEfficiency float64 // fraction in [0, 1]

	// Infiltration is accounted separately and never gets a recovery credit.
	InfiltrationACH float64

	InternalGainsW float64
}

// ThermalBridge is one linear thermal bridge of a room.
type ThermalBridge struct {
	ID       string
	Name     string
	PsiValue float64 // W/(m·K)
	LengthM  float64
}

// Room is one heated space. The envelope arrays list only surfaces that
// border the outside or unheated zones.
type Room struct {
	ID             string
	Name           string
	AreaM2         float64
	HeightM        float64
	Walls          []Wall
	Windows        []Window
	Doors          []Door
	Ceiling        CeilingConfig
	Floor          FloorConfig
	Ventilation    *VentilationConfig
	ThermalBridges []ThermalBridge
}

// Volume returns the air volume of the room in m³, using the default room
// height when none is set.
func (r Room) Volume() float64 {
	area := nonNegative(r.AreaM2)
	height := positiveOr(r.HeightM, DefaultRoomHeightM)
	return area * height
}

// TargetTempC resolves the indoor design temperature of the room.
func (r Room) TargetTempC() float64 {
	if r.Ventilation != nil && r.Ventilation.TargetTempC > 0 {
		return r.Ventilation.TargetTempC
	}
	rt := RoomOther
	if r.Ventilation != nil && r.Ventilation.RoomType != "" {
		rt = r.Ventilation.RoomType
	}
	target, _ := RoomTypeDefaults(rt)
	return target
}

// Floor is an ordered collection of rooms on one storey.
type Floor struct {
	ID    string
	Name  string
	Rooms []Room
}

// HeatPumpConfig holds heat-pump sizing settings.
type HeatPumpConfig struct {
	// BivalenceTempC, when set, clamps the effective design outdoor
	// temperature: the heat pump is never sized below this point, the
	// auxiliary heater covers the rest.
	BivalenceTempC *float64
}

// PVConfig holds photovoltaic settings carried through for reporting.
type PVConfig struct {
	PeakPowerKWp     float64
	SupportsHeatPump bool
}

// BuildingMetadata is the per-project building record.
type BuildingMetadata struct {
	ConstructionYear int
	Era              Era
	Insulation       InsulationLevel
	FloorCount       int
	Residents        int

	// DesignOutdoorTempC is the auto-fetched climate value.
	// ManualDesignOutdoorTempC, when present, always wins.
	DesignOutdoorTempC       float64
	ManualDesignOutdoorTempC *float64

	// DHWLitersPerPersonPerDay sizes the continuous hot-water allowance;
	// zero falls back to DefaultDHWLitersPerPersonPerDay.
	DHWLitersPerPersonPerDay float64

	AirtightnessN50 float64
	HeatPump        *HeatPumpConfig
	PV              *PVConfig
}

// DesignOutdoorTemp resolves the raw outdoor design temperature honoring the
// manual override. The bivalence clamp is applied separately in the building
// aggregation.
func (b BuildingMetadata) DesignOutdoorTemp() float64 {
	if b.ManualDesignOutdoorTempC != nil {
		return *b.ManualDesignOutdoorTempC
	}
	if b.DesignOutdoorTempC != 0 {
		return b.DesignOutdoorTempC
	}
	return DefaultDesignOutdoorTempC
}

// ProjectMeta carries project-wide calculation settings.
type ProjectMeta struct {
	// ThermalBridgeFactor replaces the default 0.05 allowance when set.
	ThermalBridgeFactor *float64
	// IntermittentFactor inflates loads of intermittently heated rooms.
	// Values below 1 are coerced to 1.
	IntermittentFactor float64
}

// BridgeFactor resolves the flat thermal-bridge allowance, floored at 0.
func (m ProjectMeta) BridgeFactor() float64 {
	if m.ThermalBridgeFactor == nil {
		return DefaultThermalBridgeFactor
	}
	return nonNegative(*m.ThermalBridgeFactor)
}

// Intermittent resolves the intermittent-heating multiplier (>= 1).
func (m ProjectMeta) Intermittent() float64 {
	if m.IntermittentFactor < 1 {
		return DefaultIntermittentFactor
	}
	return m.IntermittentFactor
}

// SurfaceKind labels a transmission surface for reporting.
type SurfaceKind string

const (
	SurfaceWall    SurfaceKind = "wall"
	SurfaceWindow  SurfaceKind = "window"
	SurfaceDoor    SurfaceKind = "door"
	SurfaceCeiling SurfaceKind = "ceiling"
	SurfaceFloor   SurfaceKind = "floor"
)

// SurfaceLoss is the transmission loss of one envelope surface.
type SurfaceLoss struct {
	Label   string      `json:"label"`
	Kind    SurfaceKind `json:"kind"`
	AreaM2  float64     `json:"areaM2"`
	UValue  float64     `json:"uValue"`
	DeltaTK float64     `json:"deltaTK"`
	LossW   float64     `json:"lossW"`
}

// BridgeLoss is the loss of one explicit linear thermal bridge.
type BridgeLoss struct {
	Name     string  `json:"name"`
	PsiValue float64 `json:"psiValue"`
	LengthM  float64 `json:"lengthM"`
	LossW    float64 `json:"lossW"`
}

// RoomResult is the DIN-section breakdown of one room in Watts.
type RoomResult struct {
	RoomID   string  `json:"roomId"`
	RoomName string  `json:"roomName"`
	AreaM2   float64 `json:"areaM2"`

	IndoorTempC  float64 `json:"indoorTempC"`
	OutdoorTempC float64 `json:"outdoorTempC"`
	DeltaTK      float64 `json:"deltaTK"`

	Surfaces      []SurfaceLoss `json:"surfaces"`
	TransmissionW float64       `json:"transmissionW"`

	Bridges         []BridgeLoss `json:"bridges,omitempty"`
	BridgeAllowance bool         `json:"bridgeAllowance"`
	ThermalBridgeW  float64      `json:"thermalBridgeW"`

	VentilationW  float64 `json:"ventilationW"`
	InfiltrationW float64 `json:"infiltrationW"`

	InternalGainsW     float64 `json:"internalGainsW"`
	IntermittentFactor float64 `json:"intermittentFactor"`

	TotalW float64 `json:"totalW"`
}

// RoomSummary is the simple-summary view of one room in kW: a flat safety
// margin instead of the intermittent factor. Kept as a separate model on
// purpose; see the package documentation in room.go.
type RoomSummary struct {
	RoomID          string  `json:"roomId"`
	RoomName        string  `json:"roomName"`
	AreaM2          float64 `json:"areaM2"`
	TransmissionKW  float64 `json:"transmissionKW"`
	VentilationKW   float64 `json:"ventilationKW"`
	ThermalBridgeKW float64 `json:"thermalBridgeKW"`
	SafetyMarginKW  float64 `json:"safetyMarginKW"`
	TotalKW         float64 `json:"totalKW"`
}

// DinTotals is the building-wide rollup of the DIN sections in Watts.
type DinTotals struct {
	TransmissionW  float64 `json:"transmissionW"`
	ThermalBridgeW float64 `json:"thermalBridgeW"`
	VentilationW   float64 `json:"ventilationW"`
	TotalW         float64 `json:"totalW"`
}

// BuildingResult is the complete calculation output.
type BuildingResult struct {
	Rooms   []RoomResult  `json:"rooms"`
	Summary []RoomSummary `json:"summary"`

	DinTotals DinTotals `json:"dinTotals"`

	HeatingLoadKW  float64 `json:"heatingLoadKW"`
	DHWAllowanceKW float64 `json:"dhwAllowanceKW"`
	TotalKW        float64 `json:"totalKW"`

	// DesignOutdoorTempC is the effective value used for every room, after
	// the manual override and the bivalence clamp.
	DesignOutdoorTempC float64 `json:"designOutdoorTempC"`
	BivalenceApplied   bool    `json:"bivalenceApplied"`

	HeatedAreaM2      float64 `json:"heatedAreaM2"`
	SpecificLoadWPerM2 float64 `json:"specificLoadWPerM2"`
}
