package calc

// Physical constants for air at design conditions.
const (
	// AirDensity is the density of air, kg/m³.
	AirDensity = 1.204
	// AirHeatCapacity is the specific heat capacity of air, J/(kg·K).
	AirHeatCapacity = 1005.0
)

// Fallback U-values, W/(m²K), used when a surface has no explicit value,
// no derivable R-value and no preset match. These are deliberately on the
// conservative side so an underspecified room never computes too small.
const (
	FallbackWallU    = 1.10
	FallbackWindowU  = 0.95
	FallbackDoorU    = 1.50
	FallbackCeilingU = 0.18
)

// Default policy factors.
const (
	// DefaultThermalBridgeFactor is the flat allowance applied to the
	// transmission sum when no explicit bridge list exists.
	DefaultThermalBridgeFactor = 0.05
	// SafetyMarginFactor is the flat margin of the simple summary path.
	SafetyMarginFactor = 0.10
	// DefaultIntermittentFactor is the multiplier for continuously heated rooms.
	DefaultIntermittentFactor = 1.0
	// MaxHeatRecoveryEfficiency caps stored heat-recovery efficiencies.
	MaxHeatRecoveryEfficiency = 0.95
)

// Domestic hot water.
const (
	// DHWEnergyPerLiterKWh is the energy to heat one liter of tap water
	// from supply to storage temperature, kWh/L.
	DHWEnergyPerLiterKWh = 0.046
	// DefaultDHWLitersPerPersonPerDay is the assumed daily draw per resident.
	DefaultDHWLitersPerPersonPerDay = 40.0
)

// DefaultDesignOutdoorTempC is the design outdoor temperature used when the
// project has neither a fetched nor a manually entered value. -12 °C covers
// most of the German lowlands.
const DefaultDesignOutdoorTempC = -12.0

// DefaultIndoorTempC is the target temperature for rooms without a
// room-type default.
const DefaultIndoorTempC = 20.0

// DefaultRoomHeightM is assumed when a room has no usable height.
const DefaultRoomHeightM = 2.5

// FloorType describes what is below the floor slab; it selects the
// fallback U-value for floors.
type FloorType string

const (
	FloorOnGround      FloorType = "ground"
	FloorAboveBasement FloorType = "basement"
	FloorAboveUnheated FloorType = "unheated"
	FloorAboveOutdoor  FloorType = "outdoor"
)

var floorFallbackU = map[FloorType]float64{
	FloorOnGround:      0.35,
	FloorAboveBasement: 0.30,
	FloorAboveUnheated: 0.25,
	FloorAboveOutdoor:  0.20,
}

// FallbackFloorU returns the fallback floor U-value for a floor type.
// Unknown types get the on-ground value.
func FallbackFloorU(ft FloorType) float64 {
	if u, ok := floorFallbackU[ft]; ok {
		return u
	}
	return floorFallbackU[FloorOnGround]
}

// RoomType drives the default target temperature and air-change rate.
type RoomType string

const (
	RoomLiving   RoomType = "living"
	RoomBedroom  RoomType = "bedroom"
	RoomKitchen  RoomType = "kitchen"
	RoomBathroom RoomType = "bathroom"
	RoomWC       RoomType = "wc"
	RoomHallway  RoomType = "hallway"
	RoomOffice   RoomType = "office"
	RoomUtility  RoomType = "utility"
	RoomOther    RoomType = "other"
)

type roomDefaults struct {
	targetTempC float64
	ach         float64
}

// Per-room-type design values, loosely following the DIN EN 12831 room
// temperature table and minimum hygienic air-change rates.
var roomTypeDefaults = map[RoomType]roomDefaults{
	RoomLiving:   {targetTempC: 20, ach: 0.5},
	RoomBedroom:  {targetTempC: 18, ach: 0.5},
	RoomKitchen:  {targetTempC: 20, ach: 1.0},
	RoomBathroom: {targetTempC: 24, ach: 1.5},
	RoomWC:       {targetTempC: 20, ach: 1.0},
	RoomHallway:  {targetTempC: 15, ach: 0.5},
	RoomOffice:   {targetTempC: 20, ach: 0.5},
	RoomUtility:  {targetTempC: 15, ach: 0.5},
	RoomOther:    {targetTempC: DefaultIndoorTempC, ach: 0.5},
}

// RoomTypeDefaults returns the default target temperature (°C) and
// air-change rate (1/h) for a room type.
func RoomTypeDefaults(rt RoomType) (targetTempC, ach float64) {
	if d, ok := roomTypeDefaults[rt]; ok {
		return d.targetTempC, d.ach
	}
	d := roomTypeDefaults[RoomOther]
	return d.targetTempC, d.ach
}
