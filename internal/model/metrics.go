package model

// MonthsUnreachable is the sentinel for a freedom target that compound
// growth can never reach (zero growth, zero income, or zero MRR).
const MonthsUnreachable = -1

// HorizonMonths caps months-to-freedom at a 10-year practical horizon.
const HorizonMonths = 120

// Metrics is one referentially-consistent set of derived values.
// Every field is recomputed from the same FinancialState snapshot.
type Metrics struct {
	TotalExpenses float64
	TotalIncome   float64
	SafetyBuffer  float64
	FreedomNumber float64

	MonthlyDeficit    float64
	Surplus           float64 // totalIncome - freedomNumber when deficit is 0
	FreedomPercentage int     // uncapped; >100 signals surplus
	Ready             bool

	MonthsToFreedom int // 0-120, or MonthsUnreachable
	RunwayMonths    int
	SavingsUsed     float64 // savings figure the runway calculation assumed
	HasValues       bool
}

// Snapshot is the flat read-only view consumed by export collaborators
// (PDF, share image, share text). Produced in one call from a single state.
type Snapshot struct {
	Expenses map[string]float64 `json:"expenses"`
	Income   map[string]float64 `json:"income"`
	Currency string             `json:"currency"`

	FreedomPercentage int     `json:"freedomPercentage"`
	TotalExpenses     float64 `json:"totalExpenses"`
	TotalIncome       float64 `json:"totalIncome"`
	MonthsToFreedom   int     `json:"monthsToFreedom"`
	GrowthRate        int     `json:"growthRate"`
	RunwayMonths      int     `json:"runwayMonths"`
	SafetyBuffer      float64 `json:"safetyBuffer"`
	WarChest          float64 `json:"warChest"`
	FreedomNumber     float64 `json:"freedomNumber"`
	SavingsUsed       float64 `json:"savingsUsed"`
	Deficit           float64 `json:"deficit"`
}

// ProjectionPoint is one month of the projected timeline.
type ProjectionPoint struct {
	Month        int
	Income       float64
	Expenses     float64
	SafetyTarget float64
	MRR          float64
}

// Projection is a bounded month-by-month series for charts and tables.
type Projection struct {
	Points []ProjectionPoint
	// FreedomMonth is the first month where income meets the safety target,
	// or MonthsUnreachable if it never happens within this projection.
	FreedomMonth int
}
