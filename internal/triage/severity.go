package triage

// Tier is a priority level derived from a class's total problem count.
type Tier int

// Tiers, from most to least urgent.
const (
	TierCritical Tier = iota
	TierHigh
	TierMedium
	TierLow
)

// tierBand describes one row of the severity table.
type tierBand struct {
	minTotal int
	tier     Tier
	label    string
	icon     string
	color    string // RGB hex, no leading '#'
	rangeTxt string
}

// severityTable is ordered from the highest lower bound down; the first band
// whose minTotal is <= total wins. The last band must have minTotal 0.
var severityTable = []tierBand{
	{minTotal: 20, tier: TierCritical, label: "CRITICAL", icon: "🔴", color: "DC3545", rangeTxt: ">=20"},
	{minTotal: 10, tier: TierHigh, label: "HIGH", icon: "🟠", color: "FFC107", rangeTxt: "10-19"},
	{minTotal: 5, tier: TierMedium, label: "MEDIUM", icon: "🟡", color: "FF9800", rangeTxt: "5-9"},
	{minTotal: 0, tier: TierLow, label: "LOW", icon: "🟢", color: "4CAF50", rangeTxt: "<5"},
}

// Classify maps a total problem count to its tier.
func Classify(total int) Tier {
	return lookupByTotal(total).tier
}

func lookupByTotal(total int) tierBand {
	for _, band := range severityTable {
		if total >= band.minTotal {
			return band
		}
	}
	// Negative totals cannot come out of the aggregator.
	return severityTable[len(severityTable)-1]
}

func (t Tier) band() tierBand {
	for _, band := range severityTable {
		if band.tier == t {
			return band
		}
	}
	return severityTable[len(severityTable)-1]
}

// Tiers returns all tiers from most to least urgent.
func Tiers() []Tier {
	tiers := make([]Tier, len(severityTable))
	for i, band := range severityTable {
		tiers[i] = band.tier
	}
	return tiers
}

// String returns the tier label (e.g., "CRITICAL").
func (t Tier) String() string {
	return t.band().label
}

// Label returns the tier label with its icon (e.g., "🔴 CRITICAL").
func (t Tier) Label() string {
	b := t.band()
	return b.icon + " " + b.label
}

// Icon returns the colored circle used for the tier.
func (t Tier) Icon() string {
	return t.band().icon
}

// Color returns the tier's RGB hex color without a leading '#'.
func (t Tier) Color() string {
	return t.band().color
}

// Range returns a human-readable description of the tier's bounds (e.g., "10-19").
func (t Tier) Range() string {
	return t.band().rangeTxt
}
