package triage

// Statistics are run-wide totals derived from class summaries.
type Statistics struct {
	Classes  int
	Errors   int
	Failures int
	Problems int
	PerTier  map[Tier]int // Classes per tier; every tier is present
}

// ComputeStatistics derives run-wide totals from summaries.
func ComputeStatistics(classes []*ClassSummary) Statistics {
	stats := Statistics{
		Classes: len(classes),
		PerTier: make(map[Tier]int, len(severityTable)),
	}
	for _, tier := range Tiers() {
		stats.PerTier[tier] = 0
	}

	for _, c := range classes {
		stats.Errors += c.ErrorCount()
		stats.Failures += c.FailureCount()
		stats.PerTier[c.Tier()]++
	}
	stats.Problems = stats.Errors + stats.Failures

	return stats
}
