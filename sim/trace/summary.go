package trace

// TraceSummary aggregates statistics from a BoardingTrace.
type TraceSummary struct {
	TotalReleases   int         `json:"total_releases"`
	TotalTicks      int         `json:"total_ticks"`
	TotalReward     int         `json:"total_reward"`
	DrainTicks      int         `json:"drain_ticks"`
	MeanTickReward  float64     `json:"mean_tick_reward"`
	PeakStalled     int         `json:"peak_stalled"`
	RowDistribution map[int]int `json:"row_distribution"` // row → number of releases
}

// Summarize computes aggregate statistics from a BoardingTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(bt *BoardingTrace) *TraceSummary {
	summary := &TraceSummary{
		RowDistribution: make(map[int]int),
	}
	if bt == nil {
		return summary
	}

	summary.TotalReleases = len(bt.Releases)
	for _, r := range bt.Releases {
		summary.RowDistribution[r.Row]++
		summary.TotalTicks += r.Ticks
		summary.TotalReward += r.Reward
		if r.Drained {
			summary.DrainTicks += r.Ticks
		}
	}
	if summary.TotalTicks > 0 {
		summary.MeanTickReward = float64(summary.TotalReward) / float64(summary.TotalTicks)
	}

	for _, tr := range bt.Ticks {
		if tr.Stalled > summary.PeakStalled {
			summary.PeakStalled = tr.Stalled
		}
	}

	return summary
}
