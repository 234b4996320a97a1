package template

import "time"

// Stats accumulates usage analytics for a template.
type Stats struct {
	// UsageCount is the number of recorded usages.
	UsageCount int

	// AvgTokens is the running mean of observed token usage.
	AvgTokens float64

	// AvgResponseTime is the running mean of observed response times.
	AvgResponseTime time.Duration

	// SuccessCount is the number of usages recorded as successful.
	SuccessCount int

	// LastUsedAt is the time of the most recent recorded usage.
	LastUsedAt time.Time
}

// Metrics is one usage observation. Zero-valued TokensUsed and
// ResponseTime fields are treated as not observed and do not affect
// the running means.
type Metrics struct {
	TokensUsed   int
	ResponseTime time.Duration
	Success      bool
}

// RecordUsage folds one observation into the template's stats and
// returns the updated Template; the receiver is unchanged.
//
// Running means use new = (old*(n-1) + v) / n, where n is the
// post-increment usage count. The first observation therefore adopts
// the observed value directly.
func (t Template) RecordUsage(m Metrics) Template {
	stats := t.Stats
	stats.UsageCount++
	stats.LastUsedAt = time.Now()

	n := float64(stats.UsageCount)
	if m.TokensUsed > 0 {
		stats.AvgTokens = (stats.AvgTokens*(n-1) + float64(m.TokensUsed)) / n
	}
	if m.ResponseTime > 0 {
		stats.AvgResponseTime = time.Duration(
			(float64(stats.AvgResponseTime)*(n-1) + float64(m.ResponseTime)) / n)
	}
	if m.Success {
		stats.SuccessCount++
	}

	t.Stats = stats
	return t
}
