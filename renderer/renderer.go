// Package renderer formats dashboard data as markdown documents, one function
// per report. The output is plain markdown; terminal styling happens at the
// caller.
package renderer

import (
	"strconv"

	"github.com/etnz/camdash"
)

func trendArrow(t camdash.Trend) string {
	switch t {
	case camdash.TrendUp:
		return "↑"
	case camdash.TrendDown:
		return "↓"
	case camdash.TrendStable:
		return "→"
	default:
		return "-"
	}
}

func reviewMark(s camdash.ReviewStatus) string {
	switch s {
	case camdash.ReviewPass:
		return "✓ pass"
	case camdash.ReviewFail:
		return "✗ fail"
	default:
		return "pending"
	}
}

func healthCell(a camdash.Account) string {
	s, ok := a.LatestHealthScore()
	if !ok {
		return "-"
	}
	trend, _ := a.HealthTrend()
	if trend == camdash.TrendNone {
		return strconv.Itoa(s.Score)
	}
	return strconv.Itoa(s.Score) + " " + trendArrow(trend)
}
