package planner

import (
	"strconv"
	"strings"
)

// TimeframeHours converts a free-text timeframe ("2 weeks", "1 month") into
// a working-hours budget: 8h days, 40h weeks, 160h months. Used to size the
// fallback plan; unknown phrasing yields a one-day budget.
func TimeframeHours(timeframe string) float64 {
	tf := strings.ToLower(strings.TrimSpace(timeframe))
	if tf == "" {
		return 8
	}

	n := 1.0
	for _, field := range strings.Fields(tf) {
		if v, err := strconv.ParseFloat(field, 64); err == nil && v > 0 {
			n = v
			break
		}
	}

	switch {
	case strings.Contains(tf, "minute"):
		if h := n / 60; h > 1 {
			return h
		}
		return 1
	case strings.Contains(tf, "hour"):
		return n
	case strings.Contains(tf, "day"):
		return n * 8
	case strings.Contains(tf, "week"):
		return n * 40
	case strings.Contains(tf, "month"):
		return n * 160
	}
	return 8
}
