package planner

import (
	"encoding/json"
	"strconv"
	"strings"
)

// rawPlan mirrors the JSON the model is asked to emit. Fields are loose on
// purpose: models return hours as strings, drop fields, or invent ids.
type rawPlan struct {
	Reasoning string    `json:"reasoning"`
	Tasks     []rawTask `json:"tasks"`
}

type rawTask struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	EstimatedHours any    `json:"estimated_hours"`
	Priority       string `json:"priority"`
}

// parsePlan extracts and normalizes a plan from raw model text. ok is false
// when no usable plan can be recovered and the caller should fall back.
func parsePlan(text string) (PlanResponse, bool) {
	payload, ok := extractJSON(text)
	if !ok {
		return PlanResponse{}, false
	}

	var rp rawPlan
	if err := json.Unmarshal([]byte(payload), &rp); err != nil {
		return PlanResponse{}, false
	}
	if len(rp.Tasks) == 0 {
		return PlanResponse{}, false
	}

	return normalize(rp)
}

// extractJSON pulls a JSON object out of model text that may wrap it in
// markdown fences or prose: first strip fences, then take the first balanced
// {...} span outside of string literals.
func extractJSON(text string) (string, bool) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if i := strings.LastIndex(text, "```"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

func normalize(rp rawPlan) (PlanResponse, bool) {
	tasks := make([]Task, 0, len(rp.Tasks))
	seen := make(map[string]bool, len(rp.Tasks))
	next := 1

	for _, rt := range rp.Tasks {
		title := strings.TrimSpace(rt.Title)
		if title == "" {
			continue
		}

		t := Task{
			ID:             strings.TrimSpace(rt.ID),
			Title:          title,
			Description:    strings.TrimSpace(rt.Description),
			EstimatedHours: coerceHours(rt.EstimatedHours),
			Priority:       normalizePriority(rt.Priority),
			Status:         StatusPending,
		}

		// Missing or colliding ids get the next free sequence number.
		if t.ID == "" || seen[t.ID] {
			for seen[strconv.Itoa(next)] {
				next++
			}
			t.ID = strconv.Itoa(next)
			next++
		}
		seen[t.ID] = true

		tasks = append(tasks, t)
	}

	if len(tasks) == 0 {
		return PlanResponse{}, false
	}

	var total float64
	for _, t := range tasks {
		total += t.EstimatedHours
	}

	reasoning := strings.TrimSpace(rp.Reasoning)
	if reasoning == "" {
		reasoning = "Task breakdown generated from the stated goal and timeframe."
	}

	return PlanResponse{
		Tasks:               tasks,
		Reasoning:           reasoning,
		TotalEstimatedHours: total,
	}, true
}

// coerceHours accepts whatever the model put in estimated_hours. Positive
// numbers and numeric strings pass through; anything else becomes 1.
func coerceHours(v any) float64 {
	switch h := v.(type) {
	case float64:
		if h > 0 {
			return h
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(h), 64); err == nil && f > 0 {
			return f
		}
	}
	return 1
}

func normalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}
