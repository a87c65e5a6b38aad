package ai

import "strings"

// BuildUserPrompt assembles the user message for one breakdown request.
func BuildUserPrompt(goal, timeframe string) string {

	var b strings.Builder

	b.WriteString("GOAL: ")
	b.WriteString(goal)
	b.WriteString("\n")

	b.WriteString("TIMEFRAME: ")
	b.WriteString(timeframe)
	b.WriteString("\n")

	return b.String()
}
