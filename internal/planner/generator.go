package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"smart-task-planner/internal/ai"
)

// ErrUpstream marks failures reaching the model service: network errors,
// timeouts, bad API key. Malformed model output never produces it; that
// takes the fallback path instead.
var ErrUpstream = errors.New("upstream ai service error")

// Completer is the seam to the model service: one prompt in, raw model text
// out. Tests substitute a deterministic fake.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Generator struct {
	AI Completer
}

func NewGenerator(c Completer) *Generator {
	return &Generator{AI: c}
}

// Generate produces a well-formed plan for the goal/timeframe pair. The only
// error it can return wraps ErrUpstream; output the model returns but that
// cannot be parsed degrades to the deterministic fallback plan.
func (g *Generator) Generate(ctx context.Context, goal, timeframe string) (PlanResponse, error) {
	raw, err := g.AI.Complete(ctx, ai.BuildUserPrompt(goal, timeframe))
	if err != nil {
		return PlanResponse{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, ok := parsePlan(raw)
	if !ok {
		resp = fallbackPlan(goal, timeframe)
	}
	resp.GoalID = uuid.NewString()

	return resp, nil
}

// fallbackPlan is returned when the model reply carries no usable task list.
// One placeholder task, sized from the timeframe, so the client still gets a
// valid plan.
func fallbackPlan(goal, timeframe string) PlanResponse {
	task := Task{
		ID:             "1",
		Title:          "Work toward: " + goal,
		Description:    "Automatic breakdown was unavailable. Treat the goal as a single block of work and split it up manually.",
		EstimatedHours: TimeframeHours(timeframe),
		Priority:       PriorityHigh,
		Status:         StatusPending,
	}

	return PlanResponse{
		Tasks:               []Task{task},
		Reasoning:           fmt.Sprintf("Automatic task breakdown was unavailable for %q; returning a single placeholder task sized from the timeframe.", goal),
		TotalEstimatedHours: task.EstimatedHours,
	}
}
