package planner

// Priority levels a task can carry. Anything else coming back from the model
// is normalized to medium.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// StatusPending is the only status a freshly generated task can have.
const StatusPending = "pending"

type PlanRequest struct {
	Goal      string `json:"goal"`
	Timeframe string `json:"timeframe"`
}

type Task struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	Priority       string  `json:"priority"`
	Status         string  `json:"status"`
}

type PlanResponse struct {
	GoalID              string  `json:"goal_id"`
	Tasks               []Task  `json:"tasks"`
	Reasoning           string  `json:"reasoning"`
	TotalEstimatedHours float64 `json:"total_estimated_hours"`
}
