package planner

// Task is a single unit of study work with a due date.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     Timestamp `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Subject     string    `json:"subject,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// Goal tracks longer-term progress toward a target date. Progress is a
// percentage and stays within [0,100].
type Goal struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TargetDate  Timestamp `json:"targetDate"`
	Progress    int       `json:"progress"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// Reminder fires a notification once its due time passes. Triggered flips to
// true exactly once and never back.
type Reminder struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	DateTime  Timestamp `json:"dateTime"`
	Triggered bool      `json:"triggered"`
	CreatedAt Timestamp `json:"createdAt"`
}

// ClampProgress bounds a goal progress value to [0,100].
func ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
