package tasks

import "fmt"

// Priority and status are closed sets; inserts reject anything else before
// the enum columns get a chance to.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Priority string `gorm:"not null" json:"priority"`
	Status   string `gorm:"not null" json:"status"`
	UserID   string `gorm:"not null;index" json:"userId"`
}

func (Task) TableName() string { return "app_tasks.tasks" }

func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func ValidStatus(s string) bool {
	return s == StatusInProgress || s == StatusCompleted
}

// Validate checks the full record the way Insert requires it: every field
// present and the enums within range. The id is client-generated, so it is
// required too.
func (t Task) Validate() error {
	if t.ID == "" || t.Name == "" || t.Priority == "" || t.Status == "" || t.UserID == "" {
		return fmt.Errorf("all fields are required")
	}
	if !ValidPriority(t.Priority) {
		return fmt.Errorf("invalid priority: %q", t.Priority)
	}
	if !ValidStatus(t.Status) {
		return fmt.Errorf("invalid status: %q", t.Status)
	}
	return nil
}
