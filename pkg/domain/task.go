package domain

import "time"

// Priority represents task priority
type Priority string

// task priorities
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recurrence represents how often a task repeats
type Recurrence string

// task recurrence periods
const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Task represents a tracked task. A completed recurring task spawns exactly one
// successor; the successor points back via PredecessorID so the chain stays
// unidirectional.
type Task struct {
	ID             int64
	Title          string
	Description    string
	DueAt          *time.Time
	Priority       Priority
	Recurrence     Recurrence
	Completed      bool
	CompletedAt    *time.Time
	RolledOver     bool
	PredecessorID  *int64
	LastRemindedAt *time.Time
	CreatedAt      time.Time
}

// NextDueAt returns the due time of the successor task for a given recurrence,
// advanced from the original due time. Monthly uses calendar months, so
// Jan 31 + monthly lands on the normalized date per time.AddDate.
func NextDueAt(due time.Time, rec Recurrence) time.Time {
	switch rec {
	case RecurrenceDaily:
		return due.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return due.AddDate(0, 1, 0)
	default:
		return due
	}
}
