package models

import "time"

// Progress status values. Status is derived from the stored percentage and is
// never accepted from a client.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ProgressRecord holds the user's state for a single course. At most one row
// exists per course id.
type ProgressRecord struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CourseID   string    `gorm:"uniqueIndex;not null" json:"course_id"`
	Progress   float64   `gorm:"default:0" json:"progress"`
	TimeActual int       `gorm:"default:0" json:"time_actual"` // hours
	Notes      string    `json:"notes"`
	Status     string    `gorm:"default:not_started" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProgressUpdate is a partial update to a progress record. Nil fields are
// left untouched.
type ProgressUpdate struct {
	Progress   *float64 `json:"progress"`
	TimeActual *int     `json:"time_actual"`
	Notes      *string  `json:"notes"`
}

// StatusForProgress maps a completion percentage to its status value:
// 0 is not_started, 100 is completed, anything in between is in_progress.
func StatusForProgress(progress float64) string {
	switch {
	case progress <= 0:
		return StatusNotStarted
	case progress >= 100:
		return StatusCompleted
	default:
		return StatusInProgress
	}
}
