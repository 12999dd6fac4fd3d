package models

import (
	"time"

	"gorm.io/datatypes"
)

// CourseView is the flattened course + progress shape every read endpoint
// returns: the full course definition merged with the current progress record
// and the derived status and is_unlocked fields.
type CourseView struct {
	ID            string                      `json:"id"`
	Title         string                      `json:"title"`
	Description   string                      `json:"description"`
	Curriculum    string                      `json:"curriculum"`
	Category      string                      `json:"category"`
	Prerequisites datatypes.JSONSlice[string] `json:"prerequisites"`
	Duration      string                      `json:"duration"`
	Effort        string                      `json:"effort"`
	URL           string                      `json:"url"`
	TimeEstimated int                         `json:"time_estimated"`
	Progress      float64                     `json:"progress"`
	TimeActual    int                         `json:"time_actual"`
	Notes         string                      `json:"notes"`
	Status        string                      `json:"status"`
	IsUnlocked    bool                        `json:"is_unlocked"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// Stats summarizes progress across the whole catalog.
type Stats struct {
	TotalCourses         int            `json:"total_courses"`
	CompletedCourses     int            `json:"completed_courses"`
	InProgressCourses    int            `json:"in_progress_courses"`
	NotStartedCourses    int            `json:"not_started_courses"`
	CompletionPercentage float64        `json:"completion_percentage"`
	TotalTimeEstimated   int            `json:"total_time_estimated"`
	TotalTimeActual      int            `json:"total_time_actual"`
	CoursesPerCurriculum map[string]int `json:"courses_per_curriculum"`
}
