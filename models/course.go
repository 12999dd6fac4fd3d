package models

import (
	"time"

	"gorm.io/datatypes"
)

// OSSU curriculum identifiers.
const (
	CurriculumComputerScience = "computer_science"
	CurriculumDataScience     = "data_science"
	CurriculumMathematics     = "mathematics"
	CurriculumBioinformatics  = "bioinformatics"
	CurriculumPrecollegeMath  = "precollege_math"
)

// Curricula lists every known curriculum identifier.
var Curricula = []string{
	CurriculumComputerScience,
	CurriculumDataScience,
	CurriculumMathematics,
	CurriculumBioinformatics,
	CurriculumPrecollegeMath,
}

// Course is one entry of the static OSSU catalog. Rows are written by the
// sync reconciler from the seed and never edited afterwards.
type Course struct {
	ID            string                      `gorm:"primaryKey" json:"id"`
	Title         string                      `gorm:"not null" json:"title"`
	Description   string                      `json:"description"`
	Curriculum    string                      `gorm:"index" json:"curriculum"`
	Category      string                      `gorm:"index" json:"category"`
	Prerequisites datatypes.JSONSlice[string] `json:"prerequisites"`
	Duration      string                      `json:"duration"`
	Effort        string                      `json:"effort"`
	URL           string                      `json:"url"`
	TimeEstimated int                         `json:"time_estimated"` // hours
	CreatedAt     time.Time                   `json:"created_at"`
}

// CurriculumInfo describes one OSSU track. Static metadata, served as-is.
type CurriculumInfo struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	GithubURL    string   `json:"github_url"`
	Categories   []string `json:"categories"`
	TotalCourses int      `json:"total_courses"`
}
