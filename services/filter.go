package services

import (
	"strings"

	"ossutracker/models"
)

// Filter narrows a list of course views. All set fields must match (AND);
// Search is a case-insensitive substring match over title and description.
type Filter struct {
	Curriculum string
	Category   string
	Status     string
	Search     string
}

// Apply returns the views matching every set filter field.
func (f Filter) Apply(views []models.CourseView) []models.CourseView {
	result := make([]models.CourseView, 0, len(views))
	for _, view := range views {
		if f.matches(view) {
			result = append(result, view)
		}
	}
	return result
}

func (f Filter) matches(view models.CourseView) bool {
	if f.Curriculum != "" && view.Curriculum != f.Curriculum {
		return false
	}
	if f.Category != "" && view.Category != f.Category {
		return false
	}
	if f.Status != "" && view.Status != f.Status {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(view.Title), needle) &&
			!strings.Contains(strings.ToLower(view.Description), needle) {
			return false
		}
	}
	return true
}
