package services

import (
	"testing"

	"ossutracker/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func course(id string, prereqIDs ...string) models.Course {
	return models.Course{
		ID:            id,
		Title:         id,
		Curriculum:    models.CurriculumComputerScience,
		Prerequisites: datatypes.JSONSlice[string](prereqIDs),
	}
}

func TestIsUnlockedNoPrerequisites(t *testing.T) {
	c := course("a")

	assert.True(t, IsUnlocked(c, Snapshot{}))
	// Progress elsewhere is irrelevant
	assert.True(t, IsUnlocked(c, Snapshot{"b": 0, "c": 100}))
}

func TestIsUnlockedThresholdBoundary(t *testing.T) {
	c := course("b", "a")

	assert.False(t, IsUnlocked(c, Snapshot{"a": 0}))
	assert.False(t, IsUnlocked(c, Snapshot{"a": 79}))
	assert.False(t, IsUnlocked(c, Snapshot{"a": 79.9}))
	assert.True(t, IsUnlocked(c, Snapshot{"a": 80}))
	assert.True(t, IsUnlocked(c, Snapshot{"a": 100}))
}

func TestIsUnlockedAllPrerequisitesRequired(t *testing.T) {
	c := course("c", "a", "b")

	assert.False(t, IsUnlocked(c, Snapshot{"a": 100, "b": 79}))
	assert.False(t, IsUnlocked(c, Snapshot{"a": 79, "b": 100}))
	assert.True(t, IsUnlocked(c, Snapshot{"a": 80, "b": 80}))
}

func TestIsUnlockedMissingPrerequisiteBlocks(t *testing.T) {
	// "x" has no record anywhere: reads as 0, blocks, never errors
	c := course("c", "x")

	assert.False(t, IsUnlocked(c, Snapshot{}))
}

func TestIsUnlockedSelfReference(t *testing.T) {
	// A course listing itself only looks at its own stored percentage,
	// no recursion happens
	c := course("loop", "loop")

	assert.False(t, IsUnlocked(c, Snapshot{"loop": 50}))
	assert.True(t, IsUnlocked(c, Snapshot{"loop": 90}))
}

func TestIsUnlockedCycle(t *testing.T) {
	a := course("a", "b")
	b := course("b", "a")

	snapshot := Snapshot{"a": 90, "b": 10}
	assert.False(t, IsUnlocked(a, snapshot))
	assert.True(t, IsUnlocked(b, snapshot))
}

func TestDecorate(t *testing.T) {
	courses := []models.Course{course("a"), course("b", "a")}
	records := []models.ProgressRecord{
		{CourseID: "a", Progress: 85, TimeActual: 12, Notes: "almost there"},
	}

	views := Decorate(courses, records)
	assert.Len(t, views, 2)

	assert.Equal(t, "a", views[0].ID)
	assert.Equal(t, 85.0, views[0].Progress)
	assert.Equal(t, models.StatusInProgress, views[0].Status)
	assert.True(t, views[0].IsUnlocked)
	assert.Equal(t, "almost there", views[0].Notes)

	// b has no record: defaults, unlocked because a >= 80
	assert.Equal(t, "b", views[1].ID)
	assert.Equal(t, 0.0, views[1].Progress)
	assert.Equal(t, models.StatusNotStarted, views[1].Status)
	assert.True(t, views[1].IsUnlocked)
}

func TestDecorateNormalizesStatus(t *testing.T) {
	// A record carrying a stale status is normalized from the percentage
	courses := []models.Course{course("a")}
	records := []models.ProgressRecord{
		{CourseID: "a", Progress: 100, Status: models.StatusInProgress},
	}

	views := Decorate(courses, records)
	assert.Equal(t, models.StatusCompleted, views[0].Status)
}
