package repository

import (
	"errors"

	"ossutracker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrRecordNotFound = errors.New("progress record not found")
	ErrProgressRange  = errors.New("progress must be between 0 and 100")
	ErrNegativeTime   = errors.New("time_actual must not be negative")
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Courses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("created_at").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) CourseByID(id string) (models.Course, error) {
	var course models.Course
	err := s.db.Where("id = ?", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Course{}, ErrCourseNotFound
	}
	return course, err
}

func (s *GormStore) InsertCourseIfAbsent(course models.Course) (bool, error) {
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&course)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) Records() ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) RecordByCourseID(courseID string) (models.ProgressRecord, error) {
	var record models.ProgressRecord
	err := s.db.Where("course_id = ?", courseID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ProgressRecord{}, ErrRecordNotFound
	}
	return record, err
}

func (s *GormStore) EnsureRecord(courseID string) (models.ProgressRecord, bool, error) {
	record, err := s.RecordByCourseID(courseID)
	if err == nil {
		return record, false, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return models.ProgressRecord{}, false, err
	}

	record = models.ProgressRecord{
		ID:       uuid.NewString(),
		CourseID: courseID,
		Status:   models.StatusNotStarted,
	}
	// The unique index on course_id keeps concurrent ensures from creating
	// two rows; losing the race means someone else inserted the default.
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if res.Error != nil {
		return models.ProgressRecord{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		record, err = s.RecordByCourseID(courseID)
		return record, false, err
	}
	return record, true, nil
}

func (s *GormStore) UpdateRecord(courseID string, update models.ProgressUpdate) (models.ProgressRecord, error) {
	if update.Progress != nil && (*update.Progress < 0 || *update.Progress > 100) {
		return models.ProgressRecord{}, ErrProgressRange
	}
	if update.TimeActual != nil && *update.TimeActual < 0 {
		return models.ProgressRecord{}, ErrNegativeTime
	}

	var record models.ProgressRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing := true
		err := tx.Where("course_id = ?", courseID).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			existing = false
			record = models.ProgressRecord{
				ID:       uuid.NewString(),
				CourseID: courseID,
			}
		} else if err != nil {
			return err
		}

		if update.Progress != nil {
			record.Progress = *update.Progress
		}
		if update.TimeActual != nil {
			record.TimeActual = *update.TimeActual
		}
		if update.Notes != nil {
			record.Notes = *update.Notes
		}
		record.Status = models.StatusForProgress(record.Progress)

		if existing {
			return tx.Save(&record).Error
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return models.ProgressRecord{}, err
	}
	return record, nil
}
