package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"quicklearn/backend/models"
)

// ProgressService records which lessons a user has completed. It never
// touches catalog rows beyond verifying the lesson exists.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// RecordCompletion upserts the (user, lesson) completion row. Re-completing
// a lesson refreshes the timestamp, it never duplicates the row. The lesson
// must exist so that orphan progress rows cannot be created.
func (s *ProgressService) RecordCompletion(userID, lessonID uint, at time.Time) error {
	var lesson models.Lesson
	if err := s.db.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonNotFound
		}
		return err
	}

	row := models.UserLessonProgress{
		UserID:        userID,
		LessonID:      lesson.ID,
		CourseID:      lesson.CourseID,
		CompletedDate: at,
	}
	return s.db.
		Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).
		Assign(models.UserLessonProgress{CompletedDate: at, CourseID: lesson.CourseID}).
		FirstOrCreate(&row).Error
}

// GetProgressForUser returns all completion rows for a user in insertion
// order. Callers group by course themselves.
func (s *ProgressService) GetProgressForUser(userID uint) ([]models.UserLessonProgress, error) {
	var rows []models.UserLessonProgress
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
