package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"quicklearn/backend/models"
)

// CatalogService owns the roadmap/course/lesson hierarchy and enforces the
// referential and uniqueness rules on every write. Name uniqueness is
// case-insensitive: the service checks the normalized name first for a clean
// error, the unique index on the name_key column is the actual guarantee
// under concurrent writes.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type NewCourse struct {
	Name        string
	Description string
	CategoryID  uint
	RoadmapID   uint
}

type CoursePatch struct {
	Name        *string
	Description *string
	CategoryID  *uint
}

type NewRoadmap struct {
	Name        string
	Description string
	CategoryID  uint
}

type RoadmapPatch struct {
	Name        *string
	Description *string
	CategoryID  *uint
	Achieved    *bool
}

type LessonPatch struct {
	Name    *string
	Content *string
}

// nameKey normalizes a name for the case-insensitive uniqueness check.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *CatalogService) CreateCourse(requesterID uint, nc NewCourse) (models.Course, error) {
	var category models.CourseCategory
	if err := s.db.First(&category, nc.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrInvalidCategory
		}
		return models.Course{}, err
	}

	var roadmap models.Roadmap
	if err := s.db.First(&roadmap, nc.RoadmapID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrInvalidRoadmap
		}
		return models.Course{}, err
	}

	key := nameKey(nc.Name)
	var count int64
	if err := s.db.Model(&models.Course{}).Where("name_key = ?", key).Count(&count).Error; err != nil {
		return models.Course{}, err
	}
	if count > 0 {
		return models.Course{}, ErrDuplicateName
	}

	course := models.Course{
		Name:             strings.TrimSpace(nc.Name),
		NameKey:          key,
		Description:      nc.Description,
		CourseCategoryID: category.ID,
		CreatedByUserID:  requesterID,
		Roadmaps:         []models.Roadmap{roadmap},
	}
	if err := s.db.Create(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *CatalogService) UpdateCourse(id uint, patch CoursePatch) error {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if patch.Name != nil {
		key := nameKey(*patch.Name)
		// Collision is checked by id so that re-saving a course under its
		// own name stays a no-op.
		var count int64
		if err := s.db.Model(&models.Course{}).
			Where("name_key = ? AND id <> ?", key, course.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateName
		}
		course.Name = strings.TrimSpace(*patch.Name)
		course.NameKey = key
	}

	if patch.Description != nil {
		course.Description = *patch.Description
	}

	if patch.CategoryID != nil {
		var category models.CourseCategory
		if err := s.db.First(&category, *patch.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCategory
			}
			return err
		}
		course.CourseCategoryID = category.ID
	}

	return s.db.Save(&course).Error
}

func (s *CatalogService) CreateRoadmap(requesterID uint, nr NewRoadmap) (models.Roadmap, error) {
	var category models.RoadmapCategory
	if err := s.db.First(&category, nr.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Roadmap{}, ErrInvalidCategory
		}
		return models.Roadmap{}, err
	}

	key := nameKey(nr.Name)
	var count int64
	if err := s.db.Model(&models.Roadmap{}).Where("name_key = ?", key).Count(&count).Error; err != nil {
		return models.Roadmap{}, err
	}
	if count > 0 {
		return models.Roadmap{}, ErrDuplicateName
	}

	roadmap := models.Roadmap{
		Name:              strings.TrimSpace(nr.Name),
		NameKey:           key,
		Description:       nr.Description,
		RoadmapCategoryID: category.ID,
		CreatedByUserID:   requesterID,
	}
	if err := s.db.Create(&roadmap).Error; err != nil {
		return models.Roadmap{}, err
	}
	return roadmap, nil
}

func (s *CatalogService) UpdateRoadmap(id uint, patch RoadmapPatch) error {
	var roadmap models.Roadmap
	if err := s.db.First(&roadmap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoadmapNotFound
		}
		return err
	}

	if patch.Name != nil {
		key := nameKey(*patch.Name)
		var count int64
		if err := s.db.Model(&models.Roadmap{}).
			Where("name_key = ? AND id <> ?", key, roadmap.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateName
		}
		roadmap.Name = strings.TrimSpace(*patch.Name)
		roadmap.NameKey = key
	}

	if patch.Description != nil {
		roadmap.Description = *patch.Description
	}

	if patch.CategoryID != nil {
		var category models.RoadmapCategory
		if err := s.db.First(&category, *patch.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCategory
			}
			return err
		}
		roadmap.RoadmapCategoryID = category.ID
	}

	if patch.Achieved != nil {
		roadmap.Achieved = *patch.Achieved
	}

	return s.db.Save(&roadmap).Error
}

func (s *CatalogService) GetCourse(id uint) (models.Course, error) {
	var course models.Course
	err := s.db.Preload("Lessons").Preload("Roadmaps").First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}
	return course, nil
}

func (s *CatalogService) GetRoadmap(id uint) (models.Roadmap, error) {
	var roadmap models.Roadmap
	err := s.db.Preload("Courses.Lessons").First(&roadmap, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Roadmap{}, ErrRoadmapNotFound
		}
		return models.Roadmap{}, err
	}
	return roadmap, nil
}

func (s *CatalogService) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Preload("Lessons").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CatalogService) ListRoadmaps() ([]models.Roadmap, error) {
	var roadmaps []models.Roadmap
	if err := s.db.Find(&roadmaps).Error; err != nil {
		return nil, err
	}
	return roadmaps, nil
}

func (s *CatalogService) AddLesson(courseID uint, name, content string) (models.Lesson, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lesson{}, ErrCourseNotFound
		}
		return models.Lesson{}, err
	}

	lesson := models.Lesson{
		CourseID: course.ID,
		Name:     strings.TrimSpace(name),
		Content:  content,
	}
	if err := s.db.Create(&lesson).Error; err != nil {
		return models.Lesson{}, err
	}
	return lesson, nil
}

func (s *CatalogService) UpdateLesson(courseID, lessonID uint, patch LessonPatch) error {
	var lesson models.Lesson
	err := s.db.Where("id = ? AND course_id = ?", lessonID, courseID).First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonNotFound
		}
		return err
	}

	if patch.Name != nil {
		lesson.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Content != nil {
		lesson.Content = *patch.Content
	}

	return s.db.Save(&lesson).Error
}

func (s *CatalogService) AssignCourseToRoadmap(roadmapID, courseID uint) error {
	var roadmap models.Roadmap
	if err := s.db.First(&roadmap, roadmapID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoadmapNotFound
		}
		return err
	}

	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	return s.db.Model(&roadmap).Association("Courses").Append(&course)
}

func (s *CatalogService) RemoveCourseFromRoadmap(roadmapID, courseID uint) error {
	var roadmap models.Roadmap
	if err := s.db.First(&roadmap, roadmapID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoadmapNotFound
		}
		return err
	}

	return s.db.Model(&roadmap).Association("Courses").Delete(&models.Course{Model: gorm.Model{ID: courseID}})
}

func (s *CatalogService) CreateCourseCategory(name string) (models.CourseCategory, error) {
	category := models.CourseCategory{Name: strings.TrimSpace(name)}
	if err := s.db.Create(&category).Error; err != nil {
		return models.CourseCategory{}, err
	}
	return category, nil
}

func (s *CatalogService) CreateRoadmapCategory(name string) (models.RoadmapCategory, error) {
	category := models.RoadmapCategory{Name: strings.TrimSpace(name)}
	if err := s.db.Create(&category).Error; err != nil {
		return models.RoadmapCategory{}, err
	}
	return category, nil
}

func (s *CatalogService) ListCourseCategories() ([]models.CourseCategory, error) {
	var categories []models.CourseCategory
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogService) ListRoadmapCategories() ([]models.RoadmapCategory, error) {
	var categories []models.RoadmapCategory
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCourseCategory refuses to delete a category that courses still
// reference (restrict-on-delete).
func (s *CatalogService) DeleteCourseCategory(id uint) error {
	var category models.CourseCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.Course{}).Where("course_category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.db.Delete(&category).Error
}

// DeleteRoadmapCategory refuses to delete a category that roadmaps still
// reference (restrict-on-delete).
func (s *CatalogService) DeleteRoadmapCategory(id uint) error {
	var category models.RoadmapCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.Roadmap{}).Where("roadmap_category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.db.Delete(&category).Error
}
