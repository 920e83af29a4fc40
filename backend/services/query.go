package services

import (
	"math"

	"quicklearn/backend/models"
)

// QueryService joins catalog data with progress data at read time. It is
// stateless: catalog and progress are fetched independently on every call
// and merged in memory by exact lesson id, never by name.
type QueryService struct {
	catalog  *CatalogService
	progress *ProgressService
}

func NewQueryService(catalog *CatalogService, progress *ProgressService) *QueryService {
	return &QueryService{catalog: catalog, progress: progress}
}

func (s *QueryService) GetCourseWithProgress(userID, courseID uint) (models.CourseProgressView, error) {
	course, err := s.catalog.GetCourse(courseID)
	if err != nil {
		return models.CourseProgressView{}, err
	}

	rows, err := s.progress.GetProgressForUser(userID)
	if err != nil {
		return models.CourseProgressView{}, err
	}

	view := buildCourseView(course, rows)
	return view, nil
}

// GetRoadmapWithProgress aggregates completion over every lesson of every
// course in the roadmap.
func (s *QueryService) GetRoadmapWithProgress(userID, roadmapID uint) (models.RoadmapProgressView, error) {
	roadmap, err := s.catalog.GetRoadmap(roadmapID)
	if err != nil {
		return models.RoadmapProgressView{}, err
	}

	rows, err := s.progress.GetProgressForUser(userID)
	if err != nil {
		return models.RoadmapProgressView{}, err
	}

	view := models.RoadmapProgressView{
		Roadmap: roadmap,
		Courses: make([]models.CourseProgressView, 0, len(roadmap.Courses)),
	}

	var total, completed int
	for _, course := range roadmap.Courses {
		cv := buildCourseView(course, rows)
		view.Courses = append(view.Courses, cv)

		total += len(course.Lessons)
		for _, st := range cv.Lessons {
			if st.Completed {
				completed++
			}
		}
	}
	view.Percentage = percentage(completed, total)
	return view, nil
}

func buildCourseView(course models.Course, rows []models.UserLessonProgress) models.CourseProgressView {
	completedAt := make(map[uint]models.UserLessonProgress, len(rows))
	for _, row := range rows {
		completedAt[row.LessonID] = row
	}

	view := models.CourseProgressView{
		Course:  course,
		Lessons: make([]models.LessonStatus, 0, len(course.Lessons)),
	}

	var completed int
	for _, lesson := range course.Lessons {
		status := models.LessonStatus{LessonID: lesson.ID, Name: lesson.Name}
		if row, ok := completedAt[lesson.ID]; ok {
			date := row.CompletedDate
			status.Completed = true
			status.CompletedDate = &date
			completed++
		}
		view.Lessons = append(view.Lessons, status)
	}
	view.Percentage = percentage(completed, len(course.Lessons))
	return view
}

// percentage is round(100 * completed / total), 0 for an empty course.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
