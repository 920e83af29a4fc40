package services

import "errors"

// Caller-input errors. Controllers map these to 4xx responses; anything else
// coming out of a service is a persistence failure and surfaces as 500.
var (
	ErrInvalidCategory  = errors.New("category does not exist")
	ErrInvalidRoadmap   = errors.New("roadmap does not exist")
	ErrDuplicateName    = errors.New("this name is already taken")
	ErrCourseNotFound   = errors.New("course not found")
	ErrRoadmapNotFound  = errors.New("roadmap not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category is still referenced and cannot be deleted")
)
