package models

import (
	"time"

	"gorm.io/gorm"
)

// UserLessonProgress marks a lesson as completed by a user. At most one row
// exists per (user, lesson) pair; re-completing refreshes CompletedDate.
type UserLessonProgress struct {
	gorm.Model
	UserID        uint `gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID      uint `gorm:"uniqueIndex:idx_user_lesson;not null"`
	CourseID      uint `gorm:"index;not null"`
	CompletedDate time.Time
}

// LessonStatus is the read-time merge of a lesson with its progress row.
type LessonStatus struct {
	LessonID      uint       `json:"lesson_id"`
	Name          string     `json:"name"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

type CourseProgressView struct {
	Course     Course         `json:"course"`
	Percentage int            `json:"percentage"`
	Lessons    []LessonStatus `json:"lessons"`
}

type RoadmapProgressView struct {
	Roadmap    Roadmap              `json:"roadmap"`
	Percentage int                  `json:"percentage"`
	Courses    []CourseProgressView `json:"courses"`
}
