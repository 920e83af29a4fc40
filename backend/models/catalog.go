package models

import "gorm.io/gorm"

type RoadmapCategory struct {
	gorm.Model
	Name string `gorm:"not null"`
}

type CourseCategory struct {
	gorm.Model
	Name string `gorm:"not null"`
}

type Roadmap struct {
	gorm.Model
	Name              string `gorm:"not null"`
	NameKey           string `gorm:"uniqueIndex;not null"` // lowercased Name, uniqueness is enforced here
	Description       string
	RoadmapCategoryID uint `gorm:"not null"`
	CreatedByUserID   uint
	Achieved          bool     `gorm:"default:false"`
	Courses           []Course `gorm:"many2many:roadmap_courses"`
}

type Course struct {
	gorm.Model
	Name             string `gorm:"not null"`
	NameKey          string `gorm:"uniqueIndex;not null"` // lowercased Name, uniqueness is enforced here
	Description      string
	CourseCategoryID uint `gorm:"not null"`
	CreatedByUserID  uint
	Roadmaps         []Roadmap `gorm:"many2many:roadmap_courses"`
	Lessons          []Lesson
}

type Lesson struct {
	gorm.Model
	CourseID uint `gorm:"index;not null"`
	Name     string
	Content  string
}
