package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quicklearn/backend/models"
	"quicklearn/backend/utils"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))
	return db
}

type fixture struct {
	catalog  *CatalogService
	progress *ProgressService
	query    *QueryService

	courseCategory  models.CourseCategory
	roadmapCategory models.RoadmapCategory
	roadmap         models.Roadmap
}

// newFixture seeds one category of each kind and one roadmap.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testDB(t)
	f := &fixture{
		catalog:  NewCatalogService(db),
		progress: NewProgressService(db),
	}
	f.query = NewQueryService(f.catalog, f.progress)

	var err error
	f.courseCategory, err = f.catalog.CreateCourseCategory("Tech")
	require.NoError(t, err)
	f.roadmapCategory, err = f.catalog.CreateRoadmapCategory("Engineering")
	require.NoError(t, err)

	f.roadmap, err = f.catalog.CreateRoadmap(1, NewRoadmap{
		Name:        "Backend",
		Description: "Backend engineering path",
		CategoryID:  f.roadmapCategory.ID,
	})
	require.NoError(t, err)

	return f
}

func (f *fixture) newCourse(t *testing.T, name string) models.Course {
	t.Helper()

	course, err := f.catalog.CreateCourse(1, NewCourse{
		Name:       name,
		CategoryID: f.courseCategory.ID,
		RoadmapID:  f.roadmap.ID,
	})
	require.NoError(t, err)
	return course
}

func (f *fixture) newLesson(t *testing.T, courseID uint, name string) models.Lesson {
	t.Helper()

	lesson, err := f.catalog.AddLesson(courseID, name, "content")
	require.NoError(t, err)
	return lesson
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }
