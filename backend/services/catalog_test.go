package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourse(t *testing.T) {
	f := newFixture(t)

	course, err := f.catalog.CreateCourse(42, NewCourse{
		Name:        "API Design",
		Description: "REST fundamentals",
		CategoryID:  f.courseCategory.ID,
		RoadmapID:   f.roadmap.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "API Design", course.Name)
	assert.Equal(t, "api design", course.NameKey)
	assert.Equal(t, uint(42), course.CreatedByUserID)

	// the course must be linked to the roadmap through the join table
	roadmap, err := f.catalog.GetRoadmap(f.roadmap.ID)
	require.NoError(t, err)
	require.Len(t, roadmap.Courses, 1)
	assert.Equal(t, course.ID, roadmap.Courses[0].ID)
}

func TestCreateCourseInvalidCategory(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateCourse(1, NewCourse{
		Name:       "API Design",
		CategoryID: 999,
		RoadmapID:  f.roadmap.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	// nothing may have been persisted
	courses, err := f.catalog.ListCourses()
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCreateCourseInvalidRoadmap(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateCourse(1, NewCourse{
		Name:       "API Design",
		CategoryID: f.courseCategory.ID,
		RoadmapID:  999,
	})
	assert.ErrorIs(t, err, ErrInvalidRoadmap)
}

func TestCreateCourseDuplicateNameCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.newCourse(t, "API Design")

	_, err := f.catalog.CreateCourse(1, NewCourse{
		Name:       "api design",
		CategoryID: f.courseCategory.ID,
		RoadmapID:  f.roadmap.ID,
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateCourseSelfRename(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")

	// renaming a course to its own name is a no-op, not a collision
	err := f.catalog.UpdateCourse(course.ID, CoursePatch{Name: strPtr("API Design")})
	assert.NoError(t, err)

	err = f.catalog.UpdateCourse(course.ID, CoursePatch{Name: strPtr("API DESIGN")})
	assert.NoError(t, err)
}

func TestUpdateCourseNameCollision(t *testing.T) {
	f := newFixture(t)
	f.newCourse(t, "API Design")
	other := f.newCourse(t, "Databases")

	err := f.catalog.UpdateCourse(other.ID, CoursePatch{Name: strPtr("Api Design")})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateCoursePartialPatch(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")

	err := f.catalog.UpdateCourse(course.ID, CoursePatch{Description: strPtr("updated")})
	require.NoError(t, err)

	got, err := f.catalog.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "API Design", got.Name)
	assert.Equal(t, "updated", got.Description)
	assert.Equal(t, f.courseCategory.ID, got.CourseCategoryID)
}

func TestUpdateCourseNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.catalog.UpdateCourse(999, CoursePatch{Name: strPtr("Anything")})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUpdateCourseInvalidCategory(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")

	err := f.catalog.UpdateCourse(course.ID, CoursePatch{CategoryID: uintPtr(999)})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateRoadmapDuplicateName(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateRoadmap(1, NewRoadmap{
		Name:       "BACKEND",
		CategoryID: f.roadmapCategory.ID,
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateRoadmap(t *testing.T) {
	f := newFixture(t)

	err := f.catalog.UpdateRoadmap(f.roadmap.ID, RoadmapPatch{
		Name:     strPtr("Backend 2.0"),
		Achieved: boolPtr(true),
	})
	require.NoError(t, err)

	got, err := f.catalog.GetRoadmap(f.roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend 2.0", got.Name)
	assert.True(t, got.Achieved)
}

func TestUpdateRoadmapInvalidCategory(t *testing.T) {
	f := newFixture(t)

	err := f.catalog.UpdateRoadmap(f.roadmap.ID, RoadmapPatch{CategoryID: uintPtr(999)})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestAddLessonToMissingCourse(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.AddLesson(999, "Intro", "content")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUpdateLessonScopedToCourse(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")
	other := f.newCourse(t, "Databases")
	lesson := f.newLesson(t, course.ID, "Intro")

	// a lesson can only be updated through its own course
	err := f.catalog.UpdateLesson(other.ID, lesson.ID, LessonPatch{Name: strPtr("Renamed")})
	assert.ErrorIs(t, err, ErrLessonNotFound)

	err = f.catalog.UpdateLesson(course.ID, lesson.ID, LessonPatch{Name: strPtr("Renamed")})
	assert.NoError(t, err)
}

func TestAssignAndRemoveCourse(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")

	second, err := f.catalog.CreateRoadmap(1, NewRoadmap{
		Name:       "Fullstack",
		CategoryID: f.roadmapCategory.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.catalog.AssignCourseToRoadmap(second.ID, course.ID))

	got, err := f.catalog.GetRoadmap(second.ID)
	require.NoError(t, err)
	require.Len(t, got.Courses, 1)

	require.NoError(t, f.catalog.RemoveCourseFromRoadmap(second.ID, course.ID))

	got, err = f.catalog.GetRoadmap(second.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Courses)
}

func TestDeleteCategoryRestrictedWhileReferenced(t *testing.T) {
	f := newFixture(t)
	f.newCourse(t, "API Design")

	err := f.catalog.DeleteCourseCategory(f.courseCategory.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	err = f.catalog.DeleteRoadmapCategory(f.roadmapCategory.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	// an unreferenced category can be deleted
	spare, err := f.catalog.CreateCourseCategory("Spare")
	require.NoError(t, err)
	assert.NoError(t, f.catalog.DeleteCourseCategory(spare.ID))
	assert.ErrorIs(t, f.catalog.DeleteCourseCategory(spare.ID), ErrCategoryNotFound)
}

func TestScenarioCreateCatalog(t *testing.T) {
	f := newFixture(t)

	course, err := f.catalog.CreateCourse(1, NewCourse{
		Name:       "API Design",
		CategoryID: f.courseCategory.ID,
		RoadmapID:  f.roadmap.ID,
	})
	require.NoError(t, err)
	require.Len(t, course.Roadmaps, 1)
	assert.Equal(t, f.roadmap.ID, course.Roadmaps[0].ID)

	_, err = f.catalog.CreateCourse(1, NewCourse{
		Name:       "api design",
		CategoryID: f.courseCategory.ID,
		RoadmapID:  f.roadmap.ID,
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func boolPtr(b bool) *bool { return &b }
