package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCompletionUnknownLesson(t *testing.T) {
	f := newFixture(t)

	err := f.progress.RecordCompletion(1, 999, time.Now())
	assert.ErrorIs(t, err, ErrLessonNotFound)

	rows, err := f.progress.GetProgressForUser(1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecordCompletionIdempotent(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")
	lesson := f.newLesson(t, course.ID, "Intro")

	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, f.progress.RecordCompletion(7, lesson.ID, first))
	require.NoError(t, f.progress.RecordCompletion(7, lesson.ID, second))

	rows, err := f.progress.GetProgressForUser(7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, lesson.ID, rows[0].LessonID)
	assert.Equal(t, course.ID, rows[0].CourseID)
	// re-completing refreshes the timestamp
	assert.True(t, rows[0].CompletedDate.Equal(second))
}

func TestGetProgressForUserInsertionOrder(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")
	l1 := f.newLesson(t, course.ID, "One")
	l2 := f.newLesson(t, course.ID, "Two")
	l3 := f.newLesson(t, course.ID, "Three")

	now := time.Now().UTC()
	require.NoError(t, f.progress.RecordCompletion(7, l2.ID, now))
	require.NoError(t, f.progress.RecordCompletion(7, l1.ID, now))
	require.NoError(t, f.progress.RecordCompletion(7, l3.ID, now))

	rows, err := f.progress.GetProgressForUser(7)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []uint{l2.ID, l1.ID, l3.ID}, []uint{rows[0].LessonID, rows[1].LessonID, rows[2].LessonID})
}

func TestProgressIsolatedPerUser(t *testing.T) {
	f := newFixture(t)
	course := f.newCourse(t, "API Design")
	lesson := f.newLesson(t, course.ID, "Intro")

	require.NoError(t, f.progress.RecordCompletion(7, lesson.ID, time.Now()))

	rows, err := f.progress.GetProgressForUser(8)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
