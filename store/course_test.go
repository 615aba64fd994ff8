package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheidamoradi/danesh-platform/models"
)

func TestCourseRoundTrip(t *testing.T) {
	s := newTestStore(t)

	created := createTestCourse(t, s, models.Course{
		Title:        "Soil Basics",
		Description:  "Introduction to soil science",
		Category:     "agriculture",
		Level:        "Beginner",
		TotalModules: 10,
	})
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetCourse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.TotalModules, got.TotalModules)
	assert.Equal(t, created.ID, got.ID)
}

func TestCourseCreateValidation(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateCourse(&models.Course{})
	assert.True(t, IsValidation(err))

	err = s.CreateCourse(&models.Course{Title: "X", Level: "Expert"})
	assert.True(t, IsValidation(err))

	err = s.CreateCourse(&models.Course{Title: "X", TotalModules: 2, CompletedModules: 5})
	assert.True(t, IsValidation(err))
}

func TestUpdateProgressBounds(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "A", TotalModules: 10})

	_, err := s.UpdateProgress(course.ID, 150)
	assert.True(t, IsValidation(err))

	_, err = s.UpdateProgress(course.ID, -1)
	assert.True(t, IsValidation(err))

	// Rejected calls leave state unchanged.
	got, err := s.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Progress)

	updated, err := s.UpdateProgress(course.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Progress)

	got, err = s.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.Progress)
}

func TestUpdateProgressNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateProgress(999, 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCourseModuleCounters(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "A", TotalModules: 10})

	completed := 11
	_, err := s.UpdateCourse(course.ID, CoursePatch{CompletedModules: &completed})
	assert.True(t, IsValidation(err))

	completed = 7
	updated, err := s.UpdateCourse(course.ID, CoursePatch{CompletedModules: &completed})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.CompletedModules)
	assert.LessOrEqual(t, updated.CompletedModules, updated.TotalModules)

	// Shrinking totalModules below completedModules is rejected too.
	total := 3
	_, err = s.UpdateCourse(course.ID, CoursePatch{TotalModules: &total})
	assert.True(t, IsValidation(err))
}

func TestListCoursesFilters(t *testing.T) {
	s := newTestStore(t)
	createTestCourse(t, s, models.Course{Title: "Greenhouse Management", Description: "practical", Category: "agriculture", AccessLevel: "premium"})
	createTestCourse(t, s, models.Course{Title: "Drip Irrigation", Description: "field systems", Category: "agriculture", AccessLevel: "free"})
	createTestCourse(t, s, models.Course{Title: "Accounting 101", Description: "numbers", Category: "business", AccessLevel: "free"})

	all, err := s.ListCourses(CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	agri, err := s.ListCourses(CourseFilter{Category: "agriculture"})
	require.NoError(t, err)
	assert.Len(t, agri, 2)

	premium, err := s.ListCourses(CourseFilter{AccessLevel: "premium"})
	require.NoError(t, err)
	require.Len(t, premium, 1)
	assert.Equal(t, "Greenhouse Management", premium[0].Title)

	// Case-insensitive substring across title and description.
	found, err := s.ListCourses(CourseFilter{SearchTerm: "IRRIG"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Drip Irrigation", found[0].Title)

	found, err = s.ListCourses(CourseFilter{SearchTerm: "field"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestDeleteCourseIdempotence(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "A"})

	existed, err := s.DeleteCourse(course.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = s.DeleteCourse(course.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestModuleOrdering(t *testing.T) {
	s := newTestStore(t)
	course := createTestCourse(t, s, models.Course{Title: "A", TotalModules: 3})

	for _, ord := range []int{3, 1, 2} {
		require.NoError(t, s.CreateModule(&models.Module{
			CourseID: course.ID,
			Title:    "m",
			Order:    ord,
		}))
	}

	mods, err := s.ListModulesByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, mods, 3)
	for i, m := range mods {
		assert.Equal(t, i+1, m.Order)
	}
}

func TestModuleOrderUniquePerCourse(t *testing.T) {
	s := newTestStore(t)
	courseA := createTestCourse(t, s, models.Course{Title: "A"})
	courseB := createTestCourse(t, s, models.Course{Title: "B"})

	require.NoError(t, s.CreateModule(&models.Module{CourseID: courseA.ID, Title: "m1", Order: 1}))

	err := s.CreateModule(&models.Module{CourseID: courseA.ID, Title: "m2", Order: 1})
	assert.True(t, IsValidation(err))

	// Same order in another course is fine.
	require.NoError(t, s.CreateModule(&models.Module{CourseID: courseB.ID, Title: "m1", Order: 1}))
}

func TestModuleCreateRequiresCourse(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateModule(&models.Module{CourseID: 42, Title: "m", Order: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}
