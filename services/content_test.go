package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/models"
)

func TestContentServiceListCoursesOrder(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewContentService(db)

	require.NoError(t, db.Create(&models.Course{Language: "Spanish", Level: "Beginner", Title: "Spanish"}).Error)
	require.NoError(t, db.Create(&models.Course{Language: "French", Level: "Beginner", Title: "French"}).Error)
	require.NoError(t, db.Create(&models.Course{Language: "French", Level: "Intermediate", Title: "French II"}).Error)
	require.NoError(t, db.Create(&models.Course{Language: "French", Level: "Advanced", Title: "French III"}).Error)

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 4)

	// (language, level) ascending, level label ordered lexicographically
	assert.Equal(t, "French III", courses[0].Title)  // French/Advanced
	assert.Equal(t, "French", courses[1].Title)      // French/Beginner
	assert.Equal(t, "French II", courses[2].Title)   // French/Intermediate
	assert.Equal(t, "Spanish", courses[3].Title)     // Spanish/Beginner
}

func TestContentServiceGetCourseDetail(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewContentService(db)

	// Create out of order to prove sorting comes from the query
	course := models.Course{
		Language: "Spanish",
		Level:    "Beginner",
		Title:    "Spanish for Beginners",
		Modules: []models.Module{
			{
				Title:      "Second",
				OrderIndex: 2,
				Lessons: []models.Lesson{
					{LessonNumber: 2, Title: "B2", Content: "x"},
					{LessonNumber: 1, Title: "B1", Content: "x"},
				},
			},
			{
				Title:      "First",
				OrderIndex: 1,
				Lessons: []models.Lesson{
					{LessonNumber: 3, Title: "A3", Content: "x"},
					{LessonNumber: 1, Title: "A1", Content: "x"},
					{LessonNumber: 2, Title: "A2", Content: "x"},
				},
			},
		},
	}
	require.NoError(t, db.Create(&course).Error)

	detail, err := svc.GetCourseDetail(course.ID)
	require.NoError(t, err)
	require.Len(t, detail.Modules, 2)

	assert.Equal(t, "First", detail.Modules[0].Title)
	assert.Equal(t, "Second", detail.Modules[1].Title)

	lessons := detail.Modules[0].Lessons
	require.Len(t, lessons, 3)
	assert.Equal(t, []string{"A1", "A2", "A3"}, []string{lessons[0].Title, lessons[1].Title, lessons[2].Title})

	_, err = svc.GetCourseDetail(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentServiceGetLesson(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewContentService(db)
	course := createTestCourse(t, db)

	lessonID := course.Modules[0].Lessons[0].ID
	lesson, err := svc.GetLesson(lessonID)
	require.NoError(t, err)

	assert.Equal(t, "Greetings", lesson.Title)
	require.NotNil(t, lesson.Module)
	assert.Equal(t, "Module 1", lesson.Module.Title)
	require.NotNil(t, lesson.Module.Course)
	assert.Equal(t, "Spanish for Beginners", lesson.Module.Course.Title)
	assert.Len(t, lesson.Quizzes, 1)

	_, err = svc.GetLesson(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentServiceListLanguages(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewContentService(db)

	require.NoError(t, db.Create(&models.Course{Language: "Spanish", Level: "Beginner", Title: "ES"}).Error)
	require.NoError(t, db.Create(&models.Course{Language: "Spanish", Level: "Intermediate", Title: "ES II"}).Error)
	require.NoError(t, db.Create(&models.Course{Language: "French", Level: "Beginner", Title: "FR"}).Error)

	languages, err := svc.ListLanguages()
	require.NoError(t, err)
	require.Len(t, languages, 2)

	assert.Equal(t, "French", languages[0].Name)
	assert.Equal(t, "Spanish", languages[1].Name)
	assert.Equal(t, []string{"Beginner", "Intermediate", "Advanced"}, languages[0].Levels)
}

func TestContentServiceCoursesByLanguage(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewContentService(db)

	require.NoError(t, db.Create(&models.Course{Language: "Spanish", Level: "Beginner", Title: "ES", Description: "intro"}).Error)
	require.NoError(t, db.Create(&models.Course{Language: "French", Level: "Beginner", Title: "FR"}).Error)

	// Case-normalized match
	courses, err := svc.CoursesByLanguage("sPaNish")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "ES", courses[0].Title)
	assert.Equal(t, "Beginner", courses[0].Level)
	assert.Equal(t, "intro", courses[0].Description)

	courses, err = svc.CoursesByLanguage("Italian")
	require.NoError(t, err)
	assert.Empty(t, courses)
}
