package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lingua/database"
	"lingua/models"
)

// newTestDB opens an isolated in-memory store with the full schema.
// MaxOpenConns(1) keeps gorm's pool on the single sqlite memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	auth := NewAuthService(db, 4) // low bcrypt cost for test speed
	user, err := auth.Register(email, "password123", "password123")
	require.NoError(t, err)
	return user
}

// createTestCourse seeds a minimal Spanish beginner course with one
// module, one lesson and one quiz, and returns the created course.
func createTestCourse(t *testing.T, db *gorm.DB) *models.Course {
	t.Helper()

	course := models.Course{
		Language: "Spanish",
		Level:    "Beginner",
		Title:    "Spanish for Beginners",
		Modules: []models.Module{
			{
				Title:      "Module 1",
				OrderIndex: 1,
				Lessons: []models.Lesson{
					{
						LessonNumber: 1,
						Title:        "Greetings",
						Content:      "Learn essential Spanish greetings.",
						Quizzes: []models.Quiz{
							{
								Question:      "How do you say 'Hello' in Spanish?",
								Options:       "Adiós,Gracias,Hola,Por favor",
								CorrectAnswer: "Hola",
								QuizType:      models.QuizTypeMultipleChoice,
							},
						},
					},
				},
			},
		},
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}
