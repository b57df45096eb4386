package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/models"
)

func TestQuizServiceGetQuiz(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewQuizService(db)
	course := createTestCourse(t, db)

	quizID := course.Modules[0].Lessons[0].Quizzes[0].ID
	quiz, err := svc.GetQuiz(quizID)
	require.NoError(t, err)

	assert.Equal(t, "How do you say 'Hello' in Spanish?", quiz.Question)
	assert.Equal(t, []string{"Adiós", "Gracias", "Hola", "Por favor"}, quiz.OptionList())
	require.NotNil(t, quiz.Lesson)
	assert.Equal(t, "Greetings", quiz.Lesson.Title)

	_, err = svc.GetQuiz(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizServiceSubmitAnswerGrading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
	}{
		{name: "exact match", answer: "Hola", wantCorrect: true},
		{name: "lowercase", answer: "hola", wantCorrect: true},
		{name: "surrounding whitespace", answer: " Hola ", wantCorrect: true},
		{name: "wrong answer", answer: "Adiós", wantCorrect: false},
		{name: "no partial credit", answer: "Hol", wantCorrect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewQuizService(db)
			user := createTestUser(t, db, "ana@example.com")
			course := createTestCourse(t, db)
			quizID := course.Modules[0].Lessons[0].Quizzes[0].ID

			result, err := svc.SubmitAnswer(user.ID, quizID, tt.answer)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCorrect, result.IsCorrect)
			assert.Equal(t, "Hola", result.CorrectAnswer)

			// Exactly one attempt row, correct or not
			var attempts []models.QuizAttempt
			require.NoError(t, db.Where("user_id = ? AND quiz_id = ?", user.ID, quizID).Find(&attempts).Error)
			require.Len(t, attempts, 1)
			assert.Equal(t, tt.wantCorrect, attempts[0].IsCorrect)
			assert.Equal(t, tt.answer, attempts[0].SelectedAnswer)
			assert.False(t, attempts[0].AttemptedAt.IsZero())
		})
	}
}

func TestQuizServiceSubmitAnswerEmpty(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewQuizService(db)
	user := createTestUser(t, db, "ana@example.com")
	course := createTestCourse(t, db)
	quizID := course.Modules[0].Lessons[0].Quizzes[0].ID

	for _, answer := range []string{"", "   "} {
		_, err := svc.SubmitAnswer(user.ID, quizID, answer)
		var vErr ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr, "selected_answer")
	}

	// No attempt recorded for rejected submissions
	var count int64
	require.NoError(t, db.Model(&models.QuizAttempt{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestQuizServiceAttemptsAreAppendOnly(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewQuizService(db)
	user := createTestUser(t, db, "ana@example.com")
	course := createTestCourse(t, db)
	quizID := course.Modules[0].Lessons[0].Quizzes[0].ID

	answers := []string{"Adiós", "Gracias", "hola", "Hola"}
	for _, answer := range answers {
		_, err := svc.SubmitAnswer(user.ID, quizID, answer)
		require.NoError(t, err)
	}

	attempts, err := svc.ListAttempts(user.ID, quizID)
	require.NoError(t, err)
	require.Len(t, attempts, len(answers), "every submission keeps its own row")

	assert.Equal(t, "Adiós", attempts[0].SelectedAnswer)
	assert.False(t, attempts[0].IsCorrect)
	assert.Equal(t, "Hola", attempts[3].SelectedAnswer)
	assert.True(t, attempts[3].IsCorrect)
}

func TestQuizServiceSubmitAnswerMissingQuiz(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewQuizService(db)
	user := createTestUser(t, db, "ana@example.com")

	_, err := svc.SubmitAnswer(user.ID, 9999, "Hola")
	assert.ErrorIs(t, err, ErrNotFound)
}
