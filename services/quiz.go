package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"lingua/models"
)

// QuizService grades submitted answers and records attempts
type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// AttemptResult is what a learner gets back from a submission
type AttemptResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	AttemptID     uint   `json:"attempt_id"`
}

// GetQuiz loads a quiz with its lesson, module and course resolved
func (s *QuizService) GetQuiz(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Lesson.Module.Course").
		First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// SubmitAnswer grades selectedAnswer against the quiz's stored correct
// answer and records the attempt. Grading is trim + case-insensitive
// equality, nothing more. Every valid submission persists exactly one
// attempt row, correct or not; an empty answer persists nothing. The
// insert runs in one transaction, so a store failure leaves no row.
func (s *QuizService) SubmitAnswer(userID, quizID uint, selectedAnswer string) (*AttemptResult, error) {
	if strings.TrimSpace(selectedAnswer) == "" {
		return nil, ValidationError{"selected_answer": "Please select an answer."}
	}

	quiz, err := s.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}

	isCorrect := strings.EqualFold(
		strings.TrimSpace(selectedAnswer),
		strings.TrimSpace(quiz.CorrectAnswer),
	)

	attempt := models.QuizAttempt{
		UserID:         userID,
		QuizID:         quiz.ID,
		SelectedAnswer: selectedAnswer,
		IsCorrect:      isCorrect,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&attempt).Error
	})
	if err != nil {
		log.Printf("Error recording quiz attempt for user %d on quiz %d: %v", userID, quizID, err)
		return nil, err
	}

	return &AttemptResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: quiz.CorrectAnswer,
		AttemptID:     attempt.ID,
	}, nil
}

// ListAttempts returns the user's attempt history for a quiz, oldest
// first. History is append-only; there is no best-attempt aggregation.
func (s *QuizService) ListAttempts(userID, quizID uint) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := s.db.
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("attempted_at asc, id asc").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
