package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Quiz types supported by the platform.
const (
	QuizTypeMultipleChoice = "multiple_choice"
	QuizTypeTrueFalse      = "true_false"
	QuizTypeFillInBlank    = "fill_in_blank"
)

// Quiz is a single graded question tied to a lesson
type Quiz struct {
	gorm.Model
	LessonID      uint   `json:"lesson_id" gorm:"index;not null"`
	Question      string `json:"question" gorm:"type:text;not null"`
	Options       string `json:"-" gorm:"size:500"` // comma-delimited choice labels, empty for fill-in
	CorrectAnswer string `json:"-" gorm:"size:100;not null"`
	QuizType      string `json:"quiz_type" gorm:"size:20;default:'multiple_choice'"`

	Attempts []QuizAttempt `json:"-" gorm:"foreignKey:QuizID"`

	Lesson *Lesson `json:"-"`
}

// OptionList splits the stored comma-delimited options into an ordered
// slice of choice labels. An empty options field yields an empty slice,
// not a one-element slice containing "".
func (q *Quiz) OptionList() []string {
	if q.Options == "" {
		return []string{}
	}
	return strings.Split(q.Options, ",")
}

// QuizAttempt records one user's graded submission for a quiz.
// Rows are append-only: a user may attempt the same quiz any number
// of times and every submission keeps its own row.
type QuizAttempt struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	QuizID         uint      `json:"quiz_id" gorm:"index;not null"`
	SelectedAnswer string    `json:"selected_answer" gorm:"size:100;not null"`
	IsCorrect      bool      `json:"is_correct" gorm:"not null"`
	AttemptedAt    time.Time `json:"attempted_at" gorm:"autoCreateTime"`
}
