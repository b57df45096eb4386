package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email          string `json:"email" gorm:"unique;not null"`
	Password       string `json:"-" gorm:"not null"` // bcrypt hash, never the plaintext
	ChosenLanguage string `json:"chosen_language" gorm:"default:''"`

	QuizAttempts []QuizAttempt `json:"-" gorm:"foreignKey:UserID"`
	ForumPosts   []ForumPost   `json:"-" gorm:"foreignKey:UserID"`
	Comments     []Comment     `json:"-" gorm:"foreignKey:UserID"`
}
