package models

import "gorm.io/gorm"

// ForumPost is a user-authored discussion thread, optionally tagged
// with a language and topic (e.g. Grammar, Vocabulary, Culture)
type ForumPost struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	Language string `json:"language"`
	Topic    string `json:"topic"`
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content" gorm:"type:text;not null"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}

// Comment is a reply on a forum post
type Comment struct {
	gorm.Model
	PostID  uint   `json:"post_id" gorm:"index;not null"`
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Content string `json:"content" gorm:"type:text;not null"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}
