package models

import "gorm.io/gorm"

// Course represents one language/level learning unit
type Course struct {
	gorm.Model
	Language           string `json:"language" gorm:"not null"`
	Level              string `json:"level" gorm:"not null"` // Beginner, Intermediate, Advanced
	Title              string `json:"title" gorm:"not null"`
	Description        string `json:"description" gorm:"type:text"`
	ImageURL           string `json:"image_url"`
	LearningObjectives string `json:"learning_objectives" gorm:"type:text"`

	Modules []Module `json:"modules,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// Module represents an ordered section within a course
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_module_order"`
	Title       string `json:"title" gorm:"not null"`
	OrderIndex  int    `json:"order" gorm:"not null;uniqueIndex:idx_module_order"` // module order in course
	Description string `json:"description" gorm:"type:text"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`

	Course *Course `json:"-"`
}

// Lesson represents instructional content within a module
type Lesson struct {
	gorm.Model
	ModuleID          uint   `json:"module_id" gorm:"not null;uniqueIndex:idx_lesson_number"`
	LessonNumber      int    `json:"lesson_number" gorm:"not null;uniqueIndex:idx_lesson_number"` // order within module
	Title             string `json:"title" gorm:"not null"`
	Content           string `json:"content" gorm:"type:text;not null"`
	VideoURL          string `json:"video_url"`
	EstimatedDuration string `json:"estimated_duration"` // e.g. "30 mins"

	Quizzes []Quiz `json:"quizzes,omitempty" gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`

	Module *Module `json:"-"`
}
