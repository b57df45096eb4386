package models

import "time"

// Enrollment links a user to a course. The composite primary key makes
// the pair unique at the store level, so concurrent duplicate enrolls
// cannot race past the application-level check.
type Enrollment struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	CourseID  uint      `json:"course_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
