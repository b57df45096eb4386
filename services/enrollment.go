package services

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lingua/models"
)

// EnrollmentService manages the many-to-many relation between users
// and courses.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll links the user to the course. The insert is a single atomic
// insert-if-absent on the composite primary key, so two concurrent
// enrolls for the same pair cannot both insert; the loser gets
// ErrAlreadyEnrolled, never a duplicate row.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}

	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollment)
	if result.Error != nil {
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyEnrolled
	}

	return &enrollment, nil
}

// ListEnrollments returns all courses the user has joined. Callers
// sort if they need an order.
func (s *EnrollmentService) ListEnrollments(userID uint) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
