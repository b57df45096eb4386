package services

import (
	"errors"

	"gorm.io/gorm"

	"lingua/models"
)

// CourseLevels are the level labels offered per language. Course
// ordering sorts these lexicographically, not pedagogically.
var CourseLevels = []string{"Beginner", "Intermediate", "Advanced"}

// ContentService resolves the Course → Module → Lesson hierarchy
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// ListCourses returns all courses ordered by (language, level)
// ascending, lexicographic on the level label.
func (s *ContentService) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("language asc, level asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourseDetail loads the course with its modules sorted by order and
// each module's lessons sorted by lesson number. Modules and lessons
// are batch-loaded alongside the course, avoiding per-module queries.
func (s *ContentService) GetCourseDetail(courseID uint) (*models.Course, error) {
	var course models.Course
	err := s.db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("modules.order_index asc")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.lesson_number asc")
		}).
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// GetLesson loads a lesson with its parent module and course resolved
func (s *ContentService) GetLesson(lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	err := s.db.
		Preload("Quizzes").
		Preload("Module.Course").
		First(&lesson, lessonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

// ListLanguages returns the distinct course languages with the level
// labels offered for each, for the public languages endpoint.
func (s *ContentService) ListLanguages() ([]LanguageInfo, error) {
	var languages []string
	err := s.db.Model(&models.Course{}).
		Distinct("language").
		Order("language asc").
		Pluck("language", &languages).Error
	if err != nil {
		return nil, err
	}

	infos := make([]LanguageInfo, 0, len(languages))
	for _, name := range languages {
		infos = append(infos, LanguageInfo{Name: name, Levels: CourseLevels})
	}
	return infos, nil
}

// LanguageInfo is one entry of the languages listing
type LanguageInfo struct {
	Name   string   `json:"name"`
	Levels []string `json:"levels"`
}

// CoursesByLanguage returns courses matching a language name,
// case-normalized, as the reduced read-API shape.
func (s *ContentService) CoursesByLanguage(language string) ([]CourseSummary, error) {
	var courses []models.Course
	err := s.db.
		Where("LOWER(language) = LOWER(?)", language).
		Order("level asc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		summaries = append(summaries, CourseSummary{
			ID:          c.ID,
			Title:       c.Title,
			Level:       c.Level,
			Description: c.Description,
		})
	}
	return summaries, nil
}

// CourseSummary is the reduced course shape of the read API
type CourseSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Level       string `json:"level"`
	Description string `json:"description"`
}
