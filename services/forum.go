package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"lingua/models"
)

// ForumService manages discussion posts and their comments
type ForumService struct {
	db *gorm.DB
}

func NewForumService(db *gorm.DB) *ForumService {
	return &ForumService{db: db}
}

// CreatePost publishes a new forum post
func (s *ForumService) CreatePost(userID uint, language, topic, title, content string) (*models.ForumPost, error) {
	fieldErrs := ValidationError{}
	if strings.TrimSpace(title) == "" {
		fieldErrs["title"] = "Title is required!"
	}
	if strings.TrimSpace(content) == "" {
		fieldErrs["content"] = "Content is required!"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	post := models.ForumPost{
		UserID:   userID,
		Language: language,
		Topic:    topic,
		Title:    title,
		Content:  content,
	}

	if err := s.db.Create(&post).Error; err != nil {
		log.Printf("Error creating forum post for user %d: %v", userID, err)
		return nil, err
	}
	return &post, nil
}

// ListPosts returns all posts, newest first, with authors resolved
func (s *ForumService) ListPosts() ([]models.ForumPost, error) {
	var posts []models.ForumPost
	err := s.db.
		Preload("Author").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost loads a post with its comments in posting order
func (s *ForumService) GetPost(postID uint) (*models.ForumPost, error) {
	var post models.ForumPost
	err := s.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at asc")
		}).
		Preload("Comments.Author").
		First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// AddComment replies to an existing post
func (s *ForumService) AddComment(userID, postID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ValidationError{"content": "Content is required!"}
	}

	var post models.ForumPost
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		log.Printf("Error adding comment to post %d: %v", postID, err)
		return nil, err
	}
	return &comment, nil
}

// DeletePost removes a post and its comments. Only the author may
// delete; the comment cleanup rides in the same transaction.
func (s *ForumService) DeletePost(userID, postID uint) error {
	var post models.ForumPost
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if post.UserID != userID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
