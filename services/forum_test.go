package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/models"
)

func TestForumServiceCreateAndGetPost(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewForumService(db)
	user := createTestUser(t, db, "ana@example.com")

	post, err := svc.CreatePost(user.ID, "Spanish", "Grammar", "Ser vs Estar", "When do I use each?")
	require.NoError(t, err)

	got, err := svc.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ser vs Estar", got.Title)
	require.NotNil(t, got.Author)
	assert.Equal(t, "ana@example.com", got.Author.Email)

	_, err = svc.GetPost(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForumServiceCreatePostValidation(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewForumService(db)
	user := createTestUser(t, db, "ana@example.com")

	_, err := svc.CreatePost(user.ID, "", "", " ", "")
	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr, "title")
	assert.Contains(t, vErr, "content")
}

func TestForumServiceComments(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewForumService(db)
	author := createTestUser(t, db, "ana@example.com")
	commenter := createTestUser(t, db, "bo@example.com")

	post, err := svc.CreatePost(author.ID, "", "", "Hello", "First post")
	require.NoError(t, err)

	_, err = svc.AddComment(commenter.ID, post.ID, "Welcome!")
	require.NoError(t, err)
	_, err = svc.AddComment(author.ID, post.ID, "Thanks!")
	require.NoError(t, err)

	got, err := svc.GetPost(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "Welcome!", got.Comments[0].Content)
	assert.Equal(t, "Thanks!", got.Comments[1].Content)

	_, err = svc.AddComment(commenter.ID, 9999, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.AddComment(commenter.ID, post.ID, "  ")
	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestForumServiceDeletePost(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewForumService(db)
	author := createTestUser(t, db, "ana@example.com")
	stranger := createTestUser(t, db, "bo@example.com")

	post, err := svc.CreatePost(author.ID, "", "", "Hello", "First post")
	require.NoError(t, err)
	_, err = svc.AddComment(stranger.ID, post.ID, "Welcome!")
	require.NoError(t, err)

	// Only the author may delete
	err = svc.DeletePost(stranger.ID, post.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeletePost(author.ID, post.ID))

	_, err = svc.GetPost(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Comments went with the post
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count)
}
