package service

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture() (*fakeCommentRepo, *model.Post, CommentService) {
	comments := &fakeCommentRepo{}
	posts := &fakePostRepo{}
	post := posts.add(&model.Post{Title: "p"})
	return comments, post, NewCommentService(comments, posts)
}

func TestCreateCommentAndListByPost(t *testing.T) {
	_, post, svc := newCommentFixture()
	ctx := context.Background()

	id, err := svc.CreateComment(ctx, "a@x.com", &dto.CreateCommentDTO{PostID: post.ID.Hex(), Comment: "nice"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	list, err := svc.GetCommentsByPost(ctx, post.ID.Hex())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a@x.com", list[0].Email)
	assert.False(t, list[0].Reported)

	other, err := svc.GetCommentsByPost(ctx, "65a1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreateCommentUnknownPost(t *testing.T) {
	_, _, svc := newCommentFixture()
	_, err := svc.CreateComment(context.Background(), "a@x.com", &dto.CreateCommentDTO{PostID: "65a1b2c3d4e5f60718293a4b", Comment: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAttachFeedbackAlwaysReports(t *testing.T) {
	repo, post, svc := newCommentFixture()
	ctx := context.Background()
	id, err := svc.CreateComment(ctx, "a@x.com", &dto.CreateCommentDTO{PostID: post.ID.Hex(), Comment: "rude"})
	require.NoError(t, err)

	queue, err := svc.GetModerationQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	for _, fb := range []string{"offensive", "spam"} {
		_, err = svc.AttachFeedback(ctx, id, fb)
		require.NoError(t, err)
		assert.True(t, repo.comments[0].Reported)
	}
	assert.Equal(t, "spam", *repo.comments[0].Feedback)

	queue, err = svc.GetModerationQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 1)
}

func TestAttachActionLeavesReport(t *testing.T) {
	repo, post, svc := newCommentFixture()
	ctx := context.Background()
	id, err := svc.CreateComment(ctx, "a@x.com", &dto.CreateCommentDTO{PostID: post.ID.Hex(), Comment: "c"})
	require.NoError(t, err)

	_, err = svc.AttachAction(ctx, id, "warned")
	require.NoError(t, err)
	assert.Equal(t, "warned", *repo.comments[0].Action)
	assert.False(t, repo.comments[0].Reported)
	assert.Nil(t, repo.comments[0].Feedback)
}

func TestModerationUnknownComment(t *testing.T) {
	_, _, svc := newCommentFixture()
	_, err := svc.AttachFeedback(context.Background(), "65a1b2c3d4e5f60718293a4b", "x")
	assert.ErrorIs(t, err, ErrCommentNotFound)
	_, err = svc.AttachAction(context.Background(), "bad", "x")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
