package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/client/thread"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

func TestCommentService_Thread(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fc := &fakeClient{comments: []models.Comment{
		{ID: "1", Content: "root"},
		{ID: "2", Content: "reply", ParentID: models.IDPtr("1")},
		{ID: "3", Content: "orphan", ParentID: models.IDPtr("404")},
		{ID: "7", Content: "loop", ParentID: models.IDPtr("8")},
		{ID: "8", Content: "loop", ParentID: models.IDPtr("7")},
	}}
	s := NewCommentService(fc, logging.NewZapLogger(zap.New(core)))

	forest, err := s.Thread(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, 2, thread.Count(forest))

	warn := logs.FilterMessage("unreachable replies hidden").All()
	require.Len(t, warn, 1)
	assert.Equal(t, int64(3), warn[0].ContextMap()["count"])
}

func TestCommentService_ThreadErrors(t *testing.T) {
	t.Run("cycle", func(t *testing.T) {
		fc := &fakeClient{comments: []models.Comment{
			{ID: "1"},
			{ID: "2", ParentID: models.IDPtr("1")},
			{ID: "1", ParentID: models.IDPtr("2")},
		}}
		_, err := NewCommentService(fc, logging.Nop()).Thread(context.Background(), "p1")
		require.ErrorIs(t, err, thread.ErrCycle)
	})

	t.Run("api", func(t *testing.T) {
		fc := &fakeClient{listErr: client.ErrUnavailable}
		_, err := NewCommentService(fc, logging.Nop()).Thread(context.Background(), "p1")
		require.ErrorIs(t, err, client.ErrUnavailable)
	})
}

func TestCommentService_Add(t *testing.T) {
	fc := &fakeClient{}
	s := NewCommentService(fc, logging.Nop())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, models.NewComment{Content: "hi", PostID: "p1"}))
	require.NoError(t, s.Add(ctx, models.NewComment{Content: "re", PostID: "p1", ParentID: models.IDPtr("1")}))

	require.ErrorIs(t, s.Add(ctx, models.NewComment{Content: "  \n", PostID: "p1"}), ErrInvalidForm)
	require.ErrorIs(t, s.Add(ctx, models.NewComment{Content: "x"}), ErrInvalidForm)

	require.Len(t, fc.newComments, 2)
	assert.Nil(t, fc.newComments[0].ParentID)
	assert.Equal(t, models.ID("1"), *fc.newComments[1].ParentID)
}

func TestCommentService_Delete(t *testing.T) {
	fc := &fakeClient{}
	s := NewCommentService(fc, logging.Nop())

	require.NoError(t, s.Delete(context.Background(), "c1"))
	assert.Equal(t, []models.ID{"c1"}, fc.deletedComments)

	fc.mutateErr = client.ErrUnavailable
	require.ErrorIs(t, s.Delete(context.Background(), "c1"), client.ErrUnavailable)
}
