package services

import (
	"context"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/client/thread"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

type CommentService interface {
	// Thread loads the comments of a post arranged as reply trees.
	Thread(ctx context.Context, postID models.ID) ([]*thread.Node, error)
	Add(ctx context.Context, c models.NewComment) error
	Delete(ctx context.Context, id models.ID) error
}

type commentService struct {
	client client.Client
	logger logging.Logger
}

func NewCommentService(c client.Client, logger logging.Logger) CommentService {
	return &commentService{client: c, logger: logger}
}

func (s *commentService) Thread(ctx context.Context, postID models.ID) ([]*thread.Node, error) {
	comments, err := s.client.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	if orphans := thread.Orphans(comments); len(orphans) > 0 {
		s.logger.Warn(ctx, "unreachable replies hidden", "post_id", postID, "count", len(orphans))
	}

	forest, err := thread.Build(comments)
	if err != nil {
		s.logger.Error(ctx, "build comment thread", "post_id", postID, "error", err)
		return nil, err
	}
	return forest, nil
}

func (s *commentService) Add(ctx context.Context, c models.NewComment) error {
	if err := validateForm(c); err != nil {
		return err
	}
	if err := s.client.CreateComment(ctx, c); err != nil {
		return err
	}
	s.logger.Debug(ctx, "comment added", "post_id", c.PostID, "reply", c.ParentID != nil)
	return nil
}

func (s *commentService) Delete(ctx context.Context, id models.ID) error {
	if err := s.client.DeleteComment(ctx, id); err != nil {
		return err
	}
	s.logger.Debug(ctx, "comment deleted", "comment_id", id)
	return nil
}
