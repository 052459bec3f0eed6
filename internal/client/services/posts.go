package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

type PostService interface {
	// Published lists published posts matching search (all when empty).
	Published(ctx context.Context, search string) ([]models.Post, error)
	// Owned lists the posts written by userID, drafts included.
	Owned(ctx context.Context, userID models.ID) ([]models.Post, error)
	// ByUser lists a user's posts as returned by the user posts endpoint.
	ByUser(ctx context.Context, userID models.ID) ([]models.Post, error)
	Get(ctx context.Context, id models.ID) (*models.Post, error)
	// Save creates a post when id is empty and updates post id otherwise.
	Save(ctx context.Context, id models.ID, form models.PostForm) error
	Delete(ctx context.Context, id models.ID) error
}

type postService struct {
	client client.Client
	logger logging.Logger
}

func NewPostService(c client.Client, logger logging.Logger) PostService {
	return &postService{client: c, logger: logger}
}

func (s *postService) Published(ctx context.Context, search string) ([]models.Post, error) {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return Search(FilterPublished(posts), search), nil
}

func (s *postService) Owned(ctx context.Context, userID models.ID) ([]models.Post, error) {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByAuthor(posts, userID), nil
}

func (s *postService) ByUser(ctx context.Context, userID models.ID) ([]models.Post, error) {
	return s.client.ListUserPosts(ctx, userID)
}

func (s *postService) Get(ctx context.Context, id models.ID) (*models.Post, error) {
	return s.client.GetPost(ctx, id)
}

func (s *postService) Save(ctx context.Context, id models.ID, form models.PostForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if form.ThumbnailPath != "" {
		if err := checkThumbnail(form.ThumbnailPath); err != nil {
			return err
		}
	}

	if id.IsZero() {
		if err := s.client.CreatePost(ctx, form); err != nil {
			return err
		}
		s.logger.Info(ctx, "post created", "title", form.Title, "status", form.Status)
		return nil
	}

	if err := s.client.UpdatePost(ctx, id, form); err != nil {
		return err
	}
	s.logger.Info(ctx, "post updated", "post_id", id, "status", form.Status)
	return nil
}

func (s *postService) Delete(ctx context.Context, id models.ID) error {
	if err := s.client.DeletePost(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "post deleted", "post_id", id)
	return nil
}

// checkThumbnail makes sure path is a readable image file.
func checkThumbnail(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("thumbnail: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotImage, path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("thumbnail: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("%w: %s is %s", ErrNotImage, path, mt.String())
	}
	return nil
}

// FilterPublished keeps the posts flagged as published. Status is not
// consulted; the isPublished flag alone decides.
func FilterPublished(posts []models.Post) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	return out
}

// FilterByAuthor keeps the posts whose author is userID.
func FilterByAuthor(posts []models.Post, userID models.ID) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.AuthorID == userID {
			out = append(out, p)
		}
	}
	return out
}

// Search keeps the posts whose title or content contains term, ignoring
// case. An empty term keeps everything.
func Search(posts []models.Post, term string) []models.Post {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return posts
	}

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Content), term) {
			out = append(out, p)
		}
	}
	return out
}
