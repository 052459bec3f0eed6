package client

import (
	"context"

	"github.com/dmitrijs2005/blogsapp/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	Profile(ctx context.Context) (*models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id models.ID) (*models.Post, error)
	CreatePost(ctx context.Context, form models.PostForm) error
	UpdatePost(ctx context.Context, id models.ID, form models.PostForm) error
	DeletePost(ctx context.Context, id models.ID) error
	ListUserPosts(ctx context.Context, userID models.ID) ([]models.Post, error)

	ListComments(ctx context.Context, postID models.ID) ([]models.Comment, error)
	CreateComment(ctx context.Context, c models.NewComment) error
	DeleteComment(ctx context.Context, id models.ID) error
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
