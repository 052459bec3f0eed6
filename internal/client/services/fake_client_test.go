package services

import (
	"context"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
)

// fakeClient records calls and returns canned results.
type fakeClient struct {
	token    string
	authErr  error
	register []client.RegisterRequest
	login    []client.LoginRequest

	posts     []models.Post
	post      *models.Post
	userPosts []models.Post
	listErr   error

	created   []models.PostForm
	updated   map[models.ID]models.PostForm
	deleted   []models.ID
	mutateErr error

	comments        []models.Comment
	newComments     []models.NewComment
	deletedComments []models.ID
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Register(_ context.Context, req client.RegisterRequest) (string, error) {
	f.register = append(f.register, req)
	return f.token, f.authErr
}

func (f *fakeClient) Login(_ context.Context, req client.LoginRequest) (string, error) {
	f.login = append(f.login, req)
	return f.token, f.authErr
}

func (f *fakeClient) Profile(context.Context) (*models.User, error) {
	return &models.User{ID: "u1"}, nil
}

func (f *fakeClient) ListPosts(context.Context) ([]models.Post, error) {
	return f.posts, f.listErr
}

func (f *fakeClient) GetPost(_ context.Context, id models.ID) (*models.Post, error) {
	return f.post, f.listErr
}

func (f *fakeClient) CreatePost(_ context.Context, form models.PostForm) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.created = append(f.created, form)
	return nil
}

func (f *fakeClient) UpdatePost(_ context.Context, id models.ID, form models.PostForm) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	if f.updated == nil {
		f.updated = map[models.ID]models.PostForm{}
	}
	f.updated[id] = form
	return nil
}

func (f *fakeClient) DeletePost(_ context.Context, id models.ID) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) ListUserPosts(context.Context, models.ID) ([]models.Post, error) {
	return f.userPosts, f.listErr
}

func (f *fakeClient) ListComments(context.Context, models.ID) ([]models.Comment, error) {
	return f.comments, f.listErr
}

func (f *fakeClient) CreateComment(_ context.Context, c models.NewComment) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.newComments = append(f.newComments, c)
	return nil
}

func (f *fakeClient) DeleteComment(_ context.Context, id models.ID) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deletedComments = append(f.deletedComments, id)
	return nil
}
