package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

// AuthService exchanges credentials for a bearer token. Persisting the
// token and loading the profile is the session store's job.
type AuthService interface {
	Register(ctx context.Context, form RegisterForm) (string, error)
	Login(ctx context.Context, form LoginForm) (string, error)
}

type authService struct {
	client client.Client
	logger logging.Logger
}

func NewAuthService(c client.Client, logger logging.Logger) AuthService {
	return &authService{client: c, logger: logger}
}

func (s *authService) Register(ctx context.Context, form RegisterForm) (string, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if err := validateForm(form); err != nil {
		return "", err
	}

	token, err := s.client.Register(ctx, client.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		s.logger.Warn(ctx, "registration failed", "email", form.Email, "error", err)
		return "", err
	}
	s.logger.Info(ctx, "registered", "email", form.Email)
	return token, nil
}

func (s *authService) Login(ctx context.Context, form LoginForm) (string, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := validateForm(form); err != nil {
		return "", err
	}

	token, err := s.client.Login(ctx, client.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		s.logger.Warn(ctx, "login failed", "email", form.Email, "error", err)
		return "", err
	}
	return token, nil
}
