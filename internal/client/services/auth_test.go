package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

func TestAuthService_Register(t *testing.T) {
	fc := &fakeClient{token: "tok"}
	s := NewAuthService(fc, logging.Nop())

	token, err := s.Register(context.Background(), RegisterForm{Name: " Ann ", Email: " ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, []client.RegisterRequest{{Name: "Ann", Email: "ann@example.com", Password: "pw"}}, fc.register)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	fc := &fakeClient{token: "tok"}
	s := NewAuthService(fc, logging.Nop())

	_, err := s.Register(context.Background(), RegisterForm{Name: "  ", Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidForm)

	var fe *FormError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []FieldError{
		{Field: "name", Problem: "is required"},
		{Field: "email", Problem: "must be a valid email address"},
		{Field: "password", Problem: "is required"},
	}, fe.Fields)
	assert.Empty(t, fc.register, "nothing is sent for an invalid form")
}

func TestAuthService_Login(t *testing.T) {
	fc := &fakeClient{token: "tok"}
	s := NewAuthService(fc, logging.Nop())

	token, err := s.Login(context.Background(), LoginForm{Email: "ann@example.com ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, []client.LoginRequest{{Email: "ann@example.com", Password: "pw"}}, fc.login)
}

func TestAuthService_LoginErrors(t *testing.T) {
	t.Run("empty form", func(t *testing.T) {
		fc := &fakeClient{}
		_, err := NewAuthService(fc, logging.Nop()).Login(context.Background(), LoginForm{})
		require.ErrorIs(t, err, ErrInvalidForm)
		assert.Contains(t, err.Error(), "email is required")
		assert.Empty(t, fc.login)
	})

	t.Run("server rejects", func(t *testing.T) {
		fc := &fakeClient{authErr: &client.APIError{StatusCode: 400, Message: "Invalid credentials"}}
		_, err := NewAuthService(fc, logging.Nop()).Login(context.Background(), LoginForm{Email: "a@b.co", Password: "x"})
		require.ErrorIs(t, err, client.ErrRequest)
		assert.Equal(t, "Invalid credentials", client.Message(err, "Login failed"))
	})
}
