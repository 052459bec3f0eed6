package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/blogsapp/internal/client/services"
	"github.com/dmitrijs2005/blogsapp/internal/common"
)

// Input helpers are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getDefault    = GetDefault
	confirm       = Confirm
)

// Login prompts for email and password, exchanges them for a token and
// signs the session in. On success the home page is shown.
func (a *App) Login(ctx context.Context) error {
	a.navigate(ViewLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.auth.Login(ctx, services.LoginForm{Email: email, Password: string(password)})
	if err != nil {
		a.render.Error(authMessage(err, "Login failed"))
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		a.logger.Error(ctx, "login: fetch profile", "error", err)
		a.navigate(ViewLogin)
		a.render.Error("Login failed")
		return err
	}

	a.render.Notice("Welcome back, " + a.session.CurrentUser().Name + "!")
	return a.Home(ctx, nil)
}

// Register prompts for name, email and password, creates the account and
// signs the new user in straight to the dashboard.
func (a *App) Register(ctx context.Context) error {
	a.navigate(ViewRegister)

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.auth.Register(ctx, services.RegisterForm{Name: name, Email: email, Password: string(password)})
	if err != nil {
		a.render.Error(authMessage(err, "Registration failed. Please try again."))
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		a.logger.Error(ctx, "register: fetch profile", "error", err)
		a.navigate(ViewLogin)
		a.render.Error("Account created, but signing in failed. Please log in.")
		return err
	}

	a.render.Notice("Account created. Welcome, " + name + "!")
	return a.Dashboard(ctx)
}

// Logout forgets the token and the current user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout", "error", err)
		a.render.Error("Could not clear the saved session.")
		return err
	}
	a.navigate(ViewLogin)
	a.render.Notice("You have been logged out.")
	return nil
}

// Profile shows the signed-in user's details and their posts.
func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin("see your profile"); err != nil {
		return err
	}

	info, err := a.session.Info(ctx)
	if err != nil {
		a.logger.Error(ctx, "profile: session info", "error", err)
		a.render.Error("Could not load your profile.")
		return err
	}

	posts, err := a.posts.ByUser(ctx, info.User.ID)
	if err != nil {
		return a.fail(ctx, err, "Could not load your posts.", "profile: fetch posts", "user_id", info.User.ID)
	}

	a.navigate(ViewProfile)
	a.render.Profile(info, posts)
	return nil
}

// authMessage turns a login or registration failure into the text shown to
// the user.
func authMessage(err error, fallback string) string {
	var fe *services.FormError
	if errors.As(err, &fe) {
		if allRequired(fe) {
			return "All fields are required."
		}
		return formMessage(fe)
	}
	return userMessage(err, fallback)
}

func allRequired(fe *services.FormError) bool {
	for _, f := range fe.Fields {
		if f.Problem != "is required" {
			return false
		}
	}
	return len(fe.Fields) > 0
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
