package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/config"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/client/render"
	"github.com/dmitrijs2005/blogsapp/internal/client/repositories/settings"
	"github.com/dmitrijs2005/blogsapp/internal/client/services"
	"github.com/dmitrijs2005/blogsapp/internal/client/session"
	"github.com/dmitrijs2005/blogsapp/internal/client/storage"
	"github.com/dmitrijs2005/blogsapp/internal/client/thread"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrUsage       = errors.New("usage")
)

// View is the screen the user is currently on.
type View string

const (
	ViewHome      View = "home"
	ViewPost      View = "post"
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewDashboard View = "dashboard"
	ViewProfile   View = "profile"
)

// sessionStore is the part of session.Store the views rely on.
type sessionStore interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Expire(ctx context.Context)
	IsAuthenticated() bool
	CurrentUser() *models.User
	Info(ctx context.Context) (session.Info, error)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	session  sessionStore
	auth     services.AuthService
	posts    services.PostService
	comments services.CommentService
	render   *render.Renderer
	reader   *bufio.Reader
	out      io.Writer

	view   View
	postID models.ID
	thread []*thread.Node

	closers []func() error
}

// NewApp wires local storage, the API client, the session store and the
// services for an interactive session on stdin/stdout.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := storage.Open(ctx, cfg.StorePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.StorePath, "error", err)
		return nil, err
	}

	a, err := newApp(ctx, cfg, db, logger, os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.closers = append(a.closers, db.Close, logger.Sync)
	return a, nil
}

func newApp(ctx context.Context, cfg *config.Config, db *sql.DB, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	a := &App{
		config: cfg,
		logger: logger,
		render: render.New(out),
		reader: bufio.NewReader(in),
		out:    out,
		view:   ViewHome,
	}

	tokens := settings.NewTokenStore(db)
	api, err := client.NewHTTPClient(cfg.APIBaseURL, tokens,
		client.WithLogger(logger),
		client.WithUnauthorizedHandler(a.sessionExpired),
	)
	if err != nil {
		return nil, err
	}

	// a 401 while restoring the session arrives before a.session is set
	a.session = session.NewStore(ctx, tokens, api, logger)
	a.auth = services.NewAuthService(api, logger)
	a.posts = services.NewPostService(api, logger)
	a.comments = services.NewCommentService(api, logger)
	return a, nil
}

// Run shows the home page and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	_ = a.Nav(ctx)
	_ = a.Home(ctx, nil)
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases local storage and flushes the logger.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.IsAuthenticated()
}

// status is shown in the prompt: the current view and, when signed in, the
// user's name.
func (a *App) status() string {
	s := string(a.view)
	if a.view == ViewPost {
		s += " " + a.postID.String()
	}
	if a.isLoggedIn() {
		if u := a.session.CurrentUser(); u != nil {
			s += " @" + u.Name
		}
	}
	return s
}

func (a *App) navigate(v View) {
	a.view = v
	if v != ViewPost {
		a.postID = ""
		a.thread = nil
	}
}

// sessionExpired runs after the API rejected the token. The user is sent to
// the login view; the notice is only shown when a session was active.
func (a *App) sessionExpired(ctx context.Context) {
	wasSignedIn := a.isLoggedIn()
	if a.session != nil {
		a.session.Expire(ctx)
	}
	a.navigate(ViewLogin)
	if wasSignedIn {
		a.render.Error("Your session has expired. Please log in again.")
	}
}

// requireLogin sends anonymous users to the login view.
func (a *App) requireLogin(action string) error {
	if a.isLoggedIn() {
		return nil
	}
	a.navigate(ViewLogin)
	a.render.Notice(fmt.Sprintf("Please log in to %s. Type 'login' or 'register'.", action))
	return ErrNotLoggedIn
}

// requirePost checks that a post is open.
func (a *App) requirePost() error {
	if a.view == ViewPost && !a.postID.IsZero() {
		return nil
	}
	a.render.Error("Open a post first: show <postID>")
	return ErrUsage
}

func (a *App) usage(text string) error {
	a.render.Error("Usage: " + text)
	return ErrUsage
}

// fail logs err and tells the user what went wrong. A 401 has already been
// reported by sessionExpired, so it is only returned.
func (a *App) fail(ctx context.Context, err error, fallback, logMsg string, args ...any) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return err
	}
	a.logger.Error(ctx, logMsg, append(args, "error", err)...)
	a.render.Error(userMessage(err, fallback))
	return err
}

func userMessage(err error, fallback string) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "Server is unreachable. Please try again later."
	}
	return client.Message(err, fallback)
}
