package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/blogsapp/internal/client/config"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/client/render"
	"github.com/dmitrijs2005/blogsapp/internal/client/services"
	"github.com/dmitrijs2005/blogsapp/internal/client/session"
	"github.com/dmitrijs2005/blogsapp/internal/client/thread"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

type fakeSession struct {
	user *models.User

	// profile becomes the current user on a successful Login.
	profile    *models.User
	loginToken string
	loginErr   error
	logoutErr  error
	expired    bool
	info       session.Info
	infoErr    error
}

func (f *fakeSession) Login(_ context.Context, token string) error {
	f.loginToken = token
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = f.profile
	return nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.user = nil
	return f.logoutErr
}

func (f *fakeSession) Expire(context.Context) {
	f.expired = true
	f.user = nil
}

func (f *fakeSession) IsAuthenticated() bool { return f.user != nil }

func (f *fakeSession) CurrentUser() *models.User {
	if f.user == nil {
		return nil
	}
	u := *f.user
	return &u
}

func (f *fakeSession) Info(context.Context) (session.Info, error) {
	if f.infoErr != nil {
		return session.Info{}, f.infoErr
	}
	info := f.info
	info.User = f.CurrentUser()
	return info, nil
}

type fakeAuthService struct {
	loginForm    services.LoginForm
	registerForm services.RegisterForm
	token        string
	err          error
}

func (f *fakeAuthService) Login(_ context.Context, form services.LoginForm) (string, error) {
	f.loginForm = form
	return f.token, f.err
}

func (f *fakeAuthService) Register(_ context.Context, form services.RegisterForm) (string, error) {
	f.registerForm = form
	return f.token, f.err
}

type savedPost struct {
	id   models.ID
	form models.PostForm
}

type fakePostService struct {
	posts   []models.Post
	listErr error

	post   *models.Post
	getErr error

	saved   []savedPost
	saveErr error

	deleted   []models.ID
	deleteErr error
}

func (f *fakePostService) Published(_ context.Context, search string) ([]models.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return services.Search(services.FilterPublished(f.posts), search), nil
}

func (f *fakePostService) Owned(_ context.Context, userID models.ID) ([]models.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return services.FilterByAuthor(f.posts, userID), nil
}

func (f *fakePostService) ByUser(ctx context.Context, userID models.ID) ([]models.Post, error) {
	return f.Owned(ctx, userID)
}

func (f *fakePostService) Get(context.Context, models.ID) (*models.Post, error) {
	return f.post, f.getErr
}

func (f *fakePostService) Save(_ context.Context, id models.ID, form models.PostForm) error {
	f.saved = append(f.saved, savedPost{id: id, form: form})
	return f.saveErr
}

func (f *fakePostService) Delete(_ context.Context, id models.ID) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeCommentService struct {
	forest    []*thread.Node
	threadErr error
	loads     int

	added  []models.NewComment
	addErr error

	deleted   []models.ID
	deleteErr error
}

func (f *fakeCommentService) Thread(context.Context, models.ID) ([]*thread.Node, error) {
	f.loads++
	return f.forest, f.threadErr
}

func (f *fakeCommentService) Add(_ context.Context, c models.NewComment) error {
	f.added = append(f.added, c)
	return f.addErr
}

func (f *fakeCommentService) Delete(_ context.Context, id models.ID) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type testEnv struct {
	app      *App
	out      *bytes.Buffer
	session  *fakeSession
	auth     *fakeAuthService
	posts    *fakePostService
	comments *fakeCommentService
}

var alice = &models.User{ID: "u1", Name: "Alice", Email: "alice@example.org"}

// newTestEnv builds an App over fakes. input feeds the interactive prompts;
// passwords are read from it as well.
func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()

	origTTY := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTTY })

	out := &bytes.Buffer{}
	env := &testEnv{
		out:      out,
		session:  &fakeSession{},
		auth:     &fakeAuthService{},
		posts:    &fakePostService{},
		comments: &fakeCommentService{},
	}
	env.app = &App{
		config:   &config.Config{},
		logger:   logging.Nop(),
		session:  env.session,
		auth:     env.auth,
		posts:    env.posts,
		comments: env.comments,
		render:   render.New(out),
		reader:   rdr(input),
		out:      out,
		view:     ViewHome,
	}
	return env
}

func (e *testEnv) signIn(u *models.User) {
	c := *u
	e.session.user = &c
	e.session.profile = &c
}
