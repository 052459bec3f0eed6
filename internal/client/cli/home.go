package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
)

// Home lists published posts. Any arguments are joined into a search term
// matched against titles and contents.
func (a *App) Home(ctx context.Context, args []string) error {
	search := strings.Join(args, " ")

	posts, err := a.posts.Published(ctx, search)
	if err != nil {
		return a.fail(ctx, err, "Could not load posts.", "home: fetch posts")
	}

	a.navigate(ViewHome)
	if search != "" {
		a.render.Notice(fmt.Sprintf("Results for %q", search))
	}
	a.render.Posts(posts)
	return nil
}

// Show opens a post with its comment thread. Unpublished posts are only
// shown to their author.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("show <postID>")
	}
	id := models.ID(args[0])

	post, err := a.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			a.render.Error("Post not found.")
			return err
		}
		return a.fail(ctx, err, "Could not load the post.", "show: fetch post", "post_id", id)
	}
	if !a.canSee(post) {
		a.render.Error("Post not found.")
		return client.ErrNotFound
	}

	a.navigate(ViewPost)
	a.postID = post.ID
	if a.postID.IsZero() {
		a.postID = id
	}
	a.render.PostDetail(post)
	return a.loadThread(ctx)
}

func (a *App) canSee(p *models.Post) bool {
	if p.IsPublished {
		return true
	}
	if !a.isLoggedIn() {
		return false
	}
	u := a.session.CurrentUser()
	return u != nil && u.ID == p.AuthorID
}

// Nav prints the navigation bar.
func (a *App) Nav(ctx context.Context) error {
	var user *models.User
	if a.isLoggedIn() {
		user = a.session.CurrentUser()
	}
	a.render.Navbar(user)
	return nil
}
