package cli

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/client/services"
)

// Dashboard lists the signed-in user's posts, drafts included.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.requireLogin("open your dashboard"); err != nil {
		return err
	}
	user := a.session.CurrentUser()

	posts, err := a.posts.Owned(ctx, user.ID)
	if err != nil {
		return a.fail(ctx, err, "Could not load your posts.", "dashboard: fetch posts", "user_id", user.ID)
	}

	a.navigate(ViewDashboard)
	a.render.Dashboard(user, posts)
	return nil
}

// Create writes a new post and returns to the dashboard.
func (a *App) Create(ctx context.Context) error {
	if err := a.requireLogin("write posts"); err != nil {
		return err
	}
	user := a.session.CurrentUser()

	form := models.NewPostForm(user.ID)
	if err := a.fillPostForm(&form); err != nil {
		return err
	}
	if err := a.savePost(ctx, "", form); err != nil {
		return err
	}

	a.render.Notice("Post created.")
	return a.Dashboard(ctx)
}

// Edit changes one of the user's posts. Empty answers keep the current
// values.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("edit <postID>")
	}
	if err := a.requireLogin("edit posts"); err != nil {
		return err
	}
	user := a.session.CurrentUser()
	id := models.ID(args[0])

	post, err := a.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			a.render.Error("Post not found.")
			return err
		}
		return a.fail(ctx, err, "Could not load the post.", "edit: fetch post", "post_id", id)
	}
	if post.AuthorID != user.ID {
		a.render.Error("You can only edit your own posts.")
		return ErrUsage
	}

	form := post.EditForm(user.ID)
	if err := a.fillPostForm(&form); err != nil {
		return err
	}
	if err := a.savePost(ctx, id, form); err != nil {
		return err
	}

	a.render.Notice("Post updated.")
	return a.Dashboard(ctx)
}

// Delete removes a post after the user confirms.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete <postID>")
	}
	if err := a.requireLogin("delete posts"); err != nil {
		return err
	}
	id := models.ID(args[0])

	ok, err := confirm(a.reader, "Are you sure you want to delete this post?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.render.Notice("Cancelled.")
		return nil
	}

	if err := a.posts.Delete(ctx, id); err != nil {
		return a.fail(ctx, err, "Could not delete the post.", "delete post", "post_id", id)
	}

	a.render.Notice("Post deleted.")
	return a.Dashboard(ctx)
}

// fillPostForm asks for every post field, offering the form's values as
// defaults.
func (a *App) fillPostForm(form *models.PostForm) error {
	title, err := getDefault(a.reader, "Title", form.Title, a.out)
	if err != nil {
		return err
	}

	prompt := "Content"
	if form.Content != "" {
		prompt += " (leave empty to keep the current text)"
	}
	content, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = form.Content
	}

	status, err := getDefault(a.reader, "Status (DRAFT or PUBLISHED)", string(form.Status), a.out)
	if err != nil {
		return err
	}

	published, err := getDefault(a.reader, "Published? (y/n)", yesNo(form.IsPublished), a.out)
	if err != nil {
		return err
	}

	thumbnail, err := getSimpleText(a.reader, "Thumbnail image path (optional)", a.out)
	if err != nil {
		return err
	}

	form.Title = strings.TrimSpace(title)
	form.Content = content
	form.Status = models.PostStatus(strings.ToUpper(strings.TrimSpace(status)))
	form.IsPublished = isYes(published)
	form.ThumbnailPath = thumbnail
	return nil
}

func (a *App) savePost(ctx context.Context, id models.ID, form models.PostForm) error {
	err := a.posts.Save(ctx, id, form)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrInvalidForm):
		a.render.Error(formMessage(err))
		return err
	case errors.Is(err, services.ErrNotImage):
		a.render.Error("Thumbnail must be an image file.")
		return err
	case errors.Is(err, fs.ErrNotExist):
		a.render.Error("Thumbnail file not found.")
		return err
	}
	return a.fail(ctx, err, "Could not save the post.", "save post", "post_id", id)
}

func formMessage(err error) string {
	var fe *services.FormError
	if !errors.As(err, &fe) {
		return "Please check the form."
	}
	msgs := make([]string, 0, len(fe.Fields))
	for _, f := range fe.Fields {
		msgs = append(msgs, f.Field+" "+f.Problem)
	}
	return capitalize(strings.Join(msgs, "; ")) + "."
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true":
		return true
	}
	return false
}
