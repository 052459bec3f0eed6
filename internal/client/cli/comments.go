package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/client/services"
	"github.com/dmitrijs2005/blogsapp/internal/client/thread"
)

// loadThread fetches and renders the comments of the open post.
func (a *App) loadThread(ctx context.Context) error {
	forest, err := a.comments.Thread(ctx, a.postID)
	if err != nil {
		if errors.Is(err, thread.ErrCycle) {
			a.render.Error("Comments for this post are malformed and cannot be shown.")
			return err
		}
		return a.fail(ctx, err, "Could not load comments.", "fetch comments", "post_id", a.postID)
	}

	a.thread = forest
	a.render.Comments(forest)
	return nil
}

// Comment adds a top-level comment to the open post.
func (a *App) Comment(ctx context.Context) error {
	if err := a.requirePost(); err != nil {
		return err
	}
	if err := a.requireLogin("comment"); err != nil {
		return err
	}
	return a.postComment(ctx, "Write a comment", nil)
}

// Reply answers a comment of the open post.
func (a *App) Reply(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("reply <commentID>")
	}
	if err := a.requirePost(); err != nil {
		return err
	}
	if err := a.requireLogin("reply"); err != nil {
		return err
	}

	parent := thread.Find(a.thread, models.ID(args[0]))
	if parent == nil {
		a.render.Error(fmt.Sprintf("No comment %s on this post.", args[0]))
		return ErrUsage
	}
	return a.postComment(ctx, "Replying to "+parent.AuthorName(), models.IDPtr(parent.ID))
}

func (a *App) postComment(ctx context.Context, prompt string, parentID *models.ID) error {
	text, err := getMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	postID := a.postID
	err = a.comments.Add(ctx, models.NewComment{Content: text, PostID: postID, ParentID: parentID})
	if err != nil {
		if errors.Is(err, services.ErrInvalidForm) {
			a.render.Error("Comment cannot be empty.")
			return err
		}
		return a.fail(ctx, err, "Could not post your comment.", "add comment", "post_id", postID)
	}
	return a.loadThread(ctx)
}

// Uncomment deletes a comment from the open post. The server decides
// whether the user may delete it.
func (a *App) Uncomment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("uncomment <commentID>")
	}
	if err := a.requirePost(); err != nil {
		return err
	}
	if err := a.requireLogin("delete comments"); err != nil {
		return err
	}

	id := models.ID(args[0])
	if err := a.comments.Delete(ctx, id); err != nil {
		return a.fail(ctx, err, "Could not delete the comment.", "delete comment", "comment_id", id)
	}
	a.render.Notice("Comment deleted.")
	return a.loadThread(ctx)
}
