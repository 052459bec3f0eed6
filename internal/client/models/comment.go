package models

import (
	"bytes"
	"encoding/json"
)

// AnonymousAuthor is displayed for comments without an author name.
const AnonymousAuthor = "Anonymous"

type Author struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts either an author object or a bare author id.
func (a *Author) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return a.ID.UnmarshalJSON(b)
	}

	type plain Author
	var aux struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*a = Author(aux.plain)
	if a.ID.IsZero() {
		a.ID = aux.MongoID
	}
	return nil
}

type Comment struct {
	ID       ID      `json:"id"`
	Content  string  `json:"content"`
	Author   *Author `json:"author,omitempty"`
	PostID   ID      `json:"postId"`
	ParentID *ID     `json:"parentId"`
}

func (c *Comment) UnmarshalJSON(b []byte) error {
	type plain Comment
	var aux struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*c = Comment(aux.plain)
	if c.ID.IsZero() {
		c.ID = aux.MongoID
	}
	return nil
}

// AuthorName returns the author's display name, falling back to
// AnonymousAuthor.
func (c Comment) AuthorName() string {
	if c.Author == nil || c.Author.Name == "" {
		return AnonymousAuthor
	}
	return c.Author.Name
}

// IsReply reports whether the comment answers another comment.
func (c Comment) IsReply() bool {
	return c.ParentID != nil
}

// NewComment is the body of POST /api/comments. A nil ParentID is sent as
// null and creates a top-level comment.
type NewComment struct {
	Content  string `json:"content" validate:"notblank"`
	PostID   ID     `json:"postId" validate:"required"`
	ParentID *ID    `json:"parentId"`
}
