package models

import "encoding/json"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

type Post struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Status      PostStatus `json:"status"`
	IsPublished bool       `json:"isPublished"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	AuthorID    ID         `json:"authorId"`
}

func (p *Post) UnmarshalJSON(b []byte) error {
	type plain Post
	var aux struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = Post(aux.plain)
	if p.ID.IsZero() {
		p.ID = aux.MongoID
	}
	return nil
}

// PostForm is the editable part of a post as sent to the create and update
// endpoints. ThumbnailPath names a local image file to upload, if any.
type PostForm struct {
	Title         string     `validate:"notblank"`
	Content       string     `validate:"notblank"`
	Status        PostStatus `validate:"oneof=DRAFT PUBLISHED"`
	IsPublished   bool
	AuthorID      ID
	ThumbnailPath string
}

// NewPostForm returns the form used for a fresh post: a draft, not published,
// without a thumbnail.
func NewPostForm(authorID ID) PostForm {
	return PostForm{Status: PostStatusDraft, AuthorID: authorID}
}

// EditForm prefills a form from an existing post. The thumbnail is not
// carried over; an empty ThumbnailPath leaves the stored one alone.
func (p Post) EditForm(authorID ID) PostForm {
	return PostForm{
		Title:       p.Title,
		Content:     p.Content,
		Status:      p.Status,
		IsPublished: p.IsPublished,
		AuthorID:    authorID,
	}
}
