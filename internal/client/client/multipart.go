package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/blogsapp/internal/client/models"
)

// encodePostForm builds the multipart/form-data body of a post create or
// update: title, content, status, isPublished, authorId and, when
// ThumbnailPath is set, a "thumbnail" file part.
func encodePostForm(form models.PostForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"title", form.Title},
		{"content", form.Content},
		{"status", string(form.Status)},
		{"isPublished", strconv.FormatBool(form.IsPublished)},
		{"authorId", form.AuthorID.String()},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}

	if form.ThumbnailPath != "" {
		if err := writeThumbnail(w, form.ThumbnailPath); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func writeThumbnail(w *multipart.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read thumbnail: %w", err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="thumbnail"; filename=%q`, filepath.Base(path)))
	h.Set("Content-Type", mimetype.Detect(data).String())

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create thumbnail part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write thumbnail: %w", err)
	}
	return nil
}
