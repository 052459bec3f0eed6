// Package render draws the client's views as styled terminal text.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/client/session"
	"github.com/dmitrijs2005/blogsapp/internal/client/thread"
)

// excerptLen is how many characters of a post body the home cards show.
const excerptLen = 120

type Renderer struct {
	w io.Writer

	brand   lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	label   lipgloss.Style
	card    lipgloss.Style
	avatar  lipgloss.Style
	author  lipgloss.Style
	reply   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	errText lipgloss.Style
}

func New(w io.Writer) *Renderer {
	return &Renderer{
		w:       w,
		brand:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		title:   lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		avatar:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		author:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		reply:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).PaddingLeft(1).MarginLeft(1),
		good:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.w, s)
}

// Navbar shows the brand, the available destinations and, when signed in,
// the user's avatar initial.
func (r *Renderer) Navbar(user *models.User) {
	links := []string{"home", "login", "register"}
	if user != nil {
		links = []string{"home", "dashboard", "profile", "logout"}
	}

	parts := []string{r.brand.Render("BlogsApp"), r.muted.Render(strings.Join(links, " · "))}
	if user != nil {
		parts = append(parts, r.avatar.Render(user.Initial()))
	}
	r.println(strings.Join(parts, "  "))
}

// Error prints a message meant for the user.
func (r *Renderer) Error(msg string) {
	r.println(r.errText.Render(msg))
}

// Notice prints an informational line.
func (r *Renderer) Notice(msg string) {
	r.println(r.muted.Render(msg))
}

// Posts renders the home page cards.
func (r *Renderer) Posts(posts []models.Post) {
	if len(posts) == 0 {
		r.Notice("No posts found.")
		return
	}
	for _, p := range posts {
		thumb := r.muted.Render("No Image")
		if p.Thumbnail != "" {
			thumb = r.label.Render("Image: ") + p.Thumbnail
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			r.title.Render(p.Title),
			Excerpt(p.Content, excerptLen),
			thumb,
			r.muted.Render("show "+p.ID.String()),
		)
		r.println(r.card.Render(body))
	}
}

// PostDetail renders one post in full.
func (r *Renderer) PostDetail(p *models.Post) {
	lines := []string{r.title.Render(p.Title)}
	if p.Thumbnail != "" {
		lines = append(lines, r.label.Render("Image: ")+p.Thumbnail)
	}
	lines = append(lines, "", p.Content)
	r.println(r.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

// Comments renders the reply trees, each reply nested inside its parent.
func (r *Renderer) Comments(forest []*thread.Node) {
	r.println(r.title.Render("Comments") + " " + r.muted.Render(fmt.Sprintf("(%d)", thread.Count(forest))))
	if len(forest) == 0 {
		r.Notice("No comments yet.")
		return
	}
	for _, n := range forest {
		r.println(r.comment(n))
	}
}

func (r *Renderer) comment(n *thread.Node) string {
	header := r.author.Render(n.AuthorName()) + " " + r.muted.Render("#"+n.ID.String())
	if n.IsReply() {
		header += " " + r.muted.Render("in reply to #"+n.ParentID.String())
	}
	blocks := []string{header, n.Content}
	for _, child := range n.Children {
		blocks = append(blocks, r.reply.Render(r.comment(child)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Dashboard renders the signed-in user's posts as a table.
func (r *Renderer) Dashboard(user *models.User, posts []models.Post) {
	r.println(r.title.Render("Dashboard") + " " + r.muted.Render(user.Name))
	if len(posts) == 0 {
		r.Notice("You have no posts yet. Type 'create' to write one.")
		return
	}

	r.println(r.label.Render(fmt.Sprintf("%-10s %-32s %-10s %s", "ID", "TITLE", "STATUS", "PUBLISHED")))
	for _, p := range posts {
		published := r.bad.Render("No")
		if p.IsPublished {
			published = r.good.Render("Yes")
		}
		r.println(fmt.Sprintf("%-10s %-32s %-10s %s", p.ID, Excerpt(p.Title, 30), p.Status, published))
	}
}

// Profile renders the user card, session details and the user's posts.
func (r *Renderer) Profile(info session.Info, posts []models.Post) {
	lines := []string{
		r.avatar.Render(info.User.Initial()) + " " + r.title.Render(info.User.Name),
		r.label.Render("Email: ") + info.User.Email,
	}
	if !info.SignedInAt.IsZero() {
		lines = append(lines, r.label.Render("Signed in: ")+info.SignedInAt.Local().Format(time.DateTime))
	}
	if !info.ExpiresAt.IsZero() {
		lines = append(lines, r.label.Render("Session expires: ")+info.ExpiresAt.Local().Format(time.DateTime))
	}
	r.println(r.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))

	r.println(r.title.Render("My Posts"))
	if len(posts) == 0 {
		r.Notice("No posts yet.")
		return
	}
	for _, p := range posts {
		r.println(fmt.Sprintf("%s  %s", r.muted.Render(p.ID.String()), p.Title))
	}
}

// Excerpt shortens s to at most n characters, adding "..." when cut.
func Excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
