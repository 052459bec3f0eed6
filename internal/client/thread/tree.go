// Package thread turns the flat comment list of a post into a forest of
// replies.
package thread

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogsapp/internal/client/models"
)

// ErrCycle is returned when a comment reached from a top-level comment
// appears among its own ancestors, which would make the thread infinitely
// deep.
var ErrCycle = errors.New("comment thread contains a cycle")

// Node is a comment together with its direct replies.
type Node struct {
	models.Comment
	Children []*Node
}

// Build arranges comments into trees. Roots are the comments without a
// parent, in input order; the children of a node are the comments naming
// it as parent, also in input order. Comments no root leads to are left
// out (see Orphans).
func Build(comments []models.Comment) ([]*Node, error) {
	b := builder{
		comments: comments,
		children: make(map[models.ID][]int, len(comments)),
		onPath:   make(map[models.ID]bool),
	}

	var roots []int
	for i, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, i)
			continue
		}
		b.children[*c.ParentID] = append(b.children[*c.ParentID], i)
	}

	forest := make([]*Node, 0, len(roots))
	for _, i := range roots {
		n, err := b.node(i)
		if err != nil {
			return nil, err
		}
		forest = append(forest, n)
	}
	return forest, nil
}

type builder struct {
	comments []models.Comment
	children map[models.ID][]int
	// ids of the ancestors of the node being built
	onPath map[models.ID]bool
}

func (b *builder) node(i int) (*Node, error) {
	c := b.comments[i]
	if b.onPath[c.ID] {
		return nil, fmt.Errorf("%w: comment %s is its own ancestor", ErrCycle, c.ID)
	}
	b.onPath[c.ID] = true
	defer delete(b.onPath, c.ID)

	replies := b.children[c.ID]
	n := &Node{Comment: c, Children: make([]*Node, 0, len(replies))}
	for _, j := range replies {
		child, err := b.node(j)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// Orphans returns the replies no top-level comment leads to, in input
// order: those whose parent is missing from the list, their descendants,
// and loops of replies that never reach a root. Build drops them.
func Orphans(comments []models.Comment) []models.Comment {
	children := make(map[models.ID][]int, len(comments))
	reached := make([]bool, len(comments))
	var queue []int
	for i, c := range comments {
		if c.ParentID == nil {
			reached[i] = true
			queue = append(queue, i)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], i)
	}

	for len(queue) > 0 {
		id := comments[queue[0]].ID
		queue = queue[1:]
		for _, j := range children[id] {
			if !reached[j] {
				reached[j] = true
				queue = append(queue, j)
			}
		}
	}

	var out []models.Comment
	for i, ok := range reached {
		if !ok {
			out = append(out, comments[i])
		}
	}
	return out
}

// Walk visits every node depth-first in display order. depth is 0 for roots.
// Returning false from fn stops the walk.
func Walk(forest []*Node, fn func(n *Node, depth int) bool) {
	var visit func(nodes []*Node, depth int) bool
	visit = func(nodes []*Node, depth int) bool {
		for _, n := range nodes {
			if !fn(n, depth) || !visit(n.Children, depth+1) {
				return false
			}
		}
		return true
	}
	visit(forest, 0)
}

// Find returns the first node with the given id, or nil.
func Find(forest []*Node, id models.ID) *Node {
	var found *Node
	Walk(forest, func(n *Node, _ int) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the number of comments in the forest.
func Count(forest []*Node) int {
	total := 0
	Walk(forest, func(*Node, int) bool {
		total++
		return true
	})
	return total
}
