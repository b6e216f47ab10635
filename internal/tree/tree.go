// Package tree builds the depth-annotated display hierarchy from
// `/`-segmented template names.
package tree

import (
	"strings"

	"github.com/mwestlund/promptdeck/internal/models"
)

// node is one trie entry. The arena addresses nodes by index; children
// keeps child indices in the order their segments were first introduced.
type node struct {
	label         string
	templateIndex *int
	children      []int
}

// BuildTreeItems groups templates into a trie keyed by the trimmed,
// non-empty `/` segments of each name, then flattens it with a pre-order
// traversal. Sibling order is insertion order, so the result is stable in
// template order rather than alphabetical. Segments that are empty after
// trimming are dropped, so "A//B" behaves like "A/B".
func BuildTreeItems(templates []models.Template) []models.TreeItem {
	arena := []node{{}} // index 0 is the root, never emitted

	for i, tmpl := range templates {
		cur := 0
		for _, seg := range strings.Split(tmpl.Name, "/") {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			cur = childOf(&arena, cur, seg)
		}
		if cur != 0 {
			idx := i
			arena[cur].templateIndex = &idx
		}
	}

	return flatten(arena)
}

// childOf returns the index of parent's child with the given label,
// appending a new node to the arena when none exists yet.
func childOf(arena *[]node, parent int, label string) int {
	for _, ci := range (*arena)[parent].children {
		if (*arena)[ci].label == label {
			return ci
		}
	}
	*arena = append(*arena, node{label: label})
	ci := len(*arena) - 1
	(*arena)[parent].children = append((*arena)[parent].children, ci)
	return ci
}

// flatten walks the arena iteratively in pre-order, tracking depth with an
// explicit stack.
func flatten(arena []node) []models.TreeItem {
	type frame struct {
		node  int
		depth int
	}

	var items []models.TreeItem
	var stack []frame
	root := arena[0]
	for i := len(root.children) - 1; i >= 0; i-- {
		stack = append(stack, frame{root.children[i], 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := arena[f.node]
		items = append(items, models.TreeItem{
			Label:         n.label,
			Depth:         f.depth,
			TemplateIndex: n.templateIndex,
		})
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n.children[i], f.depth + 1})
		}
	}
	return items
}
