package siteindex

import (
	"regexp"
	"strconv"
	"strings"
)

// BreadcrumbSeparator joins ancestor names root-first in a breadcrumb.
const BreadcrumbSeparator = " → "

// UnsavedPagePrefix marks placeholder nodes the site editor registered but
// never saved. Their URLs resolve to nothing and get no breadcrumb.
const UnsavedPagePrefix = "$$"

// NavNode is one node registration parsed from the navigation document.
type NavNode struct {
	ID       int
	ParentID int
	Name     string
	URL      string
}

// navRecordRe matches dTree node registrations of the form
// d.add(id, parentID, "name", "url"). Escaped quotes inside the string
// fields are not supported; the generator never emits them.
var navRecordRe = regexp.MustCompile(`d\.add\(\s*(\d+)\s*,\s*(-?\d+)\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"\s*\)`)

// ParseNavNodes extracts all node registrations from a navigation document.
// Registrations are matched anywhere in the text; surrounding markup is
// ignored, as is any text that fails the pattern. Duplicate ids are
// last-write-wins.
func ParseNavNodes(document string) map[int]NavNode {
	matches := navRecordRe.FindAllStringSubmatch(document, -1)

	nodes := make(map[int]NavNode, len(matches))
	for _, m := range matches {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parentID, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		nodes[id] = NavNode{
			ID:       id,
			ParentID: parentID,
			Name:     m[3],
			URL:      m[4],
		}
	}
	return nodes
}

// BuildBreadcrumbs parses a navigation document and resolves every linked
// node to its root-to-self display path.
//
// A node is a root when its parent id is absent from the table (the
// generator uses -1, but any dangling id terminates the walk). Cycles in
// malformed input terminate the walk at the repeated node; the partial path
// is kept. Nodes with an empty URL or an UnsavedPagePrefix URL contribute
// no mapping. When two nodes share a URL the last one processed wins, in
// map iteration order; the source format makes the same nondeterministic
// choice and pages in practice have a single tree entry.
func BuildBreadcrumbs(document string) map[string]string {
	nodes := ParseNavNodes(document)

	crumbs := make(map[string]string, len(nodes))
	for _, node := range nodes {
		if node.URL == "" || strings.HasPrefix(node.URL, UnsavedPagePrefix) {
			continue
		}
		crumbs[node.URL] = breadcrumbFor(node, nodes)
	}
	return crumbs
}

// breadcrumbFor walks the parent chain from node to its root and returns
// the names joined root-first.
func breadcrumbFor(node NavNode, nodes map[int]NavNode) string {
	var names []string
	visited := make(map[int]bool)

	cur, ok := node, true
	for ok && !visited[cur.ID] {
		visited[cur.ID] = true
		names = append(names, cur.Name)
		cur, ok = nodes[cur.ParentID]
	}

	// Reverse to root-first order.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, BreadcrumbSeparator)
}
