package report

import (
	"sort"
	"strings"

	"github.com/alexferrari88/dirwalk/internal/walk"
)

const (
	treePrefixEntry    = "├── "
	treePrefixLast     = "└── "
	treePrefixContinue = "│   "
	treePrefixEmpty    = "    "
)

// treeNode is one path component of the tree built from a walk's recorded
// entries. Unlike a filesystem tree, it is built entirely from the Entry
// slice the walk already classified and folded, so it never re-reads the
// directory or re-consults excludes/pathspec.
type treeNode struct {
	name     string
	isDir    bool
	status   walk.Status
	children map[string]*treeNode
	order    []string
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, children: map[string]*treeNode{}}
}

func (n *treeNode) child(name string) *treeNode {
	c, ok := n.children[name]
	if !ok {
		c = newTreeNode(name)
		n.children[name] = c
		n.order = append(n.order, name)
	}
	return c
}

// BuildTree renders rootName and every entry's RelaPath as a box-drawing
// tree, directories first, then case-insensitive alphabetical, the same
// ordering rule the teacher's tree renderer used.
func BuildTree(rootName string, entries []walk.Entry) string {
	root := newTreeNode(rootName)
	for _, e := range entries {
		if e.RelaPath == "" {
			continue
		}
		parts := strings.Split(e.RelaPath, "/")
		cur := root
		for i, part := range parts {
			cur = cur.child(part)
			if i < len(parts)-1 || e.Kind.IsDir() {
				cur.isDir = true
			}
			cur.status = e.Status
		}
	}

	var b strings.Builder
	b.WriteString(root.name + "\n")
	writeTreeChildren(&b, root, "")
	return b.String()
}

func writeTreeChildren(b *strings.Builder, node *treeNode, prefix string) {
	sort.Slice(node.order, func(i, j int) bool {
		a, bNode := node.children[node.order[i]], node.children[node.order[j]]
		if a.isDir != bNode.isDir {
			return a.isDir
		}
		return strings.ToLower(node.order[i]) < strings.ToLower(node.order[j])
	})

	for i, name := range node.order {
		child := node.children[name]
		connector, nextPrefix := treePrefixEntry, treePrefixContinue
		if i == len(node.order)-1 {
			connector, nextPrefix = treePrefixLast, treePrefixEmpty
		}
		b.WriteString(prefix + connector + child.name + "\n")
		if len(child.order) > 0 {
			writeTreeChildren(b, child, prefix+nextPrefix)
		}
	}
}
