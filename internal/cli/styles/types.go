package styles

import (
	"fmt"
	"strings"
)

// TypeNode is one class of the wrapped lattice.
type TypeNode struct {
	Name       string
	Registered bool
	Implements []string
	Children   []*TypeNode
}

// TypesRenderer draws the class lattice as a tree.
type TypesRenderer struct {
	theme *Theme
}

func NewTypesRenderer(theme *Theme) *TypesRenderer {
	return &TypesRenderer{theme: theme}
}

// Render draws root and its descendants, then the interfaces.
func (r *TypesRenderer) Render(root *TypeNode, interfaces []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconTree), r.theme.Title.Render("Class lattice")))
	r.renderNode(&sb, root, "", true, true)

	if len(interfaces) > 0 {
		sb.WriteString("\n" + r.theme.Title.Render("Interfaces") + "\n")
		for _, name := range interfaces {
			sb.WriteString(fmt.Sprintf("  %s %s\n", r.theme.Subtle.Render("•"), r.theme.Highlight.Render(name)))
		}
	}
	return sb.String()
}

func (r *TypesRenderer) renderNode(sb *strings.Builder, n *TypeNode, prefix string, last, top bool) {
	branch := "├── "
	childPrefix := prefix + "│   "
	if last {
		branch = "└── "
		childPrefix = prefix + "    "
	}
	if top {
		branch, childPrefix = "", ""
	}

	name := r.theme.Subtle.Render(n.Name)
	if n.Registered {
		name = r.theme.Normal.Render(n.Name)
	}
	line := r.theme.Subtle.Render(prefix+branch) + name
	if len(n.Implements) > 0 {
		line += " " + r.theme.HelpDesc.Render("implements "+strings.Join(n.Implements, ", "))
	}
	sb.WriteString(line + "\n")

	for i, c := range n.Children {
		r.renderNode(sb, c, childPrefix, i == len(n.Children)-1, false)
	}
}
