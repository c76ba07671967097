package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bnema/gtkbridge/internal/cli/styles"
	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the wrapped class lattice",
	Long: `Types prints every class with a Go wrapper, placed under its runtime parents up to
GObject, and the interfaces each one implements.`,
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := gtk.Init(); err != nil {
		return err
	}

	root, interfaces := classTree()
	fmt.Fprint(cmd.OutOrStdout(), styles.NewTypesRenderer(app.Theme).Render(root, interfaces))
	return nil
}

// classTree places every registered class under its runtime ancestors. Registered
// names that are not GObject subclasses are interfaces.
func classTree() (*styles.TypeNode, []string) {
	objectType := glib.ObjectType()
	root := &styles.TypeNode{Name: glib.TypeName(objectType)}
	nodes := map[glib.Type]*styles.TypeNode{objectType: root}

	var interfaces []glib.Type
	var classes []glib.Type
	for _, name := range glib.RegisteredClasses() {
		t, ok := glib.RegisteredType(name)
		if !ok || t == 0 {
			continue
		}
		if glib.TypeIsA(t, objectType) {
			classes = append(classes, t)
		} else {
			interfaces = append(interfaces, t)
		}
	}

	var node func(t glib.Type) *styles.TypeNode
	node = func(t glib.Type) *styles.TypeNode {
		if n, ok := nodes[t]; ok {
			return n
		}
		n := &styles.TypeNode{Name: glib.TypeName(t)}
		nodes[t] = n
		parent := node(glib.TypeParent(t))
		parent.Children = append(parent.Children, n)
		return n
	}

	for _, t := range classes {
		n := node(t)
		n.Registered = true
		for _, iface := range interfaces {
			if glib.TypeIsA(t, iface) && !implementedByParent(t, iface) {
				n.Implements = append(n.Implements, glib.TypeName(iface))
			}
		}
	}
	sortTree(root)

	names := make([]string, len(interfaces))
	for i, t := range interfaces {
		names[i] = glib.TypeName(t)
	}
	return root, names
}

func implementedByParent(t, iface glib.Type) bool {
	p := glib.TypeParent(t)
	return p != 0 && glib.TypeIsA(p, iface)
}

func sortTree(n *styles.TypeNode) {
	slices.SortFunc(n.Children, func(a, b *styles.TypeNode) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	for _, c := range n.Children {
		sortTree(c)
	}
}
