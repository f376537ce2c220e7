package tree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes one line per node under root, indented two spaces per level.
func Dump(w io.Writer, root Node) error {
	depth := 0
	return WalkWithContext(root,
		func(n Node) error {
			_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n)
			if n.IsBlock() {
				depth++
			}
			return err
		},
		func(n Node) error {
			if n.IsBlock() {
				depth--
			}
			return nil
		},
	)
}

// DumpString renders root with Dump.
func DumpString(root Node) string {
	var builder strings.Builder
	_ = Dump(&builder, root)
	return builder.String()
}
