package cst

import (
	"fmt"
	"strings"

	"github.com/gqlcore/gqlcore/diagnostic"
)

// Render produces the stable testing-contract rendering described in
// spec §6: an indented tree of "NODE_KIND@start..end" lines, leaves
// additionally quoting their text, followed by one "ERROR@offset:width
// "message"" line per diagnostic. This is the format the seed scenarios
// in spec §8 are written against, so tests compare against it verbatim.
func Render(root Element, diags []diagnostic.Diagnostic) string {
	var sb strings.Builder
	renderElement(&sb, root, 0)
	for _, d := range diags {
		fmt.Fprintf(&sb, "- %s@%d:%d %q\n", "ERROR", d.Primary.Start, d.Primary.Length, d.Message)
	}
	return sb.String()
}

func renderElement(sb *strings.Builder, e Element, depth int) {
	indent := strings.Repeat("    ", depth)
	switch v := e.(type) {
	case *Token:
		fmt.Fprintf(sb, "%s- %s@%d..%d %q\n", indent, v.Kind(), v.Start(), v.End(), v.Text())
	case *Node:
		fmt.Fprintf(sb, "%s- %s@%d..%d\n", indent, v.Kind(), v.Start(), v.End())
		for _, c := range v.Children() {
			renderElement(sb, c, depth+1)
		}
	}
}
