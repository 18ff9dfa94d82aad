package ir

import (
	"fmt"
	"strings"
)

// Dump renders the expression rooted at ref as an indented tree, one node
// per line with its result type.
func Dump(a *Arena, ref NodeRef) string {
	var sb strings.Builder
	dump(&sb, a, ref, 0)
	return sb.String()
}

func dump(sb *strings.Builder, a *Arena, ref NodeRef, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	n := a.Get(ref)
	if n == nil {
		fmt.Fprintf(sb, "<invalid %d>\n", ref)
		return
	}
	fmt.Fprintf(sb, "%v -> %s\n", n, n.ResultType())
	for _, c := range n.Children() {
		dump(sb, a, c, depth+1)
	}
}
