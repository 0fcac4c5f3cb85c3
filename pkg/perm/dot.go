package perm

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ChainDOT returns a Graphviz DOT representation of the transposition chain
// that c denotes.
//
// The graph starts at the identity and has one node per array state, left
// to right, with each edge labelled by the swap that produced the next
// state. Trivial swaps (C[i] == i) are drawn dashed. The final node, the
// permutation of c, is shown in bold.
//
// c is not validated; call [ValidateCode] first when it comes from user
// input. The slice is not modified.
//
// Example:
//
//	dot := perm.ChainDOT(perm.Code{0, 1, 1, 2})
//	// Use 'dot' command or RenderChainSVG to visualize
func ChainDOT(c Code) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Chain {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=11];\n\n")

	d := Identity(len(c))
	fmt.Fprintf(&buf, "  s0 [label=%q];\n", "["+d.Join(",")+"]")
	id := 0
	for i := len(c) - 1; i >= 1; i-- {
		k := c[i]
		d[i], d[k] = d[k], d[i]
		id++
		fmt.Fprintf(&buf, "  s%d [label=%q];\n", id, "["+d.Join(",")+"]")
		style := "solid"
		if k == i {
			style = "dashed"
		}
		fmt.Fprintf(&buf, "  s%d -> s%d [label=\"swap(%d, %d)\", style=%s];\n", id-1, id, i, k, style)
	}
	fmt.Fprintf(&buf, "  s%d [penwidth=2, fontname=\"SF Mono Bold, Menlo Bold, monospace\"];\n", id)

	buf.WriteString("}\n")
	return buf.String()
}

// RenderChainSVG renders the transposition chain of c as an SVG image.
//
// RenderChainSVG generates a DOT representation via ChainDOT, then uses
// Graphviz to render it to SVG format. Errors are returned if Graphviz
// cannot initialize, the DOT is malformed, or rendering fails; all are
// wrapped with %w.
func RenderChainSVG(ctx context.Context, c Code) ([]byte, error) {
	dot := ChainDOT(c)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
