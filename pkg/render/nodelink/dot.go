package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/skilltree/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes progress, status and category in node labels.
	// When false, only the name is shown.
	Detailed bool

	// Levels, if non-nil, adds each node's dependency level to detailed
	// labels.
	Levels map[string]int
}

// Palette
const (
	accent      = "#A53C37"
	muted       = "#8C8C8C"
	lockedFill  = "#E8E8E8"
	lockedLine  = "#CCCCCC"
	lockedEdge  = "#D1D1D1"
	lockedText  = "#999999"
	openFill    = "#F5F5F5"
	defaultText = "#2A2A2A"
)

// ToDOT converts t to Graphviz DOT format. The result can be rendered with
// [RenderSVG] or saved for external Graphviz tools.
func ToDOT(t *tree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  compound=true;\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=16, fontcolor=%q, margin=\"0.2,0.1\"];\n", defaultText)
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")
	fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=22;\n", t.Name)
	buf.WriteString("\n")

	var write func(n *tree.Node, indent string)
	write = func(n *tree.Node, indent string) {
		kids := t.Children(n.ID)
		if len(kids) == 0 {
			fmt.Fprintf(&buf, "%s%q [%s];\n", indent, n.ID, strings.Join(fmtAttrs(t, n, opts), ", "))
			return
		}
		fmt.Fprintf(&buf, "%ssubgraph %q {\n", indent, "cluster_"+n.ID)
		fmt.Fprintf(&buf, "%s  label=%q;\n", indent, fmtLabel(n, opts))
		fmt.Fprintf(&buf, "%s  style=\"rounded\";\n", indent)
		fmt.Fprintf(&buf, "%s  color=%q;\n", indent, sectionColor(n))
		for _, c := range kids {
			write(c, indent+"  ")
		}
		fmt.Fprintf(&buf, "%s}\n", indent)
	}
	for _, r := range t.Roots() {
		write(r, "  ")
	}

	buf.WriteString("\n")
	for _, e := range t.Links() {
		if !t.Has(e.From) || !t.Has(e.To) {
			continue
		}
		from, tail := anchor(t, e.From)
		to, head := anchor(t, e.To)
		attrs := edgeAttrs(t, e)
		if tail != "" {
			attrs = append(attrs, fmt.Sprintf("ltail=%q", tail))
		}
		if head != "" {
			attrs = append(attrs, fmt.Sprintf("lhead=%q", head))
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// anchor returns the box an edge to id attaches to. Sections are clusters,
// which Graphviz cannot connect directly: the edge goes to the section's
// first leaf and is clipped at the cluster border.
func anchor(t *tree.Tree, id string) (node, cluster string) {
	if !t.HasChildren(id) {
		return id, ""
	}
	leaf := id
	for t.HasChildren(leaf) {
		leaf = t.Children(leaf)[0].ID
	}
	return leaf, "cluster_" + id
}

func fmtLabel(n *tree.Node, opts Options) string {
	if !opts.Detailed {
		return n.Name
	}

	parts := []string{fmt.Sprintf("%d%% %s", n.Progress, n.Status)}
	if n.Category != "" {
		parts = append(parts, "category: "+n.Category)
	}
	if l, ok := opts.Levels[n.ID]; ok {
		parts = append(parts, fmt.Sprintf("level: %d", l))
	}
	return n.Name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(t *tree.Tree, n *tree.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts))}
	if n.Description != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", n.Description))
	}

	color := n.Color
	if color == "" {
		color = accent
	}
	a, _ := t.Availability(n.ID)
	switch a {
	case tree.Completed:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color), fmt.Sprintf("color=%q", color), "penwidth=2", "fontcolor=white")
	case tree.InProgress:
		attrs = append(attrs, "fillcolor=white", fmt.Sprintf("color=%q", color), "penwidth=3")
	case tree.Available:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", openFill), fmt.Sprintf("color=%q", color))
	case tree.Locked:
		attrs = append(attrs, `style="rounded,filled,dashed"`, fmt.Sprintf("fillcolor=%q", lockedFill),
			fmt.Sprintf("color=%q", lockedLine), fmt.Sprintf("fontcolor=%q", lockedText))
	}
	return attrs
}

func edgeAttrs(t *tree.Tree, e tree.Edge) []string {
	from, _ := t.Find(e.From)
	to, _ := t.Find(e.To)
	if a, _ := t.Availability(e.To); a == tree.Locked {
		return []string{fmt.Sprintf("color=%q", lockedEdge), "style=dashed"}
	}
	if from.Status == tree.StatusCompleted && to.Status == tree.StatusCompleted {
		return []string{fmt.Sprintf("color=%q", accent), "penwidth=2"}
	}
	return []string{fmt.Sprintf("color=%q", muted)}
}

func sectionColor(n *tree.Node) string {
	if n.Color != "" {
		return n.Color
	}
	return muted
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
//
// [render.ToPDF]: github.com/matzehuels/skilltree/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/skilltree/pkg/render.ToPNG
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
