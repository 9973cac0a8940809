// Package render draws the registry's dependency graph: file types, tools,
// and the identification, configuration, installer, and requirement edges
// between them.
//
// [ToDOT] produces Graphviz DOT text; [SVG] and [PNG] rasterize it.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/calliecameron/toolstack/pkg/registry"
)

// Options configures graph rendering.
type Options struct {
	// FileTypes and Tools restrict the graph to the given ids plus the
	// edges between them. When both are empty the whole registry is drawn.
	FileTypes []string
	Tools     []string
}

func (o Options) restricted() bool {
	return len(o.FileTypes) > 0 || len(o.Tools) > 0
}

func (o Options) fileTypes() []string {
	if o.restricted() {
		return slices.Sorted(slices.Values(o.FileTypes))
	}
	return registry.FileTypeIDs()
}

func (o Options) tools() []string {
	if o.restricted() {
		return slices.Sorted(slices.Values(o.Tools))
	}
	return registry.ToolIDs()
}

// ToDOT converts the registry graph to Graphviz DOT format. File types are
// drawn as ellipses and tools as rounded boxes; solid edges run from a file
// type to the tools it implies, dashed edges from a tool to the file types
// its configuration lives in, and dotted edges to a tool's installer and
// requirements.
func ToDOT(opts Options) string {
	fileTypes := opts.fileTypes()
	tools := opts.tools()
	toolSet := make(map[string]struct{}, len(tools))
	for _, id := range tools {
		toolSet[id] = struct{}{}
	}
	fileTypeSet := make(map[string]struct{}, len(fileTypes))
	for _, id := range fileTypes {
		fileTypeSet[id] = struct{}{}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph registry {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	// Node ids carry a kind prefix so a file type and a tool with the same
	// name stay distinct; the label shows the bare id.
	for _, id := range fileTypes {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, style=filled, fillcolor=lightblue];\n", "ft:"+id, id)
	}
	for _, id := range tools {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=\"rounded,filled\", fillcolor=white];\n", "tool:"+id, id)
	}
	buf.WriteString("\n")

	for _, id := range fileTypes {
		for _, tool := range registry.MustFileType(id).Tools {
			if _, ok := toolSet[tool]; ok {
				fmt.Fprintf(&buf, "  %q -> %q;\n", "ft:"+id, "tool:"+tool)
			}
		}
	}
	for _, id := range tools {
		tool := registry.MustTool(id)
		for _, ft := range tool.ConfigFileTypes {
			if _, ok := fileTypeSet[ft]; ok {
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", "tool:"+id, "ft:"+ft)
			}
		}
		if tool.InstalledBy != "" {
			if _, ok := toolSet[tool.InstalledBy]; ok {
				fmt.Fprintf(&buf, "  %q -> %q [style=dotted, label=\"installed by\"];\n", "tool:"+id, "tool:"+tool.InstalledBy)
			}
		}
		for _, req := range tool.Requires {
			if _, ok := toolSet[req]; ok {
				fmt.Fprintf(&buf, "  %q -> %q [style=dotted, label=\"requires\"];\n", "tool:"+id, "tool:"+req)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
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
