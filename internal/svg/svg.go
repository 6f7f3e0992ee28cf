// Package svg turns a chart scene into an SVG document. It is the only
// place the vector-drawing library is touched; everything upstream of
// it works on plain geometry.
package svg

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/username/ganttsvg/internal/chart"
	"github.com/username/ganttsvg/internal/scene"
)

// Write renders a chart as a standalone SVG document. Group IDs and
// classes become id/class attributes; hover bindings become data-tip
// attributes so a host page can route pointer events to the tooltip
// controller.
func Write(w io.Writer, c *chart.Chart) {
	canvas := svgo.New(w)
	canvas.Start(c.Layout.Width, c.Layout.Height)
	writeGroup(canvas, c.Scene)
	canvas.End()
}

func writeGroup(canvas *svgo.SVG, g *scene.Group) {
	canvas.Group(attrs(g.ID, g.Class, "")...)
	for _, kid := range g.Kids {
		switch n := kid.(type) {
		case *scene.Group:
			writeGroup(canvas, n)
		case *scene.Rect:
			canvas.Rect(n.X, n.Y, n.W, n.H, attrs("", n.Class, n.HoverID)...)
		case *scene.Text:
			canvas.Text(n.X, n.Y, escape(n.Content), textAttrs(n)...)
		}
	}
	canvas.Gend()
}

func textAttrs(n *scene.Text) []string {
	out := attrs("", n.Class, n.HoverID)
	if n.Anchor != "" {
		out = append(out, fmt.Sprintf(`text-anchor="%s"`, n.Anchor))
	}
	return out
}

func attrs(id, class, hoverID string) []string {
	var out []string
	if id != "" {
		out = append(out, fmt.Sprintf(`id="%s"`, escape(id)))
	}
	if class != "" {
		out = append(out, fmt.Sprintf(`class="%s"`, escape(class)))
	}
	if hoverID != "" {
		out = append(out, fmt.Sprintf(`data-tip="%s"`, escape(hoverID)))
	}
	return out
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
