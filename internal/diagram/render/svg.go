// Package render переводит список примитивов сцены в SVG и PNG.
// Рендереры ничего не решают о видимости и стилях: всё уже лежит в примитивах.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/parser"

	svg "github.com/ajstarks/svgo"
)

// ============================================================
// SVG Renderer
// ============================================================

type SVGRenderer struct {
	fontFamily string
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{fontFamily: "sans-serif"}
}

// Render собирает SVG-документ из сцены. Размер документа равен viewport.
func (r *SVGRenderer) Render(scene *models.Scene) (string, error) {
	if scene == nil {
		return "", fmt.Errorf("scene is nil")
	}
	vp := scene.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return "", fmt.Errorf("invalid viewport %gx%g", vp.Width, vp.Height)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startraw(
		fmt.Sprintf(`width="%s"`, parser.FormatFloat(vp.Width)),
		fmt.Sprintf(`height="%s"`, parser.FormatFloat(vp.Height)),
		fmt.Sprintf(`viewBox="%s %s %s %s"`,
			parser.FormatFloat(vp.MinX), parser.FormatFloat(vp.MinY),
			parser.FormatFloat(vp.Width), parser.FormatFloat(vp.Height)),
	)
	if scene.Shape != "" {
		canvas.Title(scene.Shape)
	}

	for i, p := range scene.Primitives {
		if err := r.renderPrimitive(canvas, p); err != nil {
			return "", fmt.Errorf("primitive %d (%s): %w", i, p.Role, err)
		}
	}

	canvas.End()
	return buf.String(), nil
}

func (r *SVGRenderer) renderPrimitive(canvas *svg.SVG, p models.Primitive) error {
	if err := p.Style.Validate(); err != nil {
		return err
	}
	switch p.Kind {
	case models.KindLine:
		if len(p.Points) < 2 {
			return fmt.Errorf("line needs 2 points, got %d", len(p.Points))
		}
		canvas.Path(parser.Polyline(p.Points[:2], false), shapeStyle(p.Style, true), roleAttr(p.Role))

	case models.KindPolygon:
		if len(p.Points) < 3 {
			return fmt.Errorf("polygon needs 3 points, got %d", len(p.Points))
		}
		canvas.Path(parser.Polyline(p.Points, true), shapeStyle(p.Style, false), roleAttr(p.Role))

	case models.KindPath:
		if strings.TrimSpace(p.D) == "" {
			return fmt.Errorf("path without data")
		}
		canvas.Path(p.D, shapeStyle(p.Style, false), roleAttr(p.Role))

	case models.KindText:
		if p.Position == nil {
			return fmt.Errorf("text without position")
		}
		// svgo принимает только целые координаты, поэтому подпись сдвигается группой.
		canvas.Gtransform(fmt.Sprintf("translate(%s)", parser.FormatPoint(*p.Position)))
		canvas.Text(0, 0, p.Text, r.textStyle(p.Style), roleAttr(p.Role))
		canvas.Gend()

	default:
		return fmt.Errorf("unknown primitive kind %q", p.Kind)
	}
	return nil
}

// ============================================================
// Style helpers
// ============================================================

func shapeStyle(s models.Style, open bool) string {
	var parts []string
	add := func(k, v string) { parts = append(parts, k+":"+v) }

	fill := s.Fill
	if open || fill == "" {
		fill = "none"
	}
	add("fill", fill)
	if fill != "none" && s.FillOpacity > 0 {
		add("fill-opacity", parser.FormatFloat(s.FillOpacity))
	}

	stroke := s.Stroke
	if stroke == "" {
		stroke = "none"
	}
	add("stroke", stroke)
	if stroke != "none" {
		if s.StrokeWidth > 0 {
			add("stroke-width", parser.FormatFloat(s.StrokeWidth))
		}
		if len(s.Dash) > 0 {
			add("stroke-dasharray", joinFloats(s.Dash))
		}
		add("stroke-linejoin", "round")
		add("stroke-linecap", "round")
	}
	return strings.Join(parts, ";")
}

func (r *SVGRenderer) textStyle(s models.Style) string {
	size := s.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	fill := s.Fill
	if fill == "" || fill == "none" {
		fill = "#111827"
	}
	anchor := s.TextAnchor
	if anchor == "" {
		anchor = "middle"
	}

	parts := []string{
		"font-family:" + r.fontFamily,
		"font-size:" + parser.FormatFloat(size) + "px",
		"fill:" + fill,
		"text-anchor:" + anchor,
		"dominant-baseline:central",
	}
	if s.FontWeight != "" {
		parts = append(parts, "font-weight:"+s.FontWeight)
	}
	return strings.Join(parts, ";")
}

func roleAttr(role string) string {
	if role == "" {
		return `data-role=""`
	}
	return fmt.Sprintf(`data-role="%s"`, html.EscapeString(role))
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = parser.FormatFloat(v)
	}
	return strings.Join(parts, ",")
}
