package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/parser"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultFontSize = 14.0

	DefaultPNGWidth  = 800
	DefaultPNGHeight = 600

	arcStep = math.Pi / 24
)

// ============================================================
// PNG Renderer
// ============================================================

// PNGRenderer растеризует сцену в картинку фиксированного размера.
// Viewport вписывается с сохранением пропорций и центрируется.
type PNGRenderer struct {
	width  int
	height int
	font   *text.FontSource
}

func NewPNGRenderer(width, height int) (*PNGRenderer, error) {
	if width <= 0 {
		width = DefaultPNGWidth
	}
	if height <= 0 {
		height = DefaultPNGHeight
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &PNGRenderer{width: width, height: height, font: source}, nil
}

// Size возвращает размер выходной картинки.
func (r *PNGRenderer) Size() (int, int) {
	return r.width, r.height
}

// Render возвращает PNG-байты сцены.
func (r *PNGRenderer) Render(scene *models.Scene) ([]byte, error) {
	if scene == nil {
		return nil, fmt.Errorf("scene is nil")
	}
	vp := scene.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %gx%g", vp.Width, vp.Height)
	}

	dc := gg.NewContext(r.width, r.height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	t := fit(vp, r.width, r.height)
	for i, p := range scene.Primitives {
		if err := r.renderPrimitive(dc, t, p); err != nil {
			return nil, fmt.Errorf("primitive %d (%s): %w", i, p.Role, err)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PNGRenderer) renderPrimitive(dc *gg.Context, t transform, p models.Primitive) error {
	if err := p.Style.Validate(); err != nil {
		return err
	}
	switch p.Kind {
	case models.KindLine:
		if len(p.Points) < 2 {
			return fmt.Errorf("line needs 2 points, got %d", len(p.Points))
		}
		tracePoints(dc, t, p.Points[:2], false)
		return stroke(dc, t, p.Style)

	case models.KindPolygon:
		if len(p.Points) < 3 {
			return fmt.Errorf("polygon needs 3 points, got %d", len(p.Points))
		}
		tracePoints(dc, t, p.Points, true)
		return paint(dc, t, p.Style)

	case models.KindPath:
		cmds, err := parser.ParsePath(p.D)
		if err != nil {
			return err
		}
		tracePath(dc, t, cmds)
		return paint(dc, t, p.Style)

	case models.KindText:
		if p.Position == nil {
			return fmt.Errorf("text without position")
		}
		size := p.Style.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		fill := p.Style.Fill
		if fill == "" || fill == "none" {
			fill = "#111827"
		}
		dc.SetFont(r.font.Face(size * t.scale))
		dc.SetColor(gg.Hex(fill).Color())
		x, y := t.apply(*p.Position)
		dc.DrawStringAnchored(p.Text, x, y, anchorX(p.Style.TextAnchor), 0.35)
		return nil
	}
	return fmt.Errorf("unknown primitive kind %q", p.Kind)
}

// ============================================================
// Path tracing
// ============================================================

func tracePoints(dc *gg.Context, t transform, pts []models.Point, closed bool) {
	dc.ClearPath()
	for i, p := range pts {
		x, y := t.apply(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	if closed {
		dc.ClosePath()
	}
}

// tracePath переводит команды path в контур gg; дуги аппроксимируются ломаной,
// чтобы оба направления обхода рисовались одинаково.
func tracePath(dc *gg.Context, t transform, cmds []parser.Command) {
	dc.ClearPath()
	var current models.Point
	for _, c := range cmds {
		switch c.Op {
		case 'M':
			x, y := t.apply(c.To)
			dc.MoveTo(x, y)
		case 'L':
			x, y := t.apply(c.To)
			dc.LineTo(x, y)
		case 'A':
			for _, p := range flattenArc(current, c) {
				x, y := t.apply(p)
				dc.LineTo(x, y)
			}
		case 'Z':
			dc.ClosePath()
		}
		current = c.To
	}
}

// flattenArc возвращает точки дуги после начальной, включая конечную.
func flattenArc(from models.Point, c parser.Command) []models.Point {
	center, theta, delta := c.ArcCenter(from)
	if delta == 0 {
		return []models.Point{c.To}
	}
	radius := math.Hypot(from.X-center.X, from.Y-center.Y)
	steps := int(math.Ceil(math.Abs(delta) / arcStep))
	if steps < 2 {
		steps = 2
	}

	out := make([]models.Point, 0, steps)
	for i := 1; i < steps; i++ {
		a := theta + delta*float64(i)/float64(steps)
		out = append(out, models.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return append(out, c.To)
}

// ============================================================
// Paint helpers
// ============================================================

func paint(dc *gg.Context, t transform, s models.Style) error {
	if s.Fill != "" && s.Fill != "none" {
		opacity := s.FillOpacity
		if opacity <= 0 {
			opacity = 1
		}
		col := gg.Hex(s.Fill)
		dc.SetRGBA(col.R, col.G, col.B, col.A*opacity)
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	return stroke(dc, t, s)
}

func stroke(dc *gg.Context, t transform, s models.Style) error {
	if s.Stroke == "" || s.Stroke == "none" {
		dc.ClearPath()
		return nil
	}
	width := s.StrokeWidth
	if width <= 0 {
		width = 1
	}
	dc.SetColor(gg.Hex(s.Stroke).Color())
	dc.SetLineWidth(width * t.scale)

	dash := make([]float64, len(s.Dash))
	for i, d := range s.Dash {
		dash[i] = d * t.scale
	}
	dc.SetDash(dash...)

	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	return nil
}

func anchorX(anchor string) float64 {
	switch anchor {
	case "start":
		return 0
	case "end":
		return 1
	}
	return 0.5
}

// ============================================================
// Viewport transform
// ============================================================

type transform struct {
	scale  float64
	dx, dy float64
	minX   float64
	minY   float64
}

func fit(vp models.Viewport, width, height int) transform {
	scale := math.Min(float64(width)/vp.Width, float64(height)/vp.Height)
	return transform{
		scale: scale,
		dx:    (float64(width) - vp.Width*scale) / 2,
		dy:    (float64(height) - vp.Height*scale) / 2,
		minX:  vp.MinX,
		minY:  vp.MinY,
	}
}

func (t transform) apply(p models.Point) (float64, float64) {
	return (p.X-t.minX)*t.scale + t.dx, (p.Y-t.minY)*t.scale + t.dy
}
