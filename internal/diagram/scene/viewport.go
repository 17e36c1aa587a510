package scene

import (
	"math"
	"unicode/utf8"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
)

// glyphWidth — средняя ширина символа в долях кегля для оценки размера подписи.
const glyphWidth = 0.6

// ComputeViewport считает рамку, в которую попадают все точки примитивов и
// оценочные габариты подписей, и расширяет её на padding с каждой стороны.
func ComputeViewport(prims []models.Primitive, padding float64) models.Viewport {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64

	add := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, p := range prims {
		for _, pt := range p.Points {
			add(pt.X, pt.Y)
		}
		if p.Kind == models.KindText && p.Position != nil {
			x0, y0, x1, y1 := TextBounds(p)
			add(x0, y0)
			add(x1, y1)
		}
	}

	if minX == math.MaxFloat64 {
		return models.Viewport{MinX: -padding, MinY: -padding, Width: 2 * padding, Height: 2 * padding}
	}

	return models.Viewport{
		MinX:   minX - padding,
		MinY:   minY - padding,
		Width:  maxX - minX + 2*padding,
		Height: maxY - minY + 2*padding,
	}
}

// TextBounds оценивает габариты подписи. Текст центрируется по вертикали
// относительно Position.
func TextBounds(p models.Primitive) (x0, y0, x1, y1 float64) {
	size := p.Style.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	w := glyphWidth * size * float64(utf8.RuneCountInString(p.Text))
	h := size

	x, y := p.Position.X, p.Position.Y
	switch p.Style.TextAnchor {
	case "start":
		x0, x1 = x, x+w
	case "end":
		x0, x1 = x-w, x
	default:
		x0, x1 = x-w/2, x+w/2
	}
	return x0, y - h/2, x1, y + h/2
}
