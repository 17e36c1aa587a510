package scene

import (
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/parser"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/polygon"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// Primitive constructors
// ============================================================

func line(role string, p1, p2 models.Point, style models.Style) models.Primitive {
	return models.Primitive{
		Kind:   models.KindLine,
		Role:   role,
		Points: []models.Point{p1, p2},
		Style:  style,
	}
}

func poly(role string, points []models.Point, style models.Style) models.Primitive {
	return models.Primitive{
		Kind:   models.KindPolygon,
		Role:   role,
		Points: append([]models.Point(nil), points...),
		Style:  style,
	}
}

func text(role, s string, at models.Point, style models.Style) models.Primitive {
	pos := at
	return models.Primitive{
		Kind:     models.KindText,
		Role:     role,
		Position: &pos,
		Text:     s,
		Style:    style,
	}
}

// rightAngle рисует уголок прямого угла в вершине at между направлениями на p и q.
// В изометрии он выглядит параллелограммом, что и требуется.
func rightAngle(role string, at, p, q models.Point, size float64, style models.Style) models.Primitive {
	u := r2.Scale(size, r2.Unit(r2.Sub(p.Vec(), at.Vec())))
	w := r2.Scale(size, r2.Unit(r2.Sub(q.Vec(), at.Vec())))

	a := models.FromVec(r2.Add(at.Vec(), u))
	b := models.FromVec(r2.Add(at.Vec(), r2.Add(u, w)))
	c := models.FromVec(r2.Add(at.Vec(), w))

	return models.Primitive{
		Kind:   models.KindPath,
		Role:   role,
		Points: []models.Point{a, b, c},
		D:      parser.NewPathBuilder().MoveTo(a).LineTo(b).LineTo(c).String(),
		Style:  style,
	}
}

// sector рисует сектор угла радиуса r: от вершины к началу дуги, по дуге, обратно.
func sector(role string, arc polygon.Arc, r float64, style models.Style) models.Primitive {
	start := arc.PointAt(arc.Start, r)
	end := arc.PointAt(arc.End, r)
	mid := arc.PointAt(arc.Mid(), r)

	d := parser.NewPathBuilder().
		MoveTo(arc.At).
		LineTo(start).
		ArcTo(r, false, true, end).
		Close().
		String()

	return models.Primitive{
		Kind:   models.KindPath,
		Role:   role,
		Points: []models.Point{arc.At, start, mid, end},
		D:      d,
		Style:  style,
	}
}

// dot рисует точку двумя полуокружностями.
func dot(role string, at models.Point, r float64, style models.Style) models.Primitive {
	left := models.Point{X: at.X - r, Y: at.Y}
	right := models.Point{X: at.X + r, Y: at.Y}

	d := parser.NewPathBuilder().
		MoveTo(left).
		ArcTo(r, true, false, right).
		ArcTo(r, true, false, left).
		Close().
		String()

	return models.Primitive{
		Kind: models.KindPath,
		Role: role,
		Points: []models.Point{
			left, right,
			{X: at.X, Y: at.Y - r},
			{X: at.X, Y: at.Y + r},
		},
		D:     d,
		Style: style,
	}
}

// flatten склеивает слои в порядке отрисовки.
func flatten(layers ...[]models.Primitive) []models.Primitive {
	n := 0
	for _, l := range layers {
		n += len(l)
	}
	out := make([]models.Primitive, 0, n)
	for _, l := range layers {
		out = append(out, l...)
	}
	return out
}
