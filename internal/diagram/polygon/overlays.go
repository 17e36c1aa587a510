package polygon

import (
	"math"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// Triangulation
// ============================================================

// Center обозначает центр многоугольника в Triangle.
const Center = -1

type Diagonal struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Triangle хранит индексы вершин; Center вместо индекса означает центр.
type Triangle [3]int

// TriangulateFromCenter режет n-угольник на n треугольников (центр, i, i+1).
func TriangulateFromCenter(sides int) []Triangle {
	if sides < MinSides {
		return nil
	}
	out := make([]Triangle, sides)
	for i := range out {
		out[i] = Triangle{Center, i, (i + 1) % sides}
	}
	return out
}

// TriangulateFromVertex проводит диагонали из вершины k во все несмежные вершины.
// Всегда получается sides-3 диагонали и sides-2 треугольника.
func TriangulateFromVertex(sides, k int) ([]Diagonal, []Triangle) {
	if sides < MinSides {
		return nil, nil
	}
	k = ((k % sides) + sides) % sides

	diagonals := make([]Diagonal, 0, sides-3)
	for j := 2; j <= sides-2; j++ {
		diagonals = append(diagonals, Diagonal{From: k, To: (k + j) % sides})
	}

	triangles := make([]Triangle, 0, sides-2)
	for j := 1; j <= sides-2; j++ {
		triangles = append(triangles, Triangle{k, (k + j) % sides, (k + j + 1) % sides})
	}
	return diagonals, triangles
}

// ============================================================
// Angle arcs
// ============================================================

// Arc — дуга угла с вершиной At. Угол идёт от Start к End по возрастанию,
// End-Start всегда в [0, π].
type Arc struct {
	At    models.Point
	Start float64
	End   float64
}

// Sweep — величина угла в радианах.
func (a Arc) Sweep() float64 {
	return a.End - a.Start
}

// PointAt возвращает точку дуги радиуса r под углом angle.
func (a Arc) PointAt(angle, r float64) models.Point {
	return models.Point{X: a.At.X + r*math.Cos(angle), Y: a.At.Y + r*math.Sin(angle)}
}

// Mid — биссектриса дуги.
func (a Arc) Mid() float64 {
	return (a.Start + a.End) / 2
}

// InteriorArc строит внутренний угол в вершине at между направлениями на соседей.
func InteriorArc(prev, at, next models.Point) Arc {
	a1 := direction(at, prev)
	a2 := direction(at, next)
	start, end := minorArc(a1, a2)
	return Arc{At: at, Start: start, End: end}
}

// ExteriorArc продолжает входящее ребро prev->at за вершину и строит угол
// от продолжения до исходящего ребра at->next. Ориентация обхода не важна.
func ExteriorArc(prev, at, next models.Point) Arc {
	a1 := direction(prev, at)
	a2 := direction(at, next)
	start, end := minorArc(a1, a2)
	return Arc{At: at, Start: start, End: end}
}

// Extension — точка на продолжении ребра prev->at за вершину at на расстоянии length.
func Extension(prev, at models.Point, length float64) models.Point {
	dir := r2.Unit(r2.Sub(at.Vec(), prev.Vec()))
	return models.FromVec(r2.Add(at.Vec(), r2.Scale(length, dir)))
}

func direction(from, to models.Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// minorArc упорядочивает два направления так, чтобы дуга шла по меньшей стороне.
func minorArc(a1, a2 float64) (float64, float64) {
	start := a1
	diff := math.Mod(a2-a1, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	if diff > math.Pi {
		start = a2
		diff = 2*math.Pi - diff
	}
	return start, start + diff
}
