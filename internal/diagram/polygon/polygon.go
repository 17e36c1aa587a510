// Package polygon строит правильный n-угольник и считает его углы,
// апофему, сторону, площадь и периметр в замкнутой форме.
package polygon

import (
	"math"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// Constants
// ============================================================

const (
	MinSides = 3
	MaxSides = 12

	DefaultRadius   = 100.0
	DefaultRotation = -90.0 // вершина 0 сверху
)

// ============================================================
// Types
// ============================================================

type Spec struct {
	Sides           int     `json:"sides"`
	Radius          float64 `json:"radius"`
	RotationDegrees float64 `json:"rotationDegrees"`
}

// DefaultSpec возвращает спецификацию с поворотом по умолчанию (-90°).
func DefaultSpec(sides int, radius float64) Spec {
	return Spec{Sides: sides, Radius: radius, RotationDegrees: DefaultRotation}
}

type Vertex struct {
	Index        int          `json:"index"`
	AngleRadians float64      `json:"angle"`
	Point        models.Point `json:"point"`
}

type Geometry struct {
	Spec             Spec     `json:"spec"`
	Vertices         []Vertex `json:"vertices"`
	InteriorAngle    float64  `json:"interiorAngleDegrees"`
	ExteriorAngle    float64  `json:"exteriorAngleDegrees"`
	CentralAngle     float64  `json:"centralAngleDegrees"`
	InteriorAngleSum float64  `json:"interiorAngleSum"`
	Apothem          float64  `json:"apothem"`
	SideLength       float64  `json:"sideLength"`
	Area             float64  `json:"area"`
	Perimeter        float64  `json:"perimeter"`
}

// ============================================================
// Normalization
// ============================================================

// Normalize прижимает число сторон к [MinSides, MaxSides] и подставляет
// значения по умолчанию вместо неположительного радиуса и нечислового поворота.
func (s Spec) Normalize() (Spec, []models.Adjustment) {
	var adj []models.Adjustment

	switch {
	case s.Sides < MinSides:
		adj = append(adj, models.Adjustment{Field: "sides", Given: float64(s.Sides), Used: MinSides})
		s.Sides = MinSides
	case s.Sides > MaxSides:
		adj = append(adj, models.Adjustment{Field: "sides", Given: float64(s.Sides), Used: MaxSides})
		s.Sides = MaxSides
	}

	if !models.IsFinite(s.Radius) || s.Radius <= 0 {
		adj = append(adj, models.Adjustment{Field: "radius", Given: s.Radius, Used: DefaultRadius})
		s.Radius = DefaultRadius
	}

	if !models.IsFinite(s.RotationDegrees) {
		adj = append(adj, models.Adjustment{Field: "rotationDegrees", Given: s.RotationDegrees, Used: DefaultRotation})
		s.RotationDegrees = DefaultRotation
	}

	return s, adj
}

// ============================================================
// Generation
// ============================================================

// Generate строит вершины на окружности с центром в начале координат.
func Generate(spec Spec) Geometry {
	spec, _ = spec.Normalize()
	n, r := spec.Sides, spec.Radius

	start := spec.RotationDegrees * math.Pi / 180
	step := 2 * math.Pi / float64(n)

	vertices := make([]Vertex, n)
	for i := range vertices {
		angle := start + float64(i)*step
		vertices[i] = Vertex{
			Index:        i,
			AngleRadians: angle,
			Point:        models.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)},
		}
	}

	return Geometry{
		Spec:             spec,
		Vertices:         vertices,
		InteriorAngle:    InteriorAngle(n),
		ExteriorAngle:    ExteriorAngle(n),
		CentralAngle:     CentralAngle(n),
		InteriorAngleSum: InteriorAngleSum(n),
		Apothem:          Apothem(n, r),
		SideLength:       SideLength(n, r),
		Area:             Area(n, r),
		Perimeter:        Perimeter(n, r),
	}
}

// Point возвращает вершину по индексу с переходом через конец.
func (g Geometry) Point(i int) models.Point {
	n := len(g.Vertices)
	return g.Vertices[((i%n)+n)%n].Point
}

// Points возвращает все вершины по порядку.
func (g Geometry) Points() []models.Point {
	out := make([]models.Point, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = v.Point
	}
	return out
}

// SideMidpoint — середина стороны i (от вершины i к i+1).
func (g Geometry) SideMidpoint(i int) models.Point {
	return models.FromVec(r2.Scale(0.5, r2.Add(g.Point(i).Vec(), g.Point(i+1).Vec())))
}
