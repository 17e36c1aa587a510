// Package cuboid строит прямоугольный параллелепипед в изометрической проекции
// и считает его производные величины (диагонали, площади граней, объём).
package cuboid

import (
	"math"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"

	"gonum.org/v1/gonum/spatial/r3"
)

// ============================================================
// Constants
// ============================================================

// IsoAngle — фиксированный угол изометрии (30°).
const IsoAngle = math.Pi / 6

// Значения, подставляемые вместо неположительных размеров.
const (
	DefaultWidth  = 4.0
	DefaultDepth  = 3.0
	DefaultHeight = 5.0
)

// Индексы вершин. A..D — нижняя грань, E..H — верхняя, ровно над A..D.
const (
	A = iota
	B
	C
	D
	E
	F
	G
	H
)

// VertexNames — имена вершин в порядке индексов.
var VertexNames = [8]string{"A", "B", "C", "D", "E", "F", "G", "H"}

// HiddenVertex — нижняя вершина, дальняя от наблюдателя при этой проекции.
const HiddenVertex = B

// ============================================================
// Types
// ============================================================

type Spec struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
	Units  string  `json:"units,omitempty"`
}

type Vertex struct {
	Name   string       `json:"name"`
	Space  r3.Vec       `json:"space"`
	Screen models.Point `json:"screen"`
}

type FaceArea struct {
	Face string  `json:"face"`
	Area float64 `json:"area"`
}

// Geometry — полностью вычисленный параллелепипед для одного набора размеров.
type Geometry struct {
	Spec             Spec        `json:"spec"`
	Scale            float64     `json:"scale"`
	Vertices         [8]Vertex   `json:"vertices"`
	BaseDiagonal     float64     `json:"baseDiagonalLength"`
	SpaceDiagonal    float64     `json:"spaceDiagonalLength"`
	FaceAreas        [6]FaceArea `json:"faceAreas"`
	TotalSurfaceArea float64     `json:"totalSurfaceArea"`
	Volume           float64     `json:"volume"`
}

// ============================================================
// Normalization
// ============================================================

// Normalize подставляет значения по умолчанию вместо неположительных
// или нечисловых размеров. Каждая подмена возвращается как Adjustment.
func (s Spec) Normalize() (Spec, []models.Adjustment) {
	var adj []models.Adjustment
	s.Width = normalizeDimension("width", s.Width, DefaultWidth, &adj)
	s.Depth = normalizeDimension("depth", s.Depth, DefaultDepth, &adj)
	s.Height = normalizeDimension("height", s.Height, DefaultHeight, &adj)
	return s, adj
}

func normalizeDimension(field string, v, def float64, adj *[]models.Adjustment) float64 {
	if models.IsFinite(v) && v > 0 {
		return v
	}
	*adj = append(*adj, models.Adjustment{Field: field, Given: v, Used: def})
	return def
}

// ============================================================
// Projection
// ============================================================

// Project строит геометрию с масштабом 1.
func Project(spec Spec) Geometry {
	return ProjectScaled(spec, 1)
}

// ProjectScaled строит геометрию с заданным масштабом отображения.
// Масштаб влияет только на экранные координаты, но не на длины, площади и объём.
func ProjectScaled(spec Spec, scale float64) Geometry {
	spec, _ = spec.Normalize()
	if !models.IsFinite(scale) || scale <= 0 {
		scale = 1
	}

	w, d, h := spec.Width, spec.Depth, spec.Height
	corners := [8]r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: w, Y: 0, Z: 0},
		{X: w, Y: d, Z: 0},
		{X: 0, Y: d, Z: 0},
		{X: 0, Y: 0, Z: h},
		{X: w, Y: 0, Z: h},
		{X: w, Y: d, Z: h},
		{X: 0, Y: d, Z: h},
	}

	g := Geometry{
		Spec:             spec,
		Scale:            scale,
		BaseDiagonal:     BaseDiagonal(w, d),
		SpaceDiagonal:    SpaceDiagonal(w, d, h),
		FaceAreas:        FaceAreas(w, d, h),
		TotalSurfaceArea: SurfaceArea(w, d, h),
		Volume:           Volume(w, d, h),
	}
	for i, p := range corners {
		g.Vertices[i] = Vertex{
			Name:   VertexNames[i],
			Space:  p,
			Screen: IsoProject(p, scale),
		}
	}
	return g
}

// IsoProject переводит точку пространства в экранные координаты (ось Y вниз).
func IsoProject(p r3.Vec, scale float64) models.Point {
	return models.Point{
		X: (p.X + p.Y) * math.Cos(IsoAngle) * scale,
		Y: ((p.Y-p.X)*math.Sin(IsoAngle) - p.Z) * scale,
	}
}

// Screen возвращает экранные координаты вершин по индексам.
func (g Geometry) Screen(idx ...int) []models.Point {
	out := make([]models.Point, len(idx))
	for i, v := range idx {
		out[i] = g.Vertices[v].Screen
	}
	return out
}

// Center — экранная проекция центра параллелепипеда.
func (g Geometry) Center() models.Point {
	c := r3.Scale(0.5, r3.Add(g.Vertices[A].Space, g.Vertices[G].Space))
	return IsoProject(c, g.Scale)
}
