package scene

import (
	"strconv"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/compose"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/polygon"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// Polygon visibility
// ============================================================

type TriangulationMode string

const (
	TriangulationNone   TriangulationMode = ""
	TriangulationCenter TriangulationMode = "center"
	TriangulationVertex TriangulationMode = "vertex"
)

// PolygonVisibility — что показывать и что подсвечивать на многоугольнике.
// Стороны нумеруются от вершины i к i+1, углы — по вершинам.
type PolygonVisibility struct {
	ShowFill           bool `json:"showFill"`
	ShowVertices       bool `json:"showVertices"`
	ShowVertexLabels   bool `json:"showVertexLabels"`
	ShowSideLengths    bool `json:"showSideLengths"`
	ShowInteriorAngles bool `json:"showInteriorAngles"`
	ShowExteriorAngles bool `json:"showExteriorAngles"`
	ShowAngleValues    bool `json:"showAngleValues"`
	ShowCenter         bool `json:"showCenter"`
	ShowRadius         bool `json:"showRadius"`
	ShowApothem        bool `json:"showApothem"`
	ShowCentralAngle   bool `json:"showCentralAngle"`

	Triangulation  TriangulationMode `json:"triangulation,omitempty"`
	TriangleVertex int               `json:"triangleVertex"`

	HighlightSides     []int `json:"highlightSides,omitempty"`
	HighlightVertices  []int `json:"highlightVertices,omitempty"`
	HighlightAngles    []int `json:"highlightAngles,omitempty"`
	HighlightTriangles []int `json:"highlightTriangles,omitempty"`

	SideLabels  map[int]string `json:"sideLabels,omitempty"`
	AngleLabels map[int]string `json:"angleLabels,omitempty"`
}

// DefaultPolygonVisibility — заливка, вершины и их подписи.
func DefaultPolygonVisibility() PolygonVisibility {
	return PolygonVisibility{
		ShowFill:         true,
		ShowVertices:     true,
		ShowVertexLabels: true,
	}
}

// VertexName даёт вершине буквенное имя: A, B, ... L.
func VertexName(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return "P" + strconv.Itoa(i)
}

// ============================================================
// Polygon assembler
// ============================================================

// AssemblePolygon строит сцену многоугольника. Порядок отрисовки:
// заливка, триангуляция, радиус и апофема, дуги углов, стороны, вершины, подписи.
func AssemblePolygon(spec polygon.Spec, vis PolygonVisibility, opts Options) (models.Scene, polygon.Geometry, []models.Adjustment) {
	spec, adj := spec.Normalize()
	o := opts.resolve(PolygonDisplayRadius / spec.Radius)
	g := polygon.Generate(spec)

	pts := make([]models.Point, len(g.Vertices))
	for i, v := range g.Vertices {
		pts[i] = models.FromVec(r2.Scale(o.scale, v.Point.Vec()))
	}

	n := len(pts)
	s := polygonAssembler{
		g:         g,
		vis:       vis,
		o:         o,
		pts:       pts,
		sides:     compose.IndexSet(vis.HighlightSides, n),
		vertices:  compose.IndexSet(vis.HighlightVertices, n),
		angles:    compose.IndexSet(vis.HighlightAngles, n),
		triangles: vis.HighlightTriangles,
	}

	prims := flatten(
		s.fill(),
		s.triangulation(),
		s.construction(),
		s.angleArcs(),
		s.sideLines(),
		s.vertexDots(),
		s.labels(),
	)

	return models.Scene{
		Shape:      "polygon",
		Primitives: prims,
		Viewport:   ComputeViewport(prims, o.padding),
	}, g, adj
}

type polygonAssembler struct {
	g   polygon.Geometry
	vis PolygonVisibility
	o   resolved
	pts []models.Point

	sides     map[int]bool
	vertices  map[int]bool
	angles    map[int]bool
	triangles []int
}

func (s polygonAssembler) fill() []models.Primitive {
	if !s.vis.ShowFill {
		return nil
	}
	return []models.Primitive{poly("fill", s.pts, compose.ResolveStyle(s.o.theme.Face))}
}

func (s polygonAssembler) triangulation() []models.Primitive {
	n := len(s.pts)
	var tris []polygon.Triangle
	var diagonals []polygon.Diagonal

	switch s.vis.Triangulation {
	case TriangulationCenter:
		tris = polygon.TriangulateFromCenter(n)
	case TriangulationVertex:
		k := s.vis.TriangleVertex
		if k < 0 || k >= n {
			k = 0
		}
		diagonals, tris = polygon.TriangulateFromVertex(n, k)
	default:
		return nil
	}

	highlighted := compose.IndexSet(s.triangles, len(tris))
	var out []models.Primitive
	for i, t := range tris {
		corners := []models.Point{s.corner(t[0]), s.corner(t[1]), s.corner(t[2])}
		style := compose.Pick(s.o.theme.Overlay, s.o.theme.FaceHighlight, highlighted[i])
		out = append(out, poly("triangle:"+strconv.Itoa(i), corners, style))
	}
	if s.vis.Triangulation == TriangulationCenter {
		// Радиусы к вершинам уже образованы сторонами треугольников.
		return out
	}
	diag := compose.ResolveStyle(s.o.theme.Overlay, models.Style{Fill: "none"})
	for _, d := range diagonals {
		role := "diagonal:" + strconv.Itoa(d.From) + "-" + strconv.Itoa(d.To)
		out = append(out, line(role, s.pts[d.From], s.pts[d.To], diag))
	}
	return out
}

// construction — радиус, апофема и центральный угол.
func (s polygonAssembler) construction() []models.Primitive {
	var out []models.Primitive
	center := models.Point{}
	style := compose.ResolveStyle(s.o.theme.Construction)

	if s.vis.ShowRadius {
		out = append(out, line("radius", center, s.pts[0], style))
	}
	if s.vis.ShowApothem {
		mid := s.sideMidpoint(0)
		out = append(out,
			line("apothem", center, mid, style),
			rightAngle("marker:apothem", mid, center, s.pts[1], markerSize, compose.ResolveStyle(s.o.theme.Marker)),
		)
	}
	if s.vis.ShowCentralAngle {
		arc := polygon.InteriorArc(s.pts[0], center, s.pts[1])
		out = append(out,
			line("central:0", center, s.pts[0], style),
			line("central:1", center, s.pts[1], style),
			sector("angle:central", arc, arcRadius, compose.ResolveStyle(s.o.theme.Arc)),
		)
	}
	if s.vis.ShowCenter {
		out = append(out, dot("center", center, vertexDotRadius, compose.ResolveStyle(s.o.theme.Vertex)))
	}
	return out
}

func (s polygonAssembler) angleArcs() []models.Primitive {
	var out []models.Primitive
	n := len(s.pts)
	construction := compose.ResolveStyle(s.o.theme.Construction)

	for i := range s.pts {
		prev, at, next := s.pts[(i+n-1)%n], s.pts[i], s.pts[(i+1)%n]
		style := compose.Pick(s.o.theme.Arc, s.o.theme.ArcHighlight, s.angles[i])

		if s.vis.ShowInteriorAngles {
			arc := polygon.InteriorArc(prev, at, next)
			out = append(out, sector("angle:interior:"+strconv.Itoa(i), arc, arcRadius, style))
		}
		if s.vis.ShowExteriorAngles {
			ext := polygon.Extension(prev, at, 2*arcRadius)
			arc := polygon.ExteriorArc(prev, at, next)
			out = append(out,
				line("extension:"+strconv.Itoa(i), at, ext, construction),
				sector("angle:exterior:"+strconv.Itoa(i), arc, arcRadius, style),
			)
		}
	}
	return out
}

func (s polygonAssembler) sideLines() []models.Primitive {
	n := len(s.pts)
	out := make([]models.Primitive, 0, n)
	for i := range s.pts {
		style := compose.Pick(s.o.theme.Edge, s.o.theme.EdgeHighlight, s.sides[i])
		out = append(out, line("side:"+strconv.Itoa(i), s.pts[i], s.pts[(i+1)%n], style))
	}
	return out
}

func (s polygonAssembler) vertexDots() []models.Primitive {
	if !s.vis.ShowVertices {
		return nil
	}
	var out []models.Primitive
	for i, p := range s.pts {
		style := compose.Pick(s.o.theme.Vertex, s.o.theme.VertexHigh, s.vertices[i])
		out = append(out, dot("vertex:"+VertexName(i), p, vertexDotRadius, style))
	}
	return out
}

// ============================================================
// Labels
// ============================================================

func (s polygonAssembler) labels() []models.Primitive {
	var out []models.Primitive
	n := len(s.pts)
	center := models.Point{}
	offset := s.o.labelOffset

	if s.vis.ShowVertexLabels {
		for i, p := range s.pts {
			at := compose.PlaceAround(p, center, offset)
			out = append(out, text("label:vertex:"+VertexName(i), VertexName(i), at, s.labelStyle(s.vertices[i])))
		}
	}

	for i := range s.pts {
		label, ok := compose.LabelOverride(s.vis.SideLabels, i, n)
		if !ok {
			if !s.vis.ShowSideLengths {
				continue
			}
			label = compose.FormatMeasure(s.g.SideLength)
		}
		at := compose.PlaceLabelAway(s.pts[i], s.pts[(i+1)%n], offset, center)
		out = append(out, text("label:side:"+strconv.Itoa(i), label, at, s.labelStyle(s.sides[i])))
	}

	// Значения углов ставятся на биссектрисе чуть дальше дуги.
	for i := range s.pts {
		prev, at, next := s.pts[(i+n-1)%n], s.pts[i], s.pts[(i+1)%n]
		override, hasOverride := compose.LabelOverride(s.vis.AngleLabels, i, n)

		if s.vis.ShowInteriorAngles && (s.vis.ShowAngleValues || hasOverride) {
			arc := polygon.InteriorArc(prev, at, next)
			label := compose.Degrees(s.g.InteriorAngle)
			if hasOverride {
				label = override
			}
			pos := arc.PointAt(arc.Mid(), arcRadius+offset)
			out = append(out, text("label:angle:interior:"+strconv.Itoa(i), label, pos, s.labelStyle(s.angles[i])))
		}
		if s.vis.ShowExteriorAngles && s.vis.ShowAngleValues {
			arc := polygon.ExteriorArc(prev, at, next)
			pos := arc.PointAt(arc.Mid(), arcRadius+offset)
			out = append(out, text("label:angle:exterior:"+strconv.Itoa(i), compose.Degrees(s.g.ExteriorAngle), pos, s.labelStyle(s.angles[i])))
		}
	}

	if s.vis.ShowRadius {
		at := compose.PlaceLabel(center, s.pts[0], offset)
		out = append(out, text("label:radius", "r = "+compose.FormatMeasure(s.g.Spec.Radius), at, s.labelStyle(false)))
	}
	if s.vis.ShowApothem {
		at := compose.PlaceLabelAway(center, s.sideMidpoint(0), offset, s.pts[1])
		out = append(out, text("label:apothem", "a = "+compose.FormatMeasure(s.g.Apothem), at, s.labelStyle(false)))
	}
	if s.vis.ShowCentralAngle && s.vis.ShowAngleValues {
		arc := polygon.InteriorArc(s.pts[0], center, s.pts[1])
		pos := arc.PointAt(arc.Mid(), arcRadius+offset)
		out = append(out, text("label:angle:central", compose.Degrees(s.g.CentralAngle), pos, s.labelStyle(false)))
	}
	if s.vis.ShowCenter {
		at := models.Point{X: center.X + offset*0.75, Y: center.Y + offset*0.75}
		out = append(out, text("label:center", "O", at, s.labelStyle(false)))
	}

	return out
}

func (s polygonAssembler) labelStyle(highlighted bool) models.Style {
	return compose.Pick(s.o.theme.Label, s.o.theme.LabelHighlight, highlighted)
}

// corner переводит индекс из Triangle в экранную точку, Center — в начало координат.
func (s polygonAssembler) corner(i int) models.Point {
	if i == polygon.Center {
		return models.Point{}
	}
	return s.pts[i]
}

func (s polygonAssembler) sideMidpoint(i int) models.Point {
	n := len(s.pts)
	return compose.Centroid(s.pts[i%n], s.pts[(i+1)%n])
}
