package scene

import (
	"math"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/compose"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/cuboid"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
)

// ============================================================
// Solid visibility
// ============================================================

// SolidVisibility — что показывать и что подсвечивать на параллелепипеде.
// Индексы граней и рёбер соответствуют cuboid.Faces и cuboid.Edges,
// индексы вершин — cuboid.A..cuboid.H.
type SolidVisibility struct {
	ShowFaces              bool `json:"showFaces"`
	ShowHiddenFaces        bool `json:"showHiddenFaces"`
	ShowVertices           bool `json:"showVertices"`
	ShowVertexLabels       bool `json:"showVertexLabels"`
	ShowDimensions         bool `json:"showDimensions"`
	ShowFaceAreas          bool `json:"showFaceAreas"`
	ShowBaseTriangle       bool `json:"showBaseTriangle"`
	ShowBaseDiagonalLabel  bool `json:"showBaseDiagonalLabel"`
	ShowSpaceTriangle      bool `json:"showSpaceTriangle"`
	ShowSpaceDiagonalLabel bool `json:"showSpaceDiagonalLabel"`
	ShowVolume             bool `json:"showVolume"`

	HighlightFaces    []int `json:"highlightFaces,omitempty"`
	HighlightEdges    []int `json:"highlightEdges,omitempty"`
	HighlightVertices []int `json:"highlightVertices,omitempty"`

	EdgeLabels map[int]string `json:"edgeLabels,omitempty"`
	FaceLabels map[int]string `json:"faceLabels,omitempty"`
}

// DefaultSolidVisibility — грани, подписи вершин и размеры.
func DefaultSolidVisibility() SolidVisibility {
	return SolidVisibility{
		ShowFaces:        true,
		ShowVertexLabels: true,
		ShowDimensions:   true,
	}
}

// Рёбра, на которых подписываются размеры: ширина, глубина, высота.
var dimensionEdges = [3]int{2, 3, 10} // CD, DA, CG

// ============================================================
// Solid assembler
// ============================================================

// AssembleSolid строит сцену параллелепипеда. Порядок отрисовки:
// скрытые грани, скрытые рёбра, видимые грани, треугольники-наложения,
// видимые рёбра и точки, подписи.
func AssembleSolid(spec cuboid.Spec, vis SolidVisibility, opts Options) (models.Scene, cuboid.Geometry, []models.Adjustment) {
	spec, adj := spec.Normalize()
	auto := SolidDisplaySize / math.Max(spec.Width, math.Max(spec.Depth, spec.Height))
	o := opts.resolve(auto)
	g := cuboid.ProjectScaled(spec, o.scale)

	s := solidAssembler{
		g:        g,
		vis:      vis,
		o:        o,
		center:   g.Center(),
		faces:    compose.IndexSet(vis.HighlightFaces, len(cuboid.Faces)),
		edges:    compose.IndexSet(vis.HighlightEdges, len(cuboid.Edges)),
		vertices: compose.IndexSet(vis.HighlightVertices, len(g.Vertices)),
	}

	prims := flatten(
		s.hiddenFaces(),
		s.hiddenEdges(),
		s.visibleFaces(),
		s.overlays(),
		s.visibleEdges(),
		s.vertexDots(),
		s.labels(),
	)

	return models.Scene{
		Shape:      "cuboid",
		Primitives: prims,
		Viewport:   ComputeViewport(prims, o.padding),
	}, g, adj
}

type solidAssembler struct {
	g      cuboid.Geometry
	vis    SolidVisibility
	o      resolved
	center models.Point

	faces    map[int]bool
	edges    map[int]bool
	vertices map[int]bool
}

// hiddenFaces рисует нижнюю грань как "пол"; остальные скрытые грани
// появляются только с ShowHiddenFaces.
func (s solidAssembler) hiddenFaces() []models.Primitive {
	if !s.vis.ShowFaces {
		return nil
	}
	var out []models.Primitive
	for i, f := range cuboid.Faces {
		if !f.Hidden {
			continue
		}
		if i != cuboid.FaceBottom && !s.vis.ShowHiddenFaces {
			continue
		}
		style := compose.Pick(s.o.theme.HiddenFace, s.o.theme.FaceHighlight, s.faces[i])
		out = append(out, poly("face:"+f.Name, s.g.Screen(f.Vertices[:]...), style))
	}
	return out
}

// hiddenEdges рисуются всегда и всегда пунктиром, подсветка на них не действует.
func (s solidAssembler) hiddenEdges() []models.Primitive {
	var out []models.Primitive
	style := compose.ResolveStyle(s.o.theme.HiddenEdge)
	for _, e := range cuboid.Edges {
		if !e.Hidden {
			continue
		}
		out = append(out, line("edge-hidden:"+e.Name, s.screen(e.From), s.screen(e.To), style))
	}
	return out
}

func (s solidAssembler) visibleFaces() []models.Primitive {
	if !s.vis.ShowFaces {
		return nil
	}
	var out []models.Primitive
	for i, f := range cuboid.Faces {
		if f.Hidden {
			continue
		}
		style := compose.Pick(s.o.theme.Face, s.o.theme.FaceHighlight, s.faces[i])
		out = append(out, poly("face:"+f.Name, s.g.Screen(f.Vertices[:]...), style))
	}
	return out
}

// overlays — треугольник с диагональю основания и треугольник с диагональю
// пространства, каждый со своим уголком прямого угла.
func (s solidAssembler) overlays() []models.Primitive {
	var out []models.Primitive
	style := compose.ResolveStyle(s.o.theme.Overlay)
	marker := compose.ResolveStyle(s.o.theme.Marker)

	if s.vis.ShowBaseTriangle {
		out = append(out,
			poly("triangle:base", s.g.Screen(cuboid.A, cuboid.D, cuboid.C), style),
			rightAngle("marker:base", s.screen(cuboid.D), s.screen(cuboid.A), s.screen(cuboid.C), markerSize, marker),
		)
	}
	if s.vis.ShowSpaceTriangle {
		out = append(out,
			poly("triangle:space", s.g.Screen(cuboid.A, cuboid.C, cuboid.G), style),
			rightAngle("marker:space", s.screen(cuboid.C), s.screen(cuboid.A), s.screen(cuboid.G), markerSize, marker),
		)
	}
	return out
}

func (s solidAssembler) visibleEdges() []models.Primitive {
	var out []models.Primitive
	for i, e := range cuboid.Edges {
		if e.Hidden {
			continue
		}
		style := compose.Pick(s.o.theme.Edge, s.o.theme.EdgeHighlight, s.edges[i])
		out = append(out, line("edge:"+e.Name, s.screen(e.From), s.screen(e.To), style))
	}
	return out
}

func (s solidAssembler) vertexDots() []models.Primitive {
	if !s.vis.ShowVertices {
		return nil
	}
	var out []models.Primitive
	for i := range s.g.Vertices {
		style := compose.Pick(s.o.theme.Vertex, s.o.theme.VertexHigh, s.vertices[i])
		out = append(out, dot("vertex:"+cuboid.VertexNames[i], s.screen(i), vertexDotRadius, style))
	}
	return out
}

// ============================================================
// Labels
// ============================================================

func (s solidAssembler) labels() []models.Primitive {
	var out []models.Primitive
	units := s.g.Spec.Units

	if s.vis.ShowVertexLabels {
		for i, v := range s.g.Vertices {
			at := compose.PlaceAround(v.Screen, s.center, s.o.labelOffset)
			out = append(out, text("label:vertex:"+v.Name, v.Name, at, s.labelStyle(s.vertices[i])))
		}
	}

	// Подписи рёбер: сначала размеры, затем пользовательские подписи,
	// которые заменяют размер на том же ребре.
	edgeText := make(map[int]string)
	if s.vis.ShowDimensions {
		dims := [3]float64{s.g.Spec.Width, s.g.Spec.Depth, s.g.Spec.Height}
		for k, idx := range dimensionEdges {
			edgeText[idx] = compose.WithUnits(dims[k], units, 1)
		}
	}
	for i := range cuboid.Edges {
		if label, ok := compose.LabelOverride(s.vis.EdgeLabels, i, len(cuboid.Edges)); ok {
			edgeText[i] = label
		}
	}
	for i, e := range cuboid.Edges {
		label, ok := edgeText[i]
		if !ok {
			continue
		}
		at := compose.PlaceLabelAway(s.screen(e.From), s.screen(e.To), s.o.labelOffset, s.center)
		out = append(out, text("label:edge:"+e.Name, label, at, s.labelStyle(s.edges[i])))
	}

	for i, f := range cuboid.Faces {
		label, ok := compose.LabelOverride(s.vis.FaceLabels, i, len(cuboid.Faces))
		if !ok {
			if !s.vis.ShowFaceAreas || f.Hidden {
				continue
			}
			label = compose.WithUnits(s.g.FaceAreas[i].Area, units, 2)
		}
		at := compose.Centroid(s.g.Screen(f.Vertices[:]...)...)
		out = append(out, text("label:face:"+f.Name, label, at, s.labelStyle(s.faces[i])))
	}

	if s.vis.ShowBaseTriangle && s.vis.ShowBaseDiagonalLabel {
		at := compose.PlaceLabelAway(s.screen(cuboid.A), s.screen(cuboid.C), s.o.labelOffset, s.screen(cuboid.D))
		out = append(out, text("label:diagonal:base", compose.WithUnits(s.g.BaseDiagonal, units, 1), at, s.labelStyle(false)))
	}
	if s.vis.ShowSpaceTriangle && s.vis.ShowSpaceDiagonalLabel {
		at := compose.PlaceLabelAway(s.screen(cuboid.A), s.screen(cuboid.G), s.o.labelOffset, s.screen(cuboid.C))
		out = append(out, text("label:diagonal:space", compose.WithUnits(s.g.SpaceDiagonal, units, 1), at, s.labelStyle(false)))
	}

	if s.vis.ShowVolume {
		bottom := -math.MaxFloat64
		for _, v := range s.g.Vertices {
			bottom = math.Max(bottom, v.Screen.Y)
		}
		at := models.Point{X: s.center.X, Y: bottom + 2*s.o.labelOffset}
		out = append(out, text("label:volume", "V = "+compose.WithUnits(s.g.Volume, units, 3), at, s.labelStyle(false)))
	}

	return out
}

func (s solidAssembler) labelStyle(highlighted bool) models.Style {
	return compose.Pick(s.o.theme.Label, s.o.theme.LabelHighlight, highlighted)
}

func (s solidAssembler) screen(i int) models.Point {
	return s.g.Vertices[i].Screen
}
