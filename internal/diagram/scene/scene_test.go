package scene

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/compose"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/cuboid"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/polygon"
)

func withPrefix(prims []models.Primitive, prefix string) []models.Primitive {
	var out []models.Primitive
	for _, p := range prims {
		if strings.HasPrefix(p.Role, prefix) {
			out = append(out, p)
		}
	}
	return out
}

func byRole(t *testing.T, prims []models.Primitive, role string) models.Primitive {
	t.Helper()
	for _, p := range prims {
		if p.Role == role {
			return p
		}
	}
	t.Fatalf("no primitive with role %q", role)
	return models.Primitive{}
}

func firstIndex(prims []models.Primitive, prefix string) int {
	for i, p := range prims {
		if strings.HasPrefix(p.Role, prefix) {
			return i
		}
	}
	return -1
}

func assertInViewport(t *testing.T, sc models.Scene) {
	t.Helper()
	for _, p := range sc.Primitives {
		for _, pt := range p.Points {
			if !sc.Viewport.Contains(pt) {
				t.Errorf("%s: point %+v outside viewport %+v", p.Role, pt, sc.Viewport)
			}
		}
		if p.Position != nil && !sc.Viewport.Contains(*p.Position) {
			t.Errorf("%s: label at %+v outside viewport %+v", p.Role, *p.Position, sc.Viewport)
		}
	}
}

// ============================================================
// Solid
// ============================================================

func fullSolidVisibility() SolidVisibility {
	return SolidVisibility{
		ShowFaces:              true,
		ShowVertexLabels:       true,
		ShowDimensions:         true,
		ShowFaceAreas:          true,
		ShowBaseTriangle:       true,
		ShowBaseDiagonalLabel:  true,
		ShowSpaceTriangle:      true,
		ShowSpaceDiagonalLabel: true,
		ShowVolume:             true,
	}
}

func TestSolidHiddenEdgesAlwaysDashed(t *testing.T) {
	vis := fullSolidVisibility()
	vis.HighlightEdges = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	sc, _, _ := AssembleSolid(cuboid.Spec{Width: 4, Depth: 3, Height: 5}, vis, Options{})
	theme := compose.DefaultTheme()

	hidden := withPrefix(sc.Primitives, "edge-hidden:")
	if len(hidden) != 3 {
		t.Fatalf("hidden edges = %d, want 3", len(hidden))
	}
	for _, p := range hidden {
		if len(p.Style.Dash) == 0 {
			t.Errorf("%s is not dashed", p.Role)
		}
		if p.Style.Stroke != theme.HiddenEdge.Stroke {
			t.Errorf("%s stroke = %q, highlight leaked into hidden edge", p.Role, p.Style.Stroke)
		}
	}

	visible := withPrefix(sc.Primitives, "edge:")
	if len(visible) != 9 {
		t.Fatalf("visible edges = %d, want 9", len(visible))
	}
	for _, p := range visible {
		if p.Style.Stroke != theme.EdgeHighlight.Stroke {
			t.Errorf("%s stroke = %q, want highlight", p.Role, p.Style.Stroke)
		}
		if len(p.Style.Dash) != 0 {
			t.Errorf("%s is dashed", p.Role)
		}
	}
}

func TestSolidLayerOrder(t *testing.T) {
	sc, _, _ := AssembleSolid(cuboid.Spec{Width: 4, Depth: 3, Height: 5}, fullSolidVisibility(), Options{})

	order := []string{"face:bottom", "edge-hidden:", "face:top", "triangle:base", "edge:", "label:"}
	prev := -1
	for _, prefix := range order {
		idx := firstIndex(sc.Primitives, prefix)
		if idx < 0 {
			t.Fatalf("no primitive with prefix %q", prefix)
		}
		if idx <= prev {
			t.Errorf("%q at %d, expected after %d", prefix, idx, prev)
		}
		prev = idx
	}
	if sc.Shape != "cuboid" {
		t.Errorf("shape = %q", sc.Shape)
	}
}

func TestSolidFaceHighlight(t *testing.T) {
	vis := DefaultSolidVisibility()
	vis.HighlightFaces = []int{cuboid.FaceTop, cuboid.FaceFront}
	sc, _, _ := AssembleSolid(cuboid.Spec{Width: 2, Depth: 2, Height: 2}, vis, Options{})
	theme := compose.DefaultTheme()

	if got := byRole(t, sc.Primitives, "face:top").Style.Fill; got != theme.FaceHighlight.Fill {
		t.Errorf("top fill = %q", got)
	}
	if got := byRole(t, sc.Primitives, "face:left").Style.Fill; got != theme.Face.Fill {
		t.Errorf("left fill = %q", got)
	}
	// Подсветка не делает скрытую грань видимой.
	for _, role := range []string{"face:front", "face:right"} {
		if len(withPrefix(sc.Primitives, role)) != 0 {
			t.Errorf("%s drawn without ShowHiddenFaces", role)
		}
	}

	vis.ShowHiddenFaces = true
	sc, _, _ = AssembleSolid(cuboid.Spec{Width: 2, Depth: 2, Height: 2}, vis, Options{})
	if got := byRole(t, sc.Primitives, "face:front").Style.Fill; got != theme.FaceHighlight.Fill {
		t.Errorf("front fill = %q, want highlight", got)
	}
	if got := byRole(t, sc.Primitives, "face:right").Style.Fill; got != theme.HiddenFace.Fill {
		t.Errorf("right fill = %q, want hidden face", got)
	}
	if firstIndex(sc.Primitives, "face:right") > firstIndex(sc.Primitives, "edge-hidden:") {
		t.Error("hidden face painted after hidden edges")
	}
}

func TestSolidVertexDots(t *testing.T) {
	spec := cuboid.Spec{Width: 4, Depth: 3, Height: 5}
	theme := compose.DefaultTheme()

	vis := DefaultSolidVisibility()
	vis.HighlightVertices = []int{cuboid.A, cuboid.G}
	sc, _, _ := AssembleSolid(spec, vis, Options{})
	if n := len(withPrefix(sc.Primitives, "vertex:")); n != 0 {
		t.Errorf("highlighted vertices drawn without ShowVertices: %d", n)
	}
	// Подсветка всё равно окрашивает подпись.
	if got := byRole(t, sc.Primitives, "label:vertex:A").Style.Fill; got != theme.LabelHighlight.Fill {
		t.Errorf("label A fill = %q", got)
	}

	vis.ShowVertices = true
	sc, _, _ = AssembleSolid(spec, vis, Options{})
	dots := withPrefix(sc.Primitives, "vertex:")
	if len(dots) != 8 {
		t.Fatalf("vertex dots = %d, want 8", len(dots))
	}
	for _, p := range dots {
		want := theme.Vertex.Fill
		if p.Role == "vertex:A" || p.Role == "vertex:G" {
			want = theme.VertexHigh.Fill
		}
		if p.Style.Fill != want {
			t.Errorf("%s fill = %q, want %q", p.Role, p.Style.Fill, want)
		}
	}
	if firstIndex(sc.Primitives, "vertex:") < firstIndex(sc.Primitives, "edge:") ||
		firstIndex(sc.Primitives, "vertex:") > firstIndex(sc.Primitives, "label:") {
		t.Error("vertex dots out of paint order")
	}
}

func TestSolidIgnoresOutOfRangeIndices(t *testing.T) {
	spec := cuboid.Spec{Width: 4, Depth: 3, Height: 5}
	plain, _, _ := AssembleSolid(spec, DefaultSolidVisibility(), Options{})

	vis := DefaultSolidVisibility()
	vis.HighlightEdges = []int{-1, 12, 100}
	vis.HighlightFaces = []int{6, -3}
	vis.HighlightVertices = []int{8}
	vis.EdgeLabels = map[int]string{-1: "x", 12: "y"}
	noisy, _, _ := AssembleSolid(spec, vis, Options{})

	if !reflect.DeepEqual(plain, noisy) {
		t.Error("out-of-range indices changed the scene")
	}
}

func TestSolidLabels(t *testing.T) {
	vis := fullSolidVisibility()
	vis.EdgeLabels = map[int]string{3: "d"}
	sc, g, adj := AssembleSolid(cuboid.Spec{Width: 4, Depth: 3, Height: 5, Units: "cm"}, vis, Options{})

	if len(adj) != 0 {
		t.Errorf("unexpected adjustments: %+v", adj)
	}
	tests := map[string]string{
		"label:edge:CD":        "4 cm",
		"label:edge:DA":        "d",
		"label:edge:CG":        "5 cm",
		"label:diagonal:base":  "5 cm",
		"label:volume":         "V = 60 cm³",
		"label:vertex:A":       "A",
		"label:diagonal:space": compose.WithUnits(g.SpaceDiagonal, "cm", 1),
	}
	for role, want := range tests {
		if got := byRole(t, sc.Primitives, role).Text; got != want {
			t.Errorf("%s = %q, want %q", role, got, want)
		}
	}
	if n := len(withPrefix(sc.Primitives, "label:vertex:")); n != 8 {
		t.Errorf("vertex labels = %d", n)
	}
	// Площади подписываются только на видимых гранях.
	if n := len(withPrefix(sc.Primitives, "label:face:")); n != 3 {
		t.Errorf("face area labels = %d, want 3", n)
	}
}

func TestSolidNormalizesInput(t *testing.T) {
	sc, g, adj := AssembleSolid(cuboid.Spec{Width: -1, Depth: math.NaN(), Height: 5}, DefaultSolidVisibility(), Options{})
	if len(adj) != 2 {
		t.Fatalf("adjustments = %+v", adj)
	}
	if g.Spec.Width != cuboid.DefaultWidth || g.Spec.Depth != cuboid.DefaultDepth {
		t.Errorf("spec = %+v", g.Spec)
	}
	if len(sc.Primitives) == 0 {
		t.Error("empty scene")
	}
}

func TestSolidViewportContainsEverything(t *testing.T) {
	specs := []cuboid.Spec{
		{Width: 4, Depth: 3, Height: 5},
		{Width: 100, Depth: 1, Height: 1},
		{Width: 0.2, Depth: 8, Height: 30},
	}
	for _, spec := range specs {
		sc, _, _ := AssembleSolid(spec, fullSolidVisibility(), Options{})
		assertInViewport(t, sc)
		if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
			t.Errorf("%+v: empty viewport %+v", spec, sc.Viewport)
		}
	}
}

func TestSolidDeterministic(t *testing.T) {
	spec := cuboid.Spec{Width: 2.5, Depth: 7, Height: 1.25}
	a, _, _ := AssembleSolid(spec, fullSolidVisibility(), Options{})
	b, _, _ := AssembleSolid(spec, fullSolidVisibility(), Options{})
	if !reflect.DeepEqual(a, b) {
		t.Error("AssembleSolid is not deterministic")
	}
}

// ============================================================
// Polygon
// ============================================================

func TestPolygonDefaultScene(t *testing.T) {
	sc, g, _ := AssemblePolygon(polygon.DefaultSpec(6, 5), DefaultPolygonVisibility(), Options{})

	if sc.Shape != "polygon" {
		t.Errorf("shape = %q", sc.Shape)
	}
	if len(withPrefix(sc.Primitives, "fill")) != 1 {
		t.Error("missing fill")
	}
	if n := len(withPrefix(sc.Primitives, "side:")); n != 6 {
		t.Errorf("sides = %d", n)
	}
	if n := len(withPrefix(sc.Primitives, "vertex:")); n != 6 {
		t.Errorf("vertex dots = %d", n)
	}
	if n := len(withPrefix(sc.Primitives, "label:vertex:")); n != 6 {
		t.Errorf("vertex labels = %d", n)
	}
	if g.Spec.Sides != 6 {
		t.Errorf("geometry sides = %d", g.Spec.Sides)
	}

	// Радиус при автоматическом масштабе вписывается в PolygonDisplayRadius.
	p := byRole(t, sc.Primitives, "side:0").Points[0]
	if r := math.Hypot(p.X, p.Y); math.Abs(r-PolygonDisplayRadius) > 1e-9 {
		t.Errorf("display radius = %v", r)
	}
}

func TestPolygonTriangulation(t *testing.T) {
	for n := polygon.MinSides; n <= polygon.MaxSides; n++ {
		vis := DefaultPolygonVisibility()
		vis.Triangulation = TriangulationVertex
		vis.TriangleVertex = 1
		sc, _, _ := AssemblePolygon(polygon.DefaultSpec(n, 1), vis, Options{})
		if got := len(withPrefix(sc.Primitives, "triangle:")); got != n-2 {
			t.Errorf("n=%d vertex: triangles = %d", n, got)
		}
		if got := len(withPrefix(sc.Primitives, "diagonal:")); got != n-3 {
			t.Errorf("n=%d vertex: diagonals = %d", n, got)
		}

		vis.Triangulation = TriangulationCenter
		sc, _, _ = AssemblePolygon(polygon.DefaultSpec(n, 1), vis, Options{})
		if got := len(withPrefix(sc.Primitives, "triangle:")); got != n {
			t.Errorf("n=%d center: triangles = %d", n, got)
		}
		if got := len(withPrefix(sc.Primitives, "diagonal:")); got != 0 {
			t.Errorf("n=%d center: diagonals = %d", n, got)
		}
	}
}

func TestPolygonTriangleVertexOutOfRange(t *testing.T) {
	spec := polygon.DefaultSpec(7, 3)
	vis := DefaultPolygonVisibility()
	vis.Triangulation = TriangulationVertex

	a, _, _ := AssemblePolygon(spec, vis, Options{})
	vis.TriangleVertex = 42
	b, _, _ := AssemblePolygon(spec, vis, Options{})
	if !reflect.DeepEqual(a, b) {
		t.Error("out-of-range triangle vertex differs from vertex 0")
	}
}

func TestPolygonAngles(t *testing.T) {
	vis := DefaultPolygonVisibility()
	vis.ShowInteriorAngles = true
	vis.ShowExteriorAngles = true
	vis.ShowAngleValues = true
	vis.HighlightAngles = []int{2}
	vis.AngleLabels = map[int]string{0: "x"}

	sc, _, _ := AssemblePolygon(polygon.DefaultSpec(6, 5), vis, Options{})
	theme := compose.DefaultTheme()

	if n := len(withPrefix(sc.Primitives, "angle:interior:")); n != 6 {
		t.Errorf("interior arcs = %d", n)
	}
	if n := len(withPrefix(sc.Primitives, "angle:exterior:")); n != 6 {
		t.Errorf("exterior arcs = %d", n)
	}
	if n := len(withPrefix(sc.Primitives, "extension:")); n != 6 {
		t.Errorf("extensions = %d", n)
	}
	if got := byRole(t, sc.Primitives, "label:angle:interior:1").Text; got != "120°" {
		t.Errorf("interior value = %q", got)
	}
	if got := byRole(t, sc.Primitives, "label:angle:exterior:1").Text; got != "60°" {
		t.Errorf("exterior value = %q", got)
	}
	if got := byRole(t, sc.Primitives, "label:angle:interior:0").Text; got != "x" {
		t.Errorf("override = %q", got)
	}
	if got := byRole(t, sc.Primitives, "angle:interior:2").Style.Stroke; got != theme.ArcHighlight.Stroke {
		t.Errorf("highlighted arc stroke = %q", got)
	}
	if got := byRole(t, sc.Primitives, "angle:interior:3").Style.Stroke; got != theme.Arc.Stroke {
		t.Errorf("plain arc stroke = %q", got)
	}
}

func TestPolygonConstruction(t *testing.T) {
	vis := DefaultPolygonVisibility()
	vis.ShowCenter = true
	vis.ShowRadius = true
	vis.ShowApothem = true
	vis.ShowCentralAngle = true
	vis.ShowAngleValues = true

	sc, g, _ := AssemblePolygon(polygon.DefaultSpec(4, 2), vis, Options{})
	for _, role := range []string{"radius", "apothem", "marker:apothem", "central:0", "central:1", "angle:central", "center", "label:center"} {
		byRole(t, sc.Primitives, role)
	}
	if got := byRole(t, sc.Primitives, "label:radius").Text; got != "r = 2" {
		t.Errorf("radius label = %q", got)
	}
	if got := byRole(t, sc.Primitives, "label:apothem").Text; got != "a = "+compose.FormatMeasure(g.Apothem) {
		t.Errorf("apothem label = %q", got)
	}
	if got := byRole(t, sc.Primitives, "label:angle:central").Text; got != "90°" {
		t.Errorf("central angle label = %q", got)
	}
}

func TestPolygonLayerOrder(t *testing.T) {
	vis := DefaultPolygonVisibility()
	vis.Triangulation = TriangulationCenter
	vis.ShowRadius = true
	vis.ShowInteriorAngles = true

	sc, _, _ := AssemblePolygon(polygon.DefaultSpec(5, 1), vis, Options{})
	order := []string{"fill", "triangle:", "radius", "angle:interior:", "side:", "vertex:", "label:"}
	prev := -1
	for _, prefix := range order {
		idx := firstIndex(sc.Primitives, prefix)
		if idx <= prev {
			t.Errorf("%q at %d, expected after %d", prefix, idx, prev)
		}
		prev = idx
	}
}

func TestPolygonSideHighlightAndLabels(t *testing.T) {
	vis := DefaultPolygonVisibility()
	vis.ShowSideLengths = true
	vis.HighlightSides = []int{1, 99}
	vis.SideLabels = map[int]string{2: "s"}

	sc, g, _ := AssemblePolygon(polygon.DefaultSpec(6, 10), vis, Options{})
	theme := compose.DefaultTheme()

	if got := byRole(t, sc.Primitives, "side:1").Style.Stroke; got != theme.EdgeHighlight.Stroke {
		t.Errorf("side 1 stroke = %q", got)
	}
	if got := byRole(t, sc.Primitives, "side:0").Style.Stroke; got != theme.Edge.Stroke {
		t.Errorf("side 0 stroke = %q", got)
	}
	if got := byRole(t, sc.Primitives, "label:side:0").Text; got != compose.FormatMeasure(g.SideLength) {
		t.Errorf("side label = %q", got)
	}
	if got := byRole(t, sc.Primitives, "label:side:2").Text; got != "s" {
		t.Errorf("side override = %q", got)
	}
	if got := byRole(t, sc.Primitives, "label:side:1").Style.Fill; got != theme.LabelHighlight.Fill {
		t.Errorf("highlighted side label fill = %q", got)
	}
}

func TestPolygonViewportContainsEverything(t *testing.T) {
	vis := PolygonVisibility{
		ShowFill: true, ShowVertices: true, ShowVertexLabels: true, ShowSideLengths: true,
		ShowInteriorAngles: true, ShowExteriorAngles: true, ShowAngleValues: true,
		ShowCenter: true, ShowRadius: true, ShowApothem: true, ShowCentralAngle: true,
		Triangulation: TriangulationVertex,
	}
	for n := polygon.MinSides; n <= polygon.MaxSides; n++ {
		sc, _, _ := AssemblePolygon(polygon.Spec{Sides: n, Radius: 3, RotationDegrees: 17}, vis, Options{})
		assertInViewport(t, sc)
	}
}

func TestPolygonOptions(t *testing.T) {
	spec := polygon.DefaultSpec(3, 1)
	sc, _, _ := AssemblePolygon(spec, DefaultPolygonVisibility(), Options{Scale: 10, Padding: Padding(0), FontSize: 20})

	p := byRole(t, sc.Primitives, "side:0").Points[0]
	if r := math.Hypot(p.X, p.Y); math.Abs(r-10) > 1e-9 {
		t.Errorf("explicit scale radius = %v", r)
	}
	if got := byRole(t, sc.Primitives, "label:vertex:A").Style.FontSize; got != 20 {
		t.Errorf("font size = %v", got)
	}

	padded, _, _ := AssemblePolygon(spec, DefaultPolygonVisibility(), Options{Scale: 10, FontSize: 20})
	if math.Abs(padded.Viewport.Width-sc.Viewport.Width-2*DefaultPadding) > 1e-6 {
		t.Errorf("default padding not applied: %v vs %v", padded.Viewport.Width, sc.Viewport.Width)
	}
}

func TestVertexName(t *testing.T) {
	tests := map[int]string{0: "A", 5: "F", 11: "L", 25: "Z", 26: "P26"}
	for i, want := range tests {
		if got := VertexName(i); got != want {
			t.Errorf("VertexName(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestComputeViewportEmpty(t *testing.T) {
	vp := ComputeViewport(nil, 5)
	if vp.Width != 10 || vp.Height != 10 || vp.MinX != -5 {
		t.Errorf("empty viewport = %+v", vp)
	}
}
