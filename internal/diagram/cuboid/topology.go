package cuboid

// ============================================================
// Edges
// ============================================================

type Edge struct {
	Name   string
	From   int
	To     int
	Hidden bool
}

// Edges — 12 рёбер в фиксированном порядке. Скрыты ровно три ребра,
// сходящиеся в HiddenVertex: они всегда рисуются пунктиром.
var Edges = [12]Edge{
	{Name: "AB", From: A, To: B, Hidden: true},
	{Name: "BC", From: B, To: C, Hidden: true},
	{Name: "CD", From: C, To: D},
	{Name: "DA", From: D, To: A},
	{Name: "EF", From: E, To: F},
	{Name: "FG", From: F, To: G},
	{Name: "GH", From: G, To: H},
	{Name: "HE", From: H, To: E},
	{Name: "AE", From: A, To: E},
	{Name: "BF", From: B, To: F, Hidden: true},
	{Name: "CG", From: C, To: G},
	{Name: "DH", From: D, To: H},
}

// EdgeIndex ищет ребро по имени в любом направлении ("AB" или "BA").
func EdgeIndex(name string) (int, bool) {
	if len(name) != 2 {
		return 0, false
	}
	rev := string([]byte{name[1], name[0]})
	for i, e := range Edges {
		if e.Name == name || e.Name == rev {
			return i, true
		}
	}
	return 0, false
}

// ============================================================
// Faces
// ============================================================

const (
	FaceBottom = iota
	FaceTop
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
)

type Face struct {
	Name     string
	Vertices [4]int
	Hidden   bool
}

// Faces — грани в порядке FaceBottom..FaceRight. Скрытые грани содержат HiddenVertex.
var Faces = [6]Face{
	{Name: "bottom", Vertices: [4]int{A, B, C, D}, Hidden: true},
	{Name: "top", Vertices: [4]int{E, F, G, H}},
	{Name: "front", Vertices: [4]int{A, B, F, E}, Hidden: true},
	{Name: "back", Vertices: [4]int{D, C, G, H}},
	{Name: "left", Vertices: [4]int{A, D, H, E}},
	{Name: "right", Vertices: [4]int{B, C, G, F}, Hidden: true},
}
