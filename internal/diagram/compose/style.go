package compose

import (
	"slices"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
)

// ============================================================
// Style resolution
// ============================================================

// ResolveStyle накладывает overrides на defaults по порядку: каждое ненулевое
// и допустимое поле override заменяет значение. Недопустимые цвета и значения
// перечислений отбрасываются. Вызывается один раз на примитив.
func ResolveStyle(defaults models.Style, overrides ...models.Style) models.Style {
	out := defaults
	out.Dash = slices.Clone(defaults.Dash)
	for _, o := range overrides {
		if o.Stroke != "" && models.ValidColor(o.Stroke) {
			out.Stroke = o.Stroke
		}
		if o.StrokeWidth != 0 {
			out.StrokeWidth = o.StrokeWidth
		}
		if o.Fill != "" && models.ValidColor(o.Fill) {
			out.Fill = o.Fill
		}
		if o.FillOpacity != 0 {
			out.FillOpacity = o.FillOpacity
		}
		if len(o.Dash) > 0 {
			out.Dash = slices.Clone(o.Dash)
		}
		if o.FontSize != 0 {
			out.FontSize = o.FontSize
		}
		if o.FontWeight != "" && models.ValidFontWeight(o.FontWeight) {
			out.FontWeight = o.FontWeight
		}
		if o.TextAnchor != "" && models.ValidTextAnchor(o.TextAnchor) {
			out.TextAnchor = o.TextAnchor
		}
	}
	return out
}

// ============================================================
// Theme
// ============================================================

// Theme — именованные стили по умолчанию для всех ролей примитивов.
type Theme struct {
	Edge           models.Style `json:"edge"`
	HiddenEdge     models.Style `json:"hiddenEdge"`
	EdgeHighlight  models.Style `json:"edgeHighlight"`
	Face           models.Style `json:"face"`
	HiddenFace     models.Style `json:"hiddenFace"`
	FaceHighlight  models.Style `json:"faceHighlight"`
	Overlay        models.Style `json:"overlay"`
	Construction   models.Style `json:"construction"`
	Marker         models.Style `json:"marker"`
	Arc            models.Style `json:"arc"`
	ArcHighlight   models.Style `json:"arcHighlight"`
	Vertex         models.Style `json:"vertex"`
	VertexHigh     models.Style `json:"vertexHighlight"`
	Label          models.Style `json:"label"`
	LabelHighlight models.Style `json:"labelHighlight"`
}

// DefaultTheme — палитра чертежей по умолчанию.
func DefaultTheme() Theme {
	return Theme{
		Edge:          models.Style{Stroke: "#1f2937", StrokeWidth: 2, Fill: "none"},
		HiddenEdge:    models.Style{Stroke: "#6b7280", StrokeWidth: 1.5, Fill: "none", Dash: []float64{6, 4}},
		EdgeHighlight: models.Style{Stroke: "#dc2626", StrokeWidth: 3.5},
		Face:          models.Style{Stroke: "none", Fill: "#93c5fd", FillOpacity: 0.25},
		HiddenFace:    models.Style{Stroke: "none", Fill: "#e5e7eb", FillOpacity: 0.4},
		FaceHighlight: models.Style{Fill: "#fca5a5", FillOpacity: 0.55},
		Overlay:       models.Style{Stroke: "#2563eb", StrokeWidth: 2, Fill: "#bfdbfe", FillOpacity: 0.35},
		Construction:  models.Style{Stroke: "#9ca3af", StrokeWidth: 1.5, Fill: "none", Dash: []float64{4, 4}},
		Marker:        models.Style{Stroke: "#111827", StrokeWidth: 1.5, Fill: "none"},
		Arc:           models.Style{Stroke: "#059669", StrokeWidth: 1.5, Fill: "#a7f3d0", FillOpacity: 0.4},
		ArcHighlight:  models.Style{Stroke: "#dc2626", StrokeWidth: 2.5, Fill: "#fecaca", FillOpacity: 0.6},
		Vertex:        models.Style{Stroke: "none", Fill: "#1f2937"},
		VertexHigh:    models.Style{Fill: "#dc2626"},
		Label: models.Style{
			Stroke: "none", Fill: "#111827", FontSize: 14, FontWeight: "normal", TextAnchor: "middle",
		},
		LabelHighlight: models.Style{Fill: "#dc2626", FontWeight: "bold"},
	}
}

// Merge накладывает непустые стили override поверх темы.
func (t Theme) Merge(o Theme) Theme {
	t.Edge = ResolveStyle(t.Edge, o.Edge)
	t.HiddenEdge = ResolveStyle(t.HiddenEdge, o.HiddenEdge)
	t.EdgeHighlight = ResolveStyle(t.EdgeHighlight, o.EdgeHighlight)
	t.Face = ResolveStyle(t.Face, o.Face)
	t.HiddenFace = ResolveStyle(t.HiddenFace, o.HiddenFace)
	t.FaceHighlight = ResolveStyle(t.FaceHighlight, o.FaceHighlight)
	t.Overlay = ResolveStyle(t.Overlay, o.Overlay)
	t.Construction = ResolveStyle(t.Construction, o.Construction)
	t.Marker = ResolveStyle(t.Marker, o.Marker)
	t.Arc = ResolveStyle(t.Arc, o.Arc)
	t.ArcHighlight = ResolveStyle(t.ArcHighlight, o.ArcHighlight)
	t.Vertex = ResolveStyle(t.Vertex, o.Vertex)
	t.VertexHigh = ResolveStyle(t.VertexHigh, o.VertexHigh)
	t.Label = ResolveStyle(t.Label, o.Label)
	t.LabelHighlight = ResolveStyle(t.LabelHighlight, o.LabelHighlight)
	return t
}

// ============================================================
// Highlight precedence
// ============================================================

// Pick возвращает итоговый стиль элемента: подсветка всегда перекрывает
// стиль по умолчанию. Видимость решается до вызова и на стиль не влияет.
func Pick(base, highlight models.Style, highlighted bool) models.Style {
	if highlighted {
		return ResolveStyle(base, highlight)
	}
	return ResolveStyle(base)
}

// IndexSet собирает множество допустимых индексов в [0, n).
// Индексы вне диапазона молча отбрасываются.
func IndexSet(indices []int, n int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < n {
			set[i] = true
		}
	}
	return set
}

// LabelOverride возвращает подпись из overrides для индекса в [0, n).
func LabelOverride(overrides map[int]string, i, n int) (string, bool) {
	if i < 0 || i >= n {
		return "", false
	}
	s, ok := overrides[i]
	return s, ok && s != ""
}
