package models

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec переводит точку в вектор gonum для арифметики.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// FromVec строит точку из вектора gonum.
func FromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// ============================================================
// Styles
// ============================================================

// Style описывает оформление примитива. Нулевое поле означает "не задано":
// ResolveStyle подставит значение по умолчанию. Отсутствие заливки задаётся
// явно строкой "none".
type Style struct {
	Stroke      string    `json:"stroke,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	Fill        string    `json:"fill,omitempty"`
	FillOpacity float64   `json:"fillOpacity,omitempty"`
	Dash        []float64 `json:"dash,omitempty"`
	FontSize    float64   `json:"fontSize,omitempty"`
	FontWeight  string    `json:"fontWeight,omitempty"`
	TextAnchor  string    `json:"textAnchor,omitempty"`
}

var colorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|none|[a-z]+)$`)

// ValidColor: #rgb..#rrggbbaa, "none" или имя цвета CSS.
func ValidColor(c string) bool { return colorRe.MatchString(c) }

func ValidFontWeight(w string) bool {
	switch w {
	case "normal", "bold", "bolder", "lighter",
		"100", "200", "300", "400", "500", "600", "700", "800", "900":
		return true
	}
	return false
}

func ValidTextAnchor(a string) bool {
	return a == "start" || a == "middle" || a == "end"
}

// Validate проверяет строковые поля стиля. Пустое поле допустимо.
// Стили попадают в SVG как атрибуты, поэтому всё, что не цвет и не
// значение из перечисления, отвергается.
func (s Style) Validate() error {
	if s.Stroke != "" && !ValidColor(s.Stroke) {
		return fmt.Errorf("invalid stroke %q", s.Stroke)
	}
	if s.Fill != "" && !ValidColor(s.Fill) {
		return fmt.Errorf("invalid fill %q", s.Fill)
	}
	if s.FontWeight != "" && !ValidFontWeight(s.FontWeight) {
		return fmt.Errorf("invalid font weight %q", s.FontWeight)
	}
	if s.TextAnchor != "" && !ValidTextAnchor(s.TextAnchor) {
		return fmt.Errorf("invalid text anchor %q", s.TextAnchor)
	}
	return nil
}

// ============================================================
// Drawable primitives
// ============================================================

type Kind string

const (
	KindPath    Kind = "path"
	KindPolygon Kind = "polygon"
	KindLine    Kind = "line"
	KindText    Kind = "text"
)

// Primitive — единственный выходной артефакт сборщика сцены.
//
// Для polygon и line геометрия лежит в Points. Для path в D лежит SVG path data,
// а Points содержит опорные точки (концы дуг, центр), по которым считается viewport.
// Для text используется Position и Text.
type Primitive struct {
	Kind     Kind    `json:"kind"`
	Role     string  `json:"role,omitempty"`
	Points   []Point `json:"points,omitempty"`
	D        string  `json:"d,omitempty"`
	Position *Point  `json:"position,omitempty"`
	Text     string  `json:"text,omitempty"`
	Style    Style   `json:"style"`
}

type Viewport struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains сообщает, лежит ли точка внутри viewport (границы включительно).
func (v Viewport) Contains(p Point) bool {
	return p.X >= v.MinX && p.X <= v.MinX+v.Width &&
		p.Y >= v.MinY && p.Y <= v.MinY+v.Height
}

type Scene struct {
	Shape      string      `json:"shape"`
	Primitives []Primitive `json:"primitives"`
	Viewport   Viewport    `json:"viewport"`
}

// ============================================================
// Input normalization
// ============================================================

// Adjustment фиксирует подмену входного значения, вышедшего за контракт.
type Adjustment struct {
	Field string  `json:"field"`
	Given float64 `json:"given"`
	Used  float64 `json:"used"`
}

// NonNilAdjustments превращает nil в пустой срез, чтобы в JSON был [], а не null.
func NonNilAdjustments(adj []Adjustment) []Adjustment {
	if adj == nil {
		return []Adjustment{}
	}
	return adj
}

// MarshalJSON пишет нечисловое исходное значение как null: JSON не знает NaN и Inf.
func (a Adjustment) MarshalJSON() ([]byte, error) {
	var given *float64
	if IsFinite(a.Given) {
		given = &a.Given
	}
	return json.Marshal(struct {
		Field string   `json:"field"`
		Given *float64 `json:"given"`
		Used  float64  `json:"used"`
	}{a.Field, given, a.Used})
}

// IsFinite отсекает NaN и бесконечности во входных параметрах.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
