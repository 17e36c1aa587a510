// Package scene собирает упорядоченный список примитивов и viewport
// из геометрии фигуры и записи видимости.
package scene

import (
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/compose"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
)

// ============================================================
// Defaults
// ============================================================

const (
	DefaultPadding     = 24.0
	DefaultLabelOffset = 16.0
	DefaultFontSize    = 14.0

	// Размер, в который вписывается большее измерение параллелепипеда
	// или радиус многоугольника при автоматическом масштабе.
	SolidDisplaySize     = 180.0
	PolygonDisplayRadius = 140.0

	markerSize      = 10.0
	arcRadius       = 22.0
	vertexDotRadius = 3.5
)

// ============================================================
// Options
// ============================================================

// Options — параметры отображения. Нулевые значения заменяются значениями
// по умолчанию; Padding задаётся указателем, чтобы можно было передать 0.
type Options struct {
	Scale       float64        `json:"scale,omitempty"`
	Padding     *float64       `json:"padding,omitempty"`
	LabelOffset float64        `json:"labelOffset,omitempty"`
	FontSize    float64        `json:"fontSize,omitempty"`
	Theme       *compose.Theme `json:"theme,omitempty"`
}

// Padding возвращает указатель на значение отступа для Options.
func Padding(v float64) *float64 {
	return &v
}

type resolved struct {
	scale       float64
	padding     float64
	labelOffset float64
	theme       compose.Theme
}

func (o Options) resolve(autoScale float64) resolved {
	r := resolved{
		scale:       o.Scale,
		padding:     DefaultPadding,
		labelOffset: o.LabelOffset,
		theme:       compose.DefaultTheme(),
	}
	if !models.IsFinite(r.scale) || r.scale <= 0 {
		r.scale = autoScale
	}
	if o.Padding != nil && models.IsFinite(*o.Padding) && *o.Padding >= 0 {
		r.padding = *o.Padding
	}
	if !models.IsFinite(r.labelOffset) || r.labelOffset <= 0 {
		r.labelOffset = DefaultLabelOffset
	}
	if o.Theme != nil {
		r.theme = r.theme.Merge(*o.Theme)
	}
	if models.IsFinite(o.FontSize) && o.FontSize > 0 {
		r.theme.Label.FontSize = o.FontSize
	}
	return r
}
