package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
)

// ============================================================
// Path Builder
// ============================================================

// PathBuilder собирает SVG path data из абсолютных команд.
type PathBuilder struct {
	sb strings.Builder
}

func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

func (b *PathBuilder) MoveTo(p models.Point) *PathBuilder {
	b.op("M")
	b.sb.WriteString(FormatPoint(p))
	return b
}

func (b *PathBuilder) LineTo(p models.Point) *PathBuilder {
	b.op("L")
	b.sb.WriteString(FormatPoint(p))
	return b
}

// ArcTo добавляет круговую дугу радиуса r до точки p.
func (b *PathBuilder) ArcTo(r float64, largeArc, sweep bool, p models.Point) *PathBuilder {
	b.op("A")
	b.sb.WriteString(FormatFloat(r))
	b.sb.WriteString(" ")
	b.sb.WriteString(FormatFloat(r))
	b.sb.WriteString(" 0 ")
	b.sb.WriteString(flag(largeArc))
	b.sb.WriteString(" ")
	b.sb.WriteString(flag(sweep))
	b.sb.WriteString(" ")
	b.sb.WriteString(FormatPoint(p))
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.op("Z")
	return b
}

func (b *PathBuilder) String() string {
	return b.sb.String()
}

// Polyline строит path data ломаной; closed замыкает её.
func Polyline(points []models.Point, closed bool) string {
	b := NewPathBuilder()
	for i, p := range points {
		if i == 0 {
			b.MoveTo(p)
			continue
		}
		b.LineTo(p)
	}
	if closed && len(points) > 0 {
		b.Close()
	}
	return b.String()
}

func (b *PathBuilder) op(name string) {
	if b.sb.Len() > 0 {
		b.sb.WriteString(" ")
	}
	b.sb.WriteString(name)
	if name != "Z" {
		b.sb.WriteString(" ")
	}
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ============================================================
// Formatting helpers
// ============================================================

// FormatFloat печатает координату с точностью 1e-4 без хвостовых нулей.
func FormatFloat(val float64) string {
	rounded := math.Round(val*1e4) / 1e4
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func FormatPoint(p models.Point) string {
	return FormatFloat(p.X) + " " + FormatFloat(p.Y)
}
