// Package compose решает, как подписывать и подсвечивать элементы чертежа:
// позиции подписей, разрешение стилей и приоритет подсветки.
package compose

import (
	"math"
	"strconv"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"

	"gonum.org/v1/gonum/spatial/r2"
)

// ============================================================
// Label placement
// ============================================================

// PlaceLabel возвращает середину отрезка p1-p2, сдвинутую на offset вдоль нормали
// (dy, -dx)/|p2-p1|. Для вырожденного отрезка возвращается середина.
func PlaceLabel(p1, p2 models.Point, offset float64) models.Point {
	mid := r2.Scale(0.5, r2.Add(p1.Vec(), p2.Vec()))
	d := r2.Sub(p2.Vec(), p1.Vec())
	length := r2.Norm(d)
	if length == 0 {
		return models.FromVec(mid)
	}
	normal := r2.Vec{X: d.Y / length, Y: -d.X / length}
	return models.FromVec(r2.Add(mid, r2.Scale(offset, normal)))
}

// PlaceLabelAway работает как PlaceLabel, но выбирает знак нормали так,
// чтобы подпись уходила от точки from (обычно центра фигуры).
func PlaceLabelAway(p1, p2 models.Point, offset float64, from models.Point) models.Point {
	candidate := PlaceLabel(p1, p2, offset)
	mid := r2.Scale(0.5, r2.Add(p1.Vec(), p2.Vec()))
	outward := r2.Sub(mid, from.Vec())
	shift := r2.Sub(candidate.Vec(), mid)
	if r2.Dot(outward, shift) < 0 {
		return PlaceLabel(p1, p2, -offset)
	}
	return candidate
}

// PlaceAround сдвигает подпись точки на distance прочь от from.
// Если точки совпадают, подпись уходит вверх.
func PlaceAround(p, from models.Point, distance float64) models.Point {
	d := r2.Sub(p.Vec(), from.Vec())
	if r2.Norm(d) == 0 {
		return models.Point{X: p.X, Y: p.Y - distance}
	}
	return models.FromVec(r2.Add(p.Vec(), r2.Scale(distance, r2.Unit(d))))
}

// Centroid — среднее арифметическое точек. Для пустого набора — начало координат.
func Centroid(points ...models.Point) models.Point {
	if len(points) == 0 {
		return models.Point{}
	}
	var sum r2.Vec
	for _, p := range points {
		sum = r2.Add(sum, p.Vec())
	}
	return models.FromVec(r2.Scale(1/float64(len(points)), sum))
}

// ============================================================
// Label text
// ============================================================

// FormatMeasure печатает число с точностью до сотых без хвостовых нулей.
func FormatMeasure(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		rounded = 0 // убираем -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// WithUnits дописывает единицы измерения, если они заданы.
// power 2 и 3 дают "cm²" и "cm³".
func WithUnits(v float64, units string, power int) string {
	s := FormatMeasure(v)
	if units == "" {
		return s
	}
	switch power {
	case 2:
		return s + " " + units + "²"
	case 3:
		return s + " " + units + "³"
	}
	return s + " " + units
}

// Degrees печатает угол со знаком градуса.
func Degrees(v float64) string {
	return FormatMeasure(v) + "°"
}
