package polygon

import "math"

// ============================================================
// Derived values
// ============================================================

// InteriorAngle — внутренний угол в градусах.
func InteriorAngle(sides int) float64 {
	return float64(sides-2) * 180 / float64(sides)
}

// ExteriorAngle — внешний угол в градусах.
func ExteriorAngle(sides int) float64 {
	return 360 / float64(sides)
}

// CentralAngle — угол, под которым сторона видна из центра.
func CentralAngle(sides int) float64 {
	return 360 / float64(sides)
}

// InteriorAngleSum — сумма внутренних углов, (n-2)·180.
func InteriorAngleSum(sides int) float64 {
	return float64(sides-2) * 180
}

func Apothem(sides int, radius float64) float64 {
	return radius * math.Cos(math.Pi/float64(sides))
}

func SideLength(sides int, radius float64) float64 {
	return 2 * radius * math.Sin(math.Pi/float64(sides))
}

func Area(sides int, radius float64) float64 {
	return 0.5 * float64(sides) * radius * radius * math.Sin(2*math.Pi/float64(sides))
}

func Perimeter(sides int, radius float64) float64 {
	return float64(sides) * SideLength(sides, radius)
}
