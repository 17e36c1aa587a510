package cuboid

import "math"

// ============================================================
// Derived values
// ============================================================
//
// Чистые функции от размеров; генераторы вопросов используют их напрямую,
// чтобы текст задачи и чертёж совпадали численно.

// BaseDiagonal — диагональ нижней грани.
func BaseDiagonal(width, depth float64) float64 {
	return math.Sqrt(width*width + depth*depth)
}

// SpaceDiagonal — диагональ, соединяющая противоположные вершины через объём.
func SpaceDiagonal(width, depth, height float64) float64 {
	return math.Sqrt(width*width + depth*depth + height*height)
}

// FaceAreas возвращает площади граней в порядке Faces.
func FaceAreas(width, depth, height float64) [6]FaceArea {
	return [6]FaceArea{
		{Face: Faces[FaceBottom].Name, Area: width * depth},
		{Face: Faces[FaceTop].Name, Area: width * depth},
		{Face: Faces[FaceFront].Name, Area: width * height},
		{Face: Faces[FaceBack].Name, Area: width * height},
		{Face: Faces[FaceLeft].Name, Area: depth * height},
		{Face: Faces[FaceRight].Name, Area: depth * height},
	}
}

func SurfaceArea(width, depth, height float64) float64 {
	return 2 * (width*depth + width*height + depth*height)
}

func Volume(width, depth, height float64) float64 {
	return width * depth * height
}
