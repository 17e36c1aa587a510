package handlers

import (
	"net/http"
	"strconv"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/cuboid"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/polygon"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Measures Handlers
// ============================================================

// SolidMeasures отдаёт производные величины параллелепипеда без сцены.
func SolidMeasures(c fiber.Ctx) error {
	w, err1 := queryFloat(c, "width", cuboid.DefaultWidth)
	d, err2 := queryFloat(c, "depth", cuboid.DefaultDepth)
	h, err3 := queryFloat(c, "height", cuboid.DefaultHeight)
	if err1 != nil || err2 != nil || err3 != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "width, depth and height must be numbers"})
	}

	spec, adj := cuboid.Spec{Width: w, Depth: d, Height: h}.Normalize()
	w, d, h = spec.Width, spec.Depth, spec.Height

	return c.JSON(fiber.Map{
		"spec":                spec,
		"baseDiagonalLength":  cuboid.BaseDiagonal(w, d),
		"spaceDiagonalLength": cuboid.SpaceDiagonal(w, d, h),
		"faceAreas":           cuboid.FaceAreas(w, d, h),
		"totalSurfaceArea":    cuboid.SurfaceArea(w, d, h),
		"volume":              cuboid.Volume(w, d, h),
		"adjustments":         models.NonNilAdjustments(adj),
	})
}

// PolygonMeasures отдаёт углы и размеры правильного многоугольника.
func PolygonMeasures(c fiber.Ctx) error {
	raw := c.Query("sides")
	if raw == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "sides is required"})
	}
	sides, err := strconv.Atoi(raw)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "sides must be an integer"})
	}
	radius, err := queryFloat(c, "radius", polygon.DefaultRadius)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "radius must be a number"})
	}

	spec, adj := polygon.DefaultSpec(sides, radius).Normalize()
	n, r := spec.Sides, spec.Radius

	return c.JSON(fiber.Map{
		"spec":                 spec,
		"interiorAngleDegrees": polygon.InteriorAngle(n),
		"exteriorAngleDegrees": polygon.ExteriorAngle(n),
		"centralAngleDegrees":  polygon.CentralAngle(n),
		"interiorAngleSum":     polygon.InteriorAngleSum(n),
		"apothem":              polygon.Apothem(n, r),
		"sideLength":           polygon.SideLength(n, r),
		"area":                 polygon.Area(n, r),
		"perimeter":            polygon.Perimeter(n, r),
		"adjustments":          models.NonNilAdjustments(adj),
	})
}

func queryFloat(c fiber.Ctx, key string, def float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
