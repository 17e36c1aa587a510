// Package service связывает геометрию, сборщик сцены и рендереры в один
// вызов, общий для HTTP-обработчиков, пресетов и live-превью.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/config"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/cuboid"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/polygon"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/render"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/scene"
)

const (
	ShapeSolid   = "solid"
	ShapePolygon = "polygon"
)

var ErrUnknownShape = errors.New("unknown shape")

// ============================================================
// Requests
// ============================================================

// SolidRequest — тело запроса на параллелепипед. Без visibility
// используется DefaultSolidVisibility.
type SolidRequest struct {
	Spec       cuboid.Spec            `json:"spec"`
	Visibility *scene.SolidVisibility `json:"visibility,omitempty"`
	Options    scene.Options          `json:"options"`
}

// PolygonSpec отличается от polygon.Spec указателем на поворот:
// отсутствующий поворот означает -90°, а явный 0 остаётся нулём.
type PolygonSpec struct {
	Sides           int      `json:"sides"`
	Radius          float64  `json:"radius"`
	RotationDegrees *float64 `json:"rotationDegrees,omitempty"`
}

func (s PolygonSpec) Spec() polygon.Spec {
	spec := polygon.DefaultSpec(s.Sides, s.Radius)
	if s.RotationDegrees != nil {
		spec.RotationDegrees = *s.RotationDegrees
	}
	return spec
}

type PolygonRequest struct {
	Spec       PolygonSpec              `json:"spec"`
	Visibility *scene.PolygonVisibility `json:"visibility,omitempty"`
	Options    scene.Options            `json:"options"`
}

// ============================================================
// Result
// ============================================================

type Result struct {
	Shape       string              `json:"shape"`
	Geometry    any                 `json:"geometry"`
	Scene       models.Scene        `json:"scene"`
	Adjustments []models.Adjustment `json:"adjustments"`
}

// ============================================================
// Engine
// ============================================================

type Engine struct {
	defaults config.DiagramConfig
	svg      *render.SVGRenderer
	png      *render.PNGRenderer
}

func NewEngine(cfg config.DiagramConfig) (*Engine, error) {
	png, err := render.NewPNGRenderer(cfg.PNGWidth, cfg.PNGHeight)
	if err != nil {
		return nil, fmt.Errorf("png renderer: %w", err)
	}
	return &Engine{
		defaults: cfg,
		svg:      render.NewSVGRenderer(),
		png:      png,
	}, nil
}

// Solid собирает сцену параллелепипеда.
func (e *Engine) Solid(req SolidRequest) Result {
	vis := scene.DefaultSolidVisibility()
	if req.Visibility != nil {
		vis = *req.Visibility
	}
	sc, geom, adj := scene.AssembleSolid(req.Spec, vis, e.options(req.Options))
	logAdjustments(ShapeSolid, adj)
	return Result{Shape: ShapeSolid, Geometry: geom, Scene: sc, Adjustments: models.NonNilAdjustments(adj)}
}

// Polygon собирает сцену правильного многоугольника.
func (e *Engine) Polygon(req PolygonRequest) Result {
	vis := scene.DefaultPolygonVisibility()
	if req.Visibility != nil {
		vis = *req.Visibility
	}
	sc, geom, adj := scene.AssemblePolygon(req.Spec.Spec(), vis, e.options(req.Options))
	logAdjustments(ShapePolygon, adj)
	return Result{Shape: ShapePolygon, Geometry: geom, Scene: sc, Adjustments: models.NonNilAdjustments(adj)}
}

// Build декодирует тело запроса по имени фигуры и собирает сцену.
func (e *Engine) Build(shape string, payload []byte) (Result, error) {
	switch shape {
	case ShapeSolid:
		var req SolidRequest
		if err := decode(payload, &req); err != nil {
			return Result{}, err
		}
		return e.Solid(req), nil
	case ShapePolygon:
		var req PolygonRequest
		if err := decode(payload, &req); err != nil {
			return Result{}, err
		}
		return e.Polygon(req), nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
}

func (e *Engine) RenderSVG(sc *models.Scene) (string, error) {
	return e.svg.Render(sc)
}

func (e *Engine) RenderPNG(sc *models.Scene) ([]byte, error) {
	return e.png.Render(sc)
}

func (e *Engine) options(o scene.Options) scene.Options {
	if o.Padding == nil && e.defaults.Padding > 0 {
		o.Padding = scene.Padding(e.defaults.Padding)
	}
	if o.FontSize <= 0 {
		o.FontSize = e.defaults.FontSize
	}
	return o
}

// ============================================================
// Helpers
// ============================================================

func decode(payload []byte, v any) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func logAdjustments(shape string, adj []models.Adjustment) {
	for _, a := range adj {
		log.Printf("[DIAGRAM] %s: %s %v replaced with %v", shape, a.Field, a.Given, a.Used)
	}
}
