package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	diagram "github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/presets/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/presets/repository"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/presets/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Preset Handler
// ============================================================

type PresetHandler struct {
	repo    *repository.Repository
	engine  *diagram.Engine
	storage *service.FileStorage
}

func NewPresetHandler(repo *repository.Repository, engine *diagram.Engine, storage *service.FileStorage) *PresetHandler {
	return &PresetHandler{
		repo:    repo,
		engine:  engine,
		storage: storage,
	}
}

type createRequest struct {
	Name    string          `json:"name"`
	Shape   string          `json:"shape"`
	Payload json.RawMessage `json:"payload"`
}

// Create сохраняет пресет, предварительно проверив, что он собирается в сцену.
func (h *PresetHandler) Create(c fiber.Ctx) error {
	log.Printf("[PRESETS] Create request")

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var req createRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name required"})
	}
	if len(req.Payload) == 0 || string(req.Payload) == "null" {
		req.Payload = json.RawMessage("{}")
	}
	if _, err := h.engine.Build(req.Shape, req.Payload); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	preset := &models.Preset{
		Name:    req.Name,
		Shape:   req.Shape,
		Payload: req.Payload,
	}
	if err := h.repo.Create(context.Background(), preset); err != nil {
		log.Printf("[PRESETS] Create error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save preset"})
	}

	log.Printf("[PRESETS] Created %s (%s)", preset.ID, preset.Shape)
	return c.Status(http.StatusCreated).JSON(preset)
}

func (h *PresetHandler) List(c fiber.Ctx) error {
	presets, err := h.repo.List(context.Background())
	if err != nil {
		log.Printf("[PRESETS] List error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list presets"})
	}
	return c.JSON(presets)
}

func (h *PresetHandler) Get(c fiber.Ctx) error {
	preset, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(preset)
}

// Delete удаляет пресет вместе с экспортированными файлами.
func (h *PresetHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")
	if err := h.repo.Delete(context.Background(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "preset not found"})
		}
		log.Printf("[PRESETS] Delete error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete preset"})
	}
	if err := h.storage.Remove(id); err != nil {
		log.Printf("[PRESETS] Remove files of %s: %v", id, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ============================================================
// Rendering
// ============================================================

// Scene пересобирает пресет и отдаёт полный результат в JSON.
func (h *PresetHandler) Scene(c fiber.Ctx) error {
	res, err := h.build(c)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *PresetHandler) SVG(c fiber.Ctx) error {
	res, err := h.build(c)
	if err != nil {
		return err
	}
	svg, err := h.engine.RenderSVG(&res.Scene)
	if err != nil {
		log.Printf("[PRESETS] SVG error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

func (h *PresetHandler) PNG(c fiber.Ctx) error {
	res, err := h.build(c)
	if err != nil {
		return err
	}
	data, err := h.engine.RenderPNG(&res.Scene)
	if err != nil {
		log.Printf("[PRESETS] PNG error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}
	c.Set("Content-Type", "image/png")
	return c.Send(data)
}

// Export записывает SVG и PNG пресета на диск и возвращает пути.
func (h *PresetHandler) Export(c fiber.Ctx) error {
	res, err := h.build(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	svg, err := h.engine.RenderSVG(&res.Scene)
	if err != nil {
		log.Printf("[PRESETS] Export SVG error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}
	png, err := h.engine.RenderPNG(&res.Scene)
	if err != nil {
		log.Printf("[PRESETS] Export PNG error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}

	svgPath, pngPath := h.storage.SVGPath(id), h.storage.PNGPath(id)
	if err := h.storage.SaveFile(id, svgPath, []byte(svg)); err != nil {
		log.Printf("[PRESETS] Save SVG error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
	}
	if err := h.storage.SaveFile(id, pngPath, png); err != nil {
		log.Printf("[PRESETS] Save PNG error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
	}

	log.Printf("[PRESETS] Exported %s to %s", id, h.storage.PresetDir(id))
	return c.JSON(fiber.Map{"svg": svgPath, "png": pngPath})
}

// ============================================================
// Helpers
// ============================================================

// load достаёт пресет по :id.
func (h *PresetHandler) load(c fiber.Ctx) (*models.Preset, error) {
	preset, err := h.repo.GetByID(context.Background(), c.Params("id"))
	if err == nil {
		return preset, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fiber.NewError(http.StatusNotFound, "preset not found")
	}
	log.Printf("[PRESETS] Load error: %v", err)
	return nil, fiber.NewError(http.StatusInternalServerError, "failed to load preset")
}

func (h *PresetHandler) build(c fiber.Ctx) (diagram.Result, error) {
	preset, err := h.load(c)
	if err != nil {
		return diagram.Result{}, err
	}
	res, err := h.engine.Build(preset.Shape, preset.Payload)
	if err != nil {
		log.Printf("[PRESETS] Build %s error: %v", preset.ID, err)
		return diagram.Result{}, fiber.NewError(http.StatusInternalServerError, "stored preset is invalid")
	}
	return res, nil
}

// ErrorHandler отдаёт ошибки fiber в том же JSON-формате, что и обработчики.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
