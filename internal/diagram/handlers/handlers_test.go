package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/config"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"

	"github.com/gofiber/fiber/v3"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	engine, err := service.NewEngine(config.DiagramConfig{Padding: 24, FontSize: 14, PNGWidth: 200, PNGHeight: 150})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	app := fiber.New()
	Register(app, NewDiagramHandler(engine))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 0})
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func TestSolidEndpoint(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name        string
		target      string
		body        string
		status      int
		contentType string
	}{
		{"json default", "/solid", `{"spec":{"width":4,"depth":3,"height":5}}`, http.StatusOK, "application/json"},
		{"empty body", "/solid", "", http.StatusOK, "application/json"},
		{"svg", "/solid?format=svg", `{"spec":{"width":4,"depth":3,"height":5}}`, http.StatusOK, "image/svg+xml"},
		{"png", "/solid?format=png", `{"spec":{"width":4,"depth":3,"height":5}}`, http.StatusOK, "image/png"},
		{"bad json", "/solid", `{"spec":`, http.StatusBadRequest, "application/json"},
		{"bad format", "/solid?format=gif", `{}`, http.StatusBadRequest, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, app, http.MethodPost, tt.target, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
		})
	}
}

func TestSolidJSONResult(t *testing.T) {
	app := newTestApp(t)
	_, body := do(t, app, http.MethodPost, "/solid", `{"spec":{"width":4,"depth":3,"height":-5}}`)

	var res struct {
		Shape    string `json:"shape"`
		Geometry struct {
			Volume float64 `json:"volume"`
		} `json:"geometry"`
		Scene struct {
			Shape      string            `json:"shape"`
			Primitives []json.RawMessage `json:"primitives"`
		} `json:"scene"`
		Adjustments []struct {
			Field string   `json:"field"`
			Given *float64 `json:"given"`
			Used  float64  `json:"used"`
		} `json:"adjustments"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, body)
	}
	if res.Shape != service.ShapeSolid || res.Scene.Shape != "cuboid" {
		t.Errorf("shape = %q / %q", res.Shape, res.Scene.Shape)
	}
	if len(res.Scene.Primitives) == 0 {
		t.Error("no primitives")
	}
	if len(res.Adjustments) != 1 || res.Adjustments[0].Field != "height" {
		t.Fatalf("adjustments = %+v", res.Adjustments)
	}
	if res.Adjustments[0].Given == nil || *res.Adjustments[0].Given != -5 {
		t.Errorf("given = %v", res.Adjustments[0].Given)
	}
}

func TestPolygonEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/polygon", `{"spec":{"sides":6,"radius":5},"visibility":{"showSideLengths":true}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	var res map[string]any
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res["shape"] != service.ShapePolygon {
		t.Errorf("shape = %v", res["shape"])
	}

	resp, body = do(t, app, http.MethodPost, "/polygon?format=svg", `{"spec":{"sides":5}}`)
	if resp.StatusCode != http.StatusOK || !bytes.Contains(body, []byte("<svg")) {
		t.Errorf("svg status = %d", resp.StatusCode)
	}
}

func TestRenderEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, built := do(t, app, http.MethodPost, "/polygon", `{"spec":{"sides":4,"radius":2}}`)
	var res struct {
		Scene json.RawMessage `json:"scene"`
	}
	if err := json.Unmarshal(built, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	tests := []struct {
		name   string
		target string
		body   string
		status int
		prefix string
	}{
		{"svg", "/render", string(res.Scene), http.StatusOK, "<?xml"},
		{"png", "/render?format=png", string(res.Scene), http.StatusOK, "\x89PNG"},
		{"empty body", "/render", "", http.StatusBadRequest, "{"},
		{"bad json", "/render", "nope", http.StatusBadRequest, "{"},
		{"empty viewport", "/render", `{"shape":"x","primitives":[]}`, http.StatusUnprocessableEntity, "{"},
		{"unsafe stroke", "/render", `{"shape":"x","viewport":{"minX":0,"minY":0,"width":10,"height":10},` +
			`"primitives":[{"kind":"line","points":[{"x":0,"y":0},{"x":1,"y":1}],"style":{"stroke":"red\" onload=\"alert(1)"}}]}`,
			http.StatusUnprocessableEntity, "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, app, http.MethodPost, tt.target, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d: %s", resp.StatusCode, tt.status, body)
			}
			if !bytes.HasPrefix(body, []byte(tt.prefix)) {
				t.Errorf("body starts with %q", body[:min(len(body), 16)])
			}
		})
	}
}

func TestMeasuresEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/solid/measures?width=4&depth=3&height=5", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("solid status = %d", resp.StatusCode)
	}
	var solid map[string]any
	if err := json.Unmarshal(body, &solid); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if solid["baseDiagonalLength"] != 5.0 || solid["volume"] != 60.0 || solid["totalSurfaceArea"] != 94.0 {
		t.Errorf("solid measures = %v", solid)
	}

	resp, body = do(t, app, http.MethodGet, "/polygon/measures?sides=6&radius=10", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("polygon status = %d", resp.StatusCode)
	}
	var poly map[string]any
	if err := json.Unmarshal(body, &poly); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if poly["interiorAngleSum"] != 720.0 || poly["centralAngleDegrees"] != 60.0 {
		t.Errorf("polygon measures = %v", poly)
	}

	for _, target := range []string{
		"/solid/measures?width=abc",
		"/polygon/measures?sides=1.5",
		"/polygon/measures?sides=6&radius=x",
		"/polygon/measures",
		"/polygon/measures?radius=2",
	} {
		if resp, _ := do(t, app, http.MethodGet, target, ""); resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d", target, resp.StatusCode)
		}
	}
}

func TestMeasuresAdjustmentsNeverNull(t *testing.T) {
	app := newTestApp(t)

	for _, tt := range []struct {
		target string
		want   int
	}{
		{"/solid/measures?width=4&depth=3&height=5", 0},
		{"/solid/measures?width=-4&depth=3&height=5", 1},
		{"/polygon/measures?sides=6&radius=2", 0},
		{"/polygon/measures?sides=20&radius=2", 1},
	} {
		resp, body := do(t, app, http.MethodGet, tt.target, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status = %d", tt.target, resp.StatusCode)
		}
		var out struct {
			Adjustments *[]json.RawMessage `json:"adjustments"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("%s: decode: %v", tt.target, err)
		}
		if out.Adjustments == nil {
			t.Errorf("%s: adjustments is null", tt.target)
			continue
		}
		if len(*out.Adjustments) != tt.want {
			t.Errorf("%s: %d adjustments, want %d", tt.target, len(*out.Adjustments), tt.want)
		}
	}
}
