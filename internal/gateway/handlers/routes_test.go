package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

// echoUpstream отвечает JSON-описанием полученного запроса.
func echoUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health/live" {
			w.WriteHeader(http.StatusOK)
			return
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Upstream", "echo")
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"method":      r.Method,
			"path":        r.URL.Path,
			"query":       r.URL.RawQuery,
			"body":        string(body),
			"contentType": r.Header.Get("Content-Type"),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func send(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, fiber.TestConfig{Timeout: 0})
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var out map[string]string
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &out)
	return resp, out
}

func TestProxyRoutes(t *testing.T) {
	diagrams := echoUpstream(t)
	presets := echoUpstream(t)

	app := fiber.New()
	Register(app, Upstreams{Diagrams: diagrams.URL, Presets: presets.URL})

	tests := []struct {
		name   string
		method string
		target string
		body   string
		path   string
		query  string
	}{
		{"solid svg", http.MethodPost, "/api/v1/diagrams/solid?format=svg", `{"spec":{}}`, "/solid", "format=svg"},
		{"measures", http.MethodGet, "/api/v1/diagrams/polygon/measures?sides=6&radius=2", "", "/polygon/measures", "sides=6&radius=2"},
		{"preset list", http.MethodGet, "/api/v1/presets", "", "/presets", ""},
		{"preset create", http.MethodPost, "/api/v1/presets", `{"name":"x"}`, "/presets", ""},
		{"preset svg", http.MethodGet, "/api/v1/presets/abc/svg", "", "/presets/abc/svg", ""},
		{"preset delete", http.MethodDelete, "/api/v1/presets/abc", "", "/presets/abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, echo := send(t, app, tt.method, tt.target, tt.body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if echo["method"] != tt.method || echo["path"] != tt.path || echo["query"] != tt.query {
				t.Errorf("upstream saw %s %s?%s, want %s %s?%s",
					echo["method"], echo["path"], echo["query"], tt.method, tt.path, tt.query)
			}
			if echo["body"] != tt.body {
				t.Errorf("upstream body = %q, want %q", echo["body"], tt.body)
			}
			if tt.body != "" && echo["contentType"] != "application/json" {
				t.Errorf("upstream Content-Type = %q", echo["contentType"])
			}
			if resp.Header.Get("X-Upstream") != "echo" {
				t.Error("upstream headers not copied")
			}
		})
	}
}

func TestProxyKeepsUpstreamStatus(t *testing.T) {
	up := echoUpstream(t)
	app := fiber.New()
	Register(app, Upstreams{Diagrams: up.URL, Presets: up.URL})

	resp, _ := send(t, app, http.MethodGet, "/api/v1/diagrams/missing", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestProxyUnreachableUpstream(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()

	app := fiber.New()
	Register(app, Upstreams{Diagrams: dead.URL, Presets: dead.URL})

	resp, body := send(t, app, http.MethodPost, "/api/v1/diagrams/solid", `{}`)
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	if body["error"] == "" {
		t.Error("missing error message")
	}
}

func TestHealthProbes(t *testing.T) {
	up := echoUpstream(t)
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()

	healthy := fiber.New()
	Register(healthy, Upstreams{Diagrams: up.URL, Presets: up.URL})

	for _, target := range []string{"/health/live", "/health/startup", "/health/ready", "/api/v1/"} {
		if resp, _ := send(t, healthy, http.MethodGet, target, ""); resp.StatusCode != http.StatusOK {
			t.Errorf("%s: status = %d", target, resp.StatusCode)
		}
	}

	degraded := fiber.New()
	Register(degraded, Upstreams{Diagrams: up.URL, Presets: dead.URL})
	resp, body := send(t, degraded, http.MethodGet, "/health/ready", "")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("degraded status = %d", resp.StatusCode)
	}
	if body["status"] != "degraded" {
		t.Errorf("degraded body = %v", body)
	}
}
