package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/config"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/live"
)

// ============================================================
// Live Preview Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3003"
	}

	engine, err := service.NewEngine(cfg.Diagram)
	if err != nil {
		log.Fatalf("init engine: %v", err)
	}

	hub := live.NewHub()

	mux := http.NewServeMux()
	mux.Handle("/stream", live.NewServer(engine, hub))
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"alive","clients":%d}`, hub.Len())
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: time.Duration(cfg.ReadTimeout) * time.Second,
	}

	log.Printf("Starting Live Preview on %s (env: %s)", srv.Addr, cfg.Environment)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
