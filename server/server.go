// Package server exposes the generator as a small HTTP preview service:
// each request builds a fresh instance from query parameters and returns
// it rendered as SVG or JSON.
package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jcnauta/mscflp-gen/generate"
	"github.com/jcnauta/mscflp-gen/models"
	"github.com/jcnauta/mscflp-gen/render"
	"github.com/jcnauta/mscflp-gen/spatial"
)

// Config holds the server settings.
type Config struct {
	Port      int
	DebugMode bool
}

// NewMux builds the route table of the preview server.
func NewMux(config *Config) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleIndex(config))
	mux.HandleFunc("/generate", handleGenerate(config))
	return mux
}

// Start launches the preview server on the specified port
func Start(port int) error {
	config := &Config{Port: port}
	mux := NewMux(config)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Preview server listening on http://localhost:%d", config.Port)
	return server.ListenAndServe()
}

// handleIndex serves a minimal landing page pointing at /generate.
func handleIndex(config *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>mscflp-gen preview</title></head>
<body>
<h1>MSCFLP instance preview</h1>
<p>Try <a href="/generate?services=2&locations=5&points=12">/generate?services=2&amp;locations=5&amp;points=12</a>.</p>
<p>Parameters: services, locations, points, factor, seed, format (svg or json), noise.</p>
</body>
</html>`)
	}
}

// handleGenerate builds an instance from query parameters and renders it.
func handleGenerate(config *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := parseParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ins, err := generate.Generate(cfg)
		switch {
		case errors.Is(err, generate.ErrBadConfig):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, spatial.ErrInfeasibleDensity):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case err != nil:
			log.Printf("generation failed: %v", err)
			http.Error(w, "generation failed", http.StatusInternalServerError)
			return
		}
		for _, adv := range ins.Advisories {
			log.Printf("advisory (%s): %s", adv.Kind, adv.Message)
		}

		format := r.URL.Query().Get("format")
		if format == "" {
			format = "svg"
		}
		renderer, err := render.GetRenderer(format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		options := render.NewDefaultOptions(format)
		if noise, perr := strconv.ParseFloat(r.URL.Query().Get("noise"), 64); perr == nil {
			options.NoiseIntensity = noise
		}
		output, err := renderer.Render(ins, options)
		if err != nil {
			log.Printf("rendering failed: %v", err)
			http.Error(w, "rendering failed", http.StatusInternalServerError)
			return
		}

		switch format {
		case "svg":
			w.Header().Set("Content-Type", "image/svg+xml")
		case "json":
			w.Header().Set("Content-Type", "application/json")
		default:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		w.Write(output)
	}
}

// parseParams reads the generation parameters from the request query.
// Seed defaults to the current time so repeated previews vary.
func parseParams(r *http.Request) (models.Config, error) {
	q := r.URL.Query()
	cfg := models.Config{
		ServiceRangeFactor: 1.0,
		Seed:               time.Now().UnixNano(),
	}

	var err error
	if cfg.Services, err = intParam(q.Get("services")); err != nil {
		return cfg, fmt.Errorf("services: %w", err)
	}
	if cfg.Locations, err = intParam(q.Get("locations")); err != nil {
		return cfg, fmt.Errorf("locations: %w", err)
	}
	if cfg.Points, err = intParam(q.Get("points")); err != nil {
		return cfg, fmt.Errorf("points: %w", err)
	}
	if raw := q.Get("factor"); raw != "" {
		if cfg.ServiceRangeFactor, err = strconv.ParseFloat(raw, 64); err != nil {
			return cfg, fmt.Errorf("factor: %w", err)
		}
	}
	if raw := q.Get("seed"); raw != "" {
		if cfg.Seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return cfg, fmt.Errorf("seed: %w", err)
		}
	}
	return cfg, nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, errors.New("missing required parameter")
	}
	return strconv.Atoi(raw)
}
