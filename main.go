package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jcnauta/mscflp-gen/generate"
	"github.com/jcnauta/mscflp-gen/models"
	"github.com/jcnauta/mscflp-gen/render"
	"github.com/jcnauta/mscflp-gen/server"
	"github.com/jcnauta/mscflp-gen/writer"
)

// Configuration represents all the settings for the application
type Configuration struct {
	Services           int
	Locations          int
	Points             int
	ServiceRangeFactor float64
	Seed               int64
	Draw               bool
	NoiseIntensity     float64
	OutputDir          string
	Filename           string
	Serve              bool
	Port               int
	DebugMode          bool
}

func main() {
	config := parseConfig()

	if config.DebugMode {
		log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
		log.Println("Debug mode enabled")
	} else {
		log.SetFlags(log.LstdFlags)
	}

	if config.Serve {
		if err := server.Start(config.Port); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	cfg := models.Config{
		Services:           config.Services,
		Locations:          config.Locations,
		Points:             config.Points,
		ServiceRangeFactor: config.ServiceRangeFactor,
		Seed:               config.Seed,
	}

	ins, err := generate.Generate(cfg)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	log.Printf("Highest centrality: %g", ins.MaxCentrality)
	for _, adv := range ins.Advisories {
		log.Printf("Warning: %s", adv.Message)
	}

	outputPath := filepath.Join(config.OutputDir, config.Filename)
	if _, err := os.Stat(outputPath); err == nil {
		log.Printf("Warning: %s already exists, overwriting", outputPath)
	}
	if err := writer.Write(ins, outputPath); err != nil {
		log.Fatalf("Writing failed: %v", err)
	}
	log.Printf("Problem instance written to %s (%d rows)", outputPath, len(ins.Records))

	if config.Draw {
		if err := drawInstance(ins, config, outputPath); err != nil {
			log.Fatalf("Rendering failed: %v", err)
		}
	}
}

// parseConfig parses command-line flags and positional arguments and
// returns a Configuration object
func parseConfig() *Configuration {
	config := &Configuration{}

	flag.Int64Var(&config.Seed, "seed", time.Now().UnixNano(), "Random seed; the same seed reproduces the exact instance")
	flag.BoolVar(&config.Draw, "draw", false, "Also write an SVG visualization next to the output file")
	flag.Float64Var(&config.NoiseIntensity, "noise", 0.0, "Intensity of cosmetic position jitter in the visualization (0.0-1.0)")
	flag.StringVar(&config.OutputDir, "dir", ".", "Output directory")
	flag.StringVar(&config.Filename, "filename", "", "Output filename (defaults to testproblem_geometric_F{services}L{locations}U{points}.xlsx)")
	flag.BoolVar(&config.Serve, "serve", false, "Run the HTTP preview server instead of writing a file")
	flag.IntVar(&config.Port, "port", 8080, "Port for the preview server")
	flag.BoolVar(&config.DebugMode, "debug", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] services locations points [service_range_factor]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if config.Serve {
		return config
	}

	args := flag.Args()
	if len(args) < 3 || len(args) > 4 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	if config.Services, err = strconv.Atoi(args[0]); err != nil {
		log.Fatalf("Invalid services count %q: %v", args[0], err)
	}
	if config.Locations, err = strconv.Atoi(args[1]); err != nil {
		log.Fatalf("Invalid locations count %q: %v", args[1], err)
	}
	if config.Points, err = strconv.Atoi(args[2]); err != nil {
		log.Fatalf("Invalid points count %q: %v", args[2], err)
	}
	config.ServiceRangeFactor = 1.0
	if len(args) == 4 {
		if config.ServiceRangeFactor, err = strconv.ParseFloat(args[3], 64); err != nil {
			log.Fatalf("Invalid service range factor %q: %v", args[3], err)
		}
	}

	if config.Filename == "" {
		config.Filename = fmt.Sprintf("testproblem_geometric_F%dL%dU%d.xlsx",
			config.Services, config.Locations, config.Points)
	}

	return config
}

// drawInstance writes an SVG of the instance next to the problem file.
func drawInstance(ins *models.Instance, config *Configuration, outputPath string) error {
	options := render.NewDefaultOptions("svg")
	options.NoiseIntensity = config.NoiseIntensity

	renderer := &render.SVGRenderer{}
	output, err := renderer.Render(ins, options)
	if err != nil {
		return err
	}

	ext := filepath.Ext(outputPath)
	svgPath := outputPath[:len(outputPath)-len(ext)] + ".svg"
	if err := os.WriteFile(svgPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write visualization: %w", err)
	}
	log.Printf("Visualization written to %s", svgPath)
	return nil
}
