package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Workers   int
	Seed      int64
	Output    string
}

func main() {
	config, list, help := parseFlags()

	if help {
		showHelp()
		return
	}
	if list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-8s - %s (%d spheres, %dx%d, %d spp)\n",
				info.ID, info.Description, info.Spheres, info.Width, info.Height, info.Samples)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, config)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func parseFlags() (Config, bool, bool) {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene type (see -list)")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum scatter depth (0 = default 50)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&config.Seed, "seed", 0, "Base random seed (0 = default 42)")
	flag.StringVar(&config.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.ppm)")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	return config, *list, *help
}

func showHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.ppm")
}

// createScene resolves a scene name to a built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}
	return scene.Create(sceneType)
}

// applyOverrides resizes the scene and merges sampling options from the command line
func applyOverrides(s *scene.Scene, config Config) (*scene.Scene, core.SamplingConfig) {
	width, height := s.SamplingConfig.Width, s.SamplingConfig.Height
	if config.Width > 0 {
		width = config.Width
	}
	if config.Height > 0 {
		height = config.Height
	}
	if width != s.SamplingConfig.Width || height != s.SamplingConfig.Height {
		s = s.WithImageSize(width, height)
	}

	sampling := core.MergeSamplingConfig(s.SamplingConfig, core.SamplingConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
		NumWorkers:      config.Workers,
		Seed:            config.Seed,
	})
	return s, sampling
}

// outputPath returns the explicit output file or a timestamped default
func outputPath(config Config, now time.Time) string {
	if config.Output != "" {
		return config.Output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", config.SceneType, fmt.Sprintf("render_%s.ppm", timestamp))
}

func run(ctx context.Context, config Config) (string, error) {
	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return "", err
	}
	selectedScene, sampling := applyOverrides(selectedScene, config)

	fmt.Printf("Rendering %s scene (%d spheres) at %dx%d, %d spp, depth %d\n",
		config.SceneType, selectedScene.GetPrimitiveCount(),
		sampling.Width, sampling.Height, sampling.SamplesPerPixel, sampling.MaxDepth)

	raytracer := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera, sampling)
	raytracer.SetLogger(renderer.NewDefaultLogger())

	pb, _, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}

	filename := outputPath(config, time.Now())
	if err := renderer.SavePPM(filename, pb); err != nil {
		return "", fmt.Errorf("failed to save render: %w", err)
	}
	return filename, nil
}
