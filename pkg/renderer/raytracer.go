package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

// SamplerFactory builds the random source for one image row
type SamplerFactory func(seed int64) core.Sampler

// Raytracer handles the rendering process
type Raytracer struct {
	world      core.Shape
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     core.SamplingConfig
	logger     core.Logger
	newSampler SamplerFactory
}

// NewRaytracer creates a new raytracer. Zero fields in config fall back to
// core.DefaultSamplingConfig.
func NewRaytracer(world core.Shape, camera *geometry.Camera, config core.SamplingConfig) *Raytracer {
	config = core.MergeSamplingConfig(core.DefaultSamplingConfig(), config)
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config),
		config:     config,
		logger:     discardLogger{},
		newSampler: func(seed int64) core.Sampler { return core.NewSeededSampler(seed) },
	}
}

// SetLogger sets the logger for render progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetSamplerFactory replaces the per-row random source
func (rt *Raytracer) SetSamplerFactory(factory SamplerFactory) {
	rt.newSampler = factory
}

// Config returns the effective sampling configuration
func (rt *Raytracer) Config() core.SamplingConfig {
	return rt.config
}

// Render renders the full image. Rows are distributed across a worker pool;
// each row draws from its own sampler seeded with Seed+j, so the output does
// not depend on the number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid samples per pixel: %d", rt.config.SamplesPerPixel)
	}

	startTime := time.Now()
	buffer := NewPixelBuffer(width, height)
	pool := NewWorkerPool(rt, buffer, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel with %d workers...\n",
		width, height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start(ctx)
	taskID := 0
	for j := height - 1; j >= 0; j-- {
		pool.SubmitTask(RowTask{J: j, TaskID: taskID})
		taskID++
	}
	pool.Stop()

	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		NumWorkers:      pool.GetNumWorkers(),
	}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
	}
	stats.Duration = time.Since(startTime)

	if renderErr != nil {
		return nil, stats, fmt.Errorf("render aborted after %d of %d rows: %w", stats.RowsRendered, height, renderErr)
	}

	rt.logger.Printf("Render completed in %v (%.0f samples/sec)\n", stats.Duration, stats.SamplesPerSecond())
	return buffer, stats, nil
}

// RenderRow samples every pixel of logical row j (0 = bottom) into row
func (rt *Raytracer) RenderRow(j int, row []RGB8) RenderStats {
	width, height := rt.config.Width, rt.config.Height
	sampler := rt.newSampler(rt.config.Seed + int64(j))

	for i := 0; i < width; i++ {
		var ps PixelStats
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Jitter within the pixel footprint
			u := (float32(i) + sampler.Get1D()) / float32(width)
			v := (float32(j) + sampler.Get1D()) / float32(height)

			ray := rt.camera.GetRay(u, v, sampler)
			ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
		}
		row[i] = Vec3ToRGB8(ps.GetColor())
	}

	return RenderStats{
		TotalPixels:  width,
		TotalSamples: width * rt.config.SamplesPerPixel,
		RowsRendered: 1,
	}
}

// Render renders world through camera at the given size and sample count
// with default settings for everything else.
func Render(world core.Shape, camera *geometry.Camera, width, height, samplesPerPixel int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 || samplesPerPixel <= 0 {
		return nil, fmt.Errorf("invalid render parameters: %dx%d at %d samples per pixel", width, height, samplesPerPixel)
	}
	rt := NewRaytracer(world, camera, core.SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
	})
	buffer, _, err := rt.Render(context.Background())
	return buffer, err
}
