// Command raytracer renders a scene via Monte-Carlo path tracing,
// streaming pixels progressively to a live window and to a PNG file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kellanmars/spheretracer/pkg/progress"
	"github.com/kellanmars/spheretracer/pkg/renderer"
	"github.com/kellanmars/spheretracer/pkg/scene"
	"github.com/kellanmars/spheretracer/pkg/sink"
)

// Config holds all the configuration for the raytracer.
type Config struct {
	SceneType string
	Width     int
	Workers   int
	Window    bool
	Output    string
	Seed      int64
}

func main() {
	config := parseFlags()

	sceneObj, err := createScene(config)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	if config.Window {
		runWithWindow(config, sceneObj)
	} else {
		runHeadless(config, sceneObj)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene type: 'default' or 'motion'")
	flag.IntVar(&config.Width, "width", 1200, "Image width in pixels (height follows the camera's 16:9 aspect)")
	flag.IntVar(&config.Workers, "workers", renderer.DefaultNumWorkers, "Number of parallel render workers")
	flag.BoolVar(&config.Window, "window", true, "Show a live preview window while rendering")
	flag.StringVar(&config.Output, "output", sink.OutputPath, "Path to write the final PNG")
	flag.Int64Var(&config.Seed, "seed", 42, "Seed for the scene generator's PRNG")
	flag.Parse()
	return config
}

// createScene builds the requested scene type at the configured aspect
// ratio.
func createScene(config Config) (*scene.Scene, error) {
	random := rand.New(rand.NewSource(config.Seed))
	const aspect = 16.0 / 9.0

	var sceneObj *scene.Scene
	switch config.SceneType {
	case "default":
		sceneObj = scene.NewDefaultScene(aspect, random)
	case "motion":
		sceneObj = scene.NewMotionScene(aspect, random)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", config.SceneType)
	}

	sceneObj.Build(random)
	return sceneObj, nil
}

func height(width int) int {
	return int(float64(width) / (16.0 / 9.0))
}

// runHeadless renders every frame in the samples-per-pixel schedule,
// writing a PNG after each, without attaching a live window.
func runHeadless(config Config, sceneObj *scene.Scene) {
	width := config.Width
	h := height(width)
	logger := renderer.NewDefaultLogger()

	tileBatches := make(chan renderer.PixelBatch, 64)
	pool := renderer.NewWorkerPool(sceneObj, width, h, config.Workers, tileBatches)
	defer pool.Close()

	reporter := progress.NewReporter(make(chan renderer.PixelBatch, 16))
	reporter.Start()
	defer reporter.Stop()

	startTime := time.Now()
	for frameIndex, samplesPerSide := range renderer.SamplesPerPixelSchedule {
		tiles := renderer.NewTileGrid(width, h, int64(frameIndex))
		reporter.Record.StartFrame(samplesPerSide*samplesPerSide, len(tiles))

		grid, stats := renderer.RenderFrame(pool, tileBatches, nil, tiles, samplesPerSide, width, h, reporter.Record.ChunkDone)

		if err := sink.WritePNG(grid, config.Output); err != nil {
			fmt.Printf("Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		reporter.Record.FinishFrame(len(renderer.SamplesPerPixelSchedule))

		logger.Printf("Frame %d/%d done (%d samples/pixel, %d total samples) in %v\n",
			frameIndex+1, len(renderer.SamplesPerPixelSchedule), stats.SamplesPerPixel, stats.TotalSamples(), time.Since(startTime))
	}
}

// runWithWindow runs the same frame schedule while streaming every tile
// batch (and the progress overlay) into a live ebiten window.
func runWithWindow(config Config, sceneObj *scene.Scene) {
	width := config.Width
	h := height(width)

	tileBatches := make(chan renderer.PixelBatch, 64)
	sinkBatches := make(chan renderer.PixelBatch, 256)
	pool := renderer.NewWorkerPool(sceneObj, width, h, config.Workers, tileBatches)
	defer pool.Close()

	reporter := progress.NewReporter(sinkBatches)
	reporter.Start()
	defer reporter.Stop()

	window := sink.NewWindow(width, h, sinkBatches)

	go func() {
		for frameIndex, samplesPerSide := range renderer.SamplesPerPixelSchedule {
			tiles := renderer.NewTileGrid(width, h, int64(frameIndex))
			reporter.Record.StartFrame(samplesPerSide*samplesPerSide, len(tiles))

			grid, _ := renderer.RenderFrame(pool, tileBatches, sinkBatches, tiles, samplesPerSide, width, h, reporter.Record.ChunkDone)

			if err := sink.WritePNG(grid, config.Output); err != nil {
				fmt.Printf("Error writing PNG: %v\n", err)
				os.Exit(1)
			}
			reporter.Record.FinishFrame(len(renderer.SamplesPerPixelSchedule))
		}
	}()

	ebiten.SetWindowSize(width, h)
	ebiten.SetWindowTitle("spheretracer")
	if err := ebiten.RunGame(window); err != nil {
		fmt.Printf("Window backend failure: %v\n", err)
		os.Exit(1)
	}
}
