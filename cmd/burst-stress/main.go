package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/config"
	"github.com/plus3/confetti/display"
	"github.com/plus3/confetti/effects"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	interval := flag.Duration("interval", 50*time.Millisecond, "Simulated time between explosions.")
	count := flag.Int("count", -1, "Particles per explosion (overrides the config).")
	width := flag.Int("width", 1920, "Viewport width.")
	height := flag.Int("height", 1080, "Viewport height.")
	seed := flag.Uint64("seed", 1, "Random seed.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	ambient := flag.Bool("ambient", false, "Run the ambient drift effects alongside the bursts.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	perBurst := explosionSize(*count, cfg)

	log.Println("Starting confetti stress test...")

	rec := display.NewRecorder(float64(*width), float64(*height))
	sim := burst.New(rec, rec,
		burst.WithTuning(cfg.Tuning()),
		burst.WithRand(rand.New(rand.NewPCG(*seed, *seed))),
	)
	if *ambient {
		layer := effects.NewLayer()
		sim.Scheduler().Register(&effects.Ambient{Layer: layer})
		sim.Scheduler().Register(layer)
	}

	report := &Report{
		Duration:       *duration,
		Interval:       *interval,
		Count:          perBurst,
		Width:          *width,
		Height:         *height,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	origins := rand.New(rand.NewPCG(*seed, *seed+1))
	dt := sim.Tuning().FrameDelta()
	burstEvery := interval.Seconds()
	nextBurst := 0.0

	startTime := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			elapsed := float64(report.TotalUpdates) * dt
			for elapsed >= nextBurst {
				origin := burst.Vec2{
					X: origins.Float64() * float64(*width),
					Y: origins.Float64() * float64(*height) / 2,
				}
				sim.SpawnExplosion(origin, perBurst)
				report.Explosions++
				nextBurst += burstEvery
			}

			updateStart := time.Now()
			sim.Step()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++

			if active := sim.Active(); active > report.PeakActive {
				report.PeakActive = active
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Sim = sim.Stats()
	report.Systems = sim.Scheduler().GetStats().Systems
	report.Mutations = rec.Mutations()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// explosionSize is the -count flag when given, else the configured count.
func explosionSize(flagCount int, cfg *config.Config) int {
	if flagCount >= 0 {
		return flagCount
	}
	return cfg.Burst.Count
}
