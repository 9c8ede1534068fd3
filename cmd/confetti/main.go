package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/config"
	"github.com/plus3/confetti/debugui"
	debugui_ebiten "github.com/plus3/confetti/debugui/ebiten"
	"github.com/plus3/confetti/effects"
	"github.com/plus3/confetti/sfx"
	"github.com/plus3/confetti/view/raylib"
	"github.com/plus3/confetti/view/terminal"
	"github.com/plus3/confetti/view/window"
)

func main() {
	mode := flag.String("mode", "window", "Front end to run: window, raylib or terminal.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	count := flag.Int("count", -1, "Particles per explosion (overrides the config).")
	sound := flag.Bool("sound", false, "Play a pop for every explosion.")
	debug := flag.Bool("debug", false, "Show the stats overlay (ImGui in window mode, text in raylib mode).")
	ambient := flag.Bool("ambient", false, "Drift coins and icons in the background.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *count >= 0 {
		cfg.Burst.Count = *count
	}
	cfg.Audio.Enabled = cfg.Audio.Enabled || *sound
	cfg.Window.Ambient = cfg.Window.Ambient || *ambient
	cfg.Debug.Overlay = cfg.Debug.Overlay || *debug

	opts := []burst.Option{burst.WithTuning(cfg.Tuning())}
	if cfg.Audio.Enabled {
		player, err := sfx.NewPlayer(beep.SampleRate(cfg.Audio.SampleRate), cfg.Audio.Volume)
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, burst.WithExplosionHook(func(_ burst.Vec2, n int) {
				player.PlayPop(n)
			}))
		}
	}

	switch *mode {
	case "window":
		err = runWindow(cfg, opts)
	case "raylib":
		runRaylib(cfg, opts)
	case "terminal":
		err = runTerminal(cfg, opts)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runWindow(cfg *config.Config, opts []burst.Option) error {
	w := cfg.Window
	game := window.NewGame(w.Width, w.Height, opts...)
	if w.Ambient {
		game.Sim.Scheduler().Register(&effects.Ambient{Layer: game.Effects})
	}

	if cfg.Debug.Overlay {
		overlay := debugui_ebiten.NewOverlay(w.Title, w.Width, w.Height)
		stats := debugui.NewStatsWindow(game.Sim, game.Screen, cfg.Debug.HistoryFrames)
		overlay.System.Add(stats.Render)
		game.Sim.Scheduler().Register(overlay.System)
		game.Overlay = overlay
	} else {
		ebiten.SetWindowSize(w.Width, w.Height)
		ebiten.SetWindowTitle(w.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Opening %dx%d window", w.Width, w.Height)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runRaylib(cfg *config.Config, opts []burst.Option) {
	w := cfg.Window
	app := raylib.NewApp(w.Width, w.Height, opts...)
	app.ShowStats = cfg.Debug.Overlay
	if w.Ambient {
		app.Sim.Scheduler().Register(&effects.Ambient{Layer: app.Effects})
	}

	log.Printf("Opening %dx%d raylib window", w.Width, w.Height)
	app.Run(w.Title)
}

func runTerminal(cfg *config.Config, opts []burst.Option) error {
	if cfg.Debug.Overlay {
		log.Println("Debug overlay is only available in window mode")
	}

	term, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer term.Fini()

	app := terminal.NewApp(term, opts...)
	if cfg.Window.Ambient {
		app.Sim.Scheduler().Register(&effects.Ambient{Layer: app.Effects})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app.Run(ctx)
	return nil
}
