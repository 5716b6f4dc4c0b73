// Command particlefield-window runs the particle field in a desktop window
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/particlefield/audio"
	"github.com/lixenwraith/particlefield/config"
	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/parameter/visual"
	"github.com/lixenwraith/particlefield/render/window"
	"github.com/lixenwraith/particlefield/vmath"
)

var (
	configFlag  = flag.String("config", "", "Settings file (.toml, .yaml, .yml)")
	weatherFlag = flag.String("weather", "", "Startup weather: none, rain, snow")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 uses the settings file or the clock")
	soundFlag   = flag.Bool("sound", false, "Enable audio cues")
	widthFlag   = flag.Int("width", parameter.WindowWidth, "Initial window width")
	heightFlag  = flag.Int("height", parameter.WindowHeight, "Initial window height")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *weatherFlag != "" {
		mode, err := field.ParseWeatherMode(*weatherFlag)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Simulation.Weather = mode.String()
	}
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}

	var rng field.Rand
	if cfg.Simulation.Seed != 0 {
		rng = vmath.NewFastRand(cfg.Simulation.Seed)
	}
	f := field.New(rng)
	cfg.Apply(f)

	game := NewGame(f, window.NewSurface(visual.RgbBackground), *widthFlag, *heightFlag)
	game.status = cfg.Display.StatusLine
	f.Start(game.Input())

	if cfg.Audio.Enabled {
		acfg := audio.DefaultAudioConfig()
		acfg.Enabled = true
		acfg.MasterVolume = cfg.Audio.Volume

		player := audio.NewCuePlayer(acfg)
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			game.cues = player
			defer player.Cleanup()
		}
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "particlefield-window: %v\n", err)
		os.Exit(1)
	}
}
