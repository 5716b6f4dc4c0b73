// Command particlefield runs the particle field in a terminal, or headless with JSON stats
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/particlefield/audio"
	"github.com/lixenwraith/particlefield/config"
	"github.com/lixenwraith/particlefield/engine"
	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/terminal"
	"github.com/lixenwraith/particlefield/vmath"
)

var (
	configFlag      = flag.String("config", "", "Settings file (.toml, .yaml, .yml)")
	writeConfigFlag = flag.String("write-config", "", "Write the effective settings to this file and exit")
	debugFlag       = flag.Bool("debug", false, "Write a debug log to logs/particlefield.log")
	headlessFlag    = flag.Bool("headless", false, "Run without a screen, printing JSON stats lines")
	framesFlag      = flag.Int("frames", parameter.DefaultHeadlessFrames, "Frames to simulate in headless mode")
	seedFlag        = flag.Uint64("seed", 0, "Random seed, 0 uses the settings file or the clock")
	fpsFlag         = flag.Int("fps", 0, "Frame rate, 0 uses the settings file")
	weatherFlag     = flag.String("weather", "", "Startup weather: none, rain, snow")
	soundFlag       = flag.Bool("sound", false, "Enable audio cues")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before os.Exit
func run() int {
	// Panic Recovery: terminal cleanup is registered by the host once the screen is up
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
		return 2
	}

	if *writeConfigFlag != "" {
		if err := config.Save(*writeConfigFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
			return 1
		}
		return 0
	}

	f := field.New(newRand(cfg.Simulation.Seed))
	cfg.Apply(f)

	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runHeadless(os.Stdout, f, *framesFlag); err != nil {
			fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runTerminal(f, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the settings file if given and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *weatherFlag != "" {
		mode, err := field.ParseWeatherMode(*weatherFlag)
		if err != nil {
			return nil, err
		}
		cfg.Simulation.Weather = mode.String()
	}
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}
	if *fpsFlag != 0 {
		cfg.Display.FPS = *fpsFlag
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRand returns a seeded source, nil lets the field seed from the clock
func newRand(seed uint64) field.Rand {
	if seed == 0 {
		return nil
	}
	return vmath.NewFastRand(seed)
}

// runTerminal hosts the field on the controlling terminal until quit
func runTerminal(f *field.Field, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	opts := terminal.DefaultOptions()
	opts.ScaleX, opts.ScaleY = cfg.Display.CellScaleX, cfg.Display.CellScaleY
	opts.StatusLine = cfg.Display.StatusLine

	host := terminal.NewHost(screen, f, opts)
	if err := host.Init(); err != nil {
		return err
	}
	defer host.Fini()

	if cfg.Audio.Enabled {
		acfg := audio.DefaultAudioConfig()
		acfg.Enabled = true
		acfg.MasterVolume = cfg.Audio.Volume

		player := audio.NewCuePlayer(acfg)
		if err := player.Initialize(); err != nil {
			// Non-fatal, the field runs silently
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			host.SetCues(player)
			defer player.Cleanup()
		}
	}

	engine.Go(host.PollInput)

	loop := engine.NewLoop(cfg.Display.FPS, host.Frame)
	loop.Start()
	<-loop.Done()
	loop.Stop()

	stats := f.Stats()
	log.Printf("exit after %d frames, %d steps, %d collisions, %d dropped spawns",
		loop.Frames(), stats.Steps, stats.Collisions, stats.Dropped)
	return nil
}
