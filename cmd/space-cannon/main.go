package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/space-cannon/audio"
	"github.com/lixenwraith/space-cannon/config"
	"github.com/lixenwraith/space-cannon/core"
	"github.com/lixenwraith/space-cannon/engine"
	"github.com/lixenwraith/space-cannon/event"
	"github.com/lixenwraith/space-cannon/game"
	"github.com/lixenwraith/space-cannon/input"
	"github.com/lixenwraith/space-cannon/logging"
	"github.com/lixenwraith/space-cannon/physics"
	"github.com/lixenwraith/space-cannon/render"
	"github.com/lixenwraith/space-cannon/score"
	"github.com/lixenwraith/space-cannon/status"
	"github.com/lixenwraith/space-cannon/system"
)

var (
	configDir = flag.String("config", ".", "Directory holding space-cannon.toml")
	muteFlag  = flag.Bool("mute", false, "Disable all audio")
	seedFlag  = flag.Uint64("seed", 0, "Spawn seed, 0 for time-based")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "space-cannon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	start := time.Now()
	logFile, err := logging.OpenFile(cfg.LogDir, start)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	level := logging.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	log := logging.New(logFile, level)
	log.Info().Str("config", config.UsedFile()).Str("score_driver", cfg.Score.Driver).Msg("starting")

	keys := input.DefaultKeyTable()
	if err := keys.ApplyBindings(cfg.Keys); err != nil {
		return fmt.Errorf("applying key bindings: %w", err)
	}

	scores := score.OpenOrMemory(cfg.Score, log)
	defer scores.Close()

	stats := status.NewRegistry()
	if cfg.Metrics {
		reg, err := status.Instrument(stats)
		if err != nil {
			log.Error().Err(err).Msg("metrics instrumentation failed")
		} else {
			defer reg.Unregister()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	world := physics.NewWorld(cfg.Tuning.Width, cfg.Tuning.Height)
	g := game.New(game.Options{
		Tuning:   cfg.Tuning,
		Bodies:   world,
		Scores:   scores,
		Random:   system.NewRandom(seed),
		Status:   stats,
		Logger:   log,
		MusicOff: !cfg.Audio.Music,
	})

	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.Music = cfg.Audio.Music
	sound := audio.NewSoundManager(audioCfg, log)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Warn().Err(err).Msg("audio unavailable, continuing silent")
	}
	defer sound.Cleanup()

	renderer := render.NewRenderer(screen, world, cfg.Tuning.Width, cfg.Tuning.Height, nil)

	router := event.NewRouter(g.Queue())
	router.Register(world)
	router.Register(renderer)
	router.Register(sound)
	router.DispatchAll()

	l := &loop{
		game:     g,
		world:    world,
		renderer: renderer,
		router:   router,
		keys:     keys,
		screen:   screen,
		clock:    engine.NewPausableClock(engine.NewTimeProvider()),
		log:      log,
	}
	l.run(time.Second / time.Duration(cfg.TickRate))

	log.Info().Dur("uptime", time.Since(start)).Msg("exiting")
	return nil
}
