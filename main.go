package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"torchmaze/pkg/engine/logging"
	"torchmaze/pkg/game/atlas"
	"torchmaze/pkg/game/audio"
	"torchmaze/pkg/game/config"
	"torchmaze/pkg/game/devtools"
	"torchmaze/pkg/game/entities"
	"torchmaze/pkg/game/gameplay"
	"torchmaze/pkg/game/lighting"
	"torchmaze/pkg/game/loop"
	"torchmaze/pkg/game/render"
	"torchmaze/pkg/game/renderer"
	ebitenrenderer "torchmaze/pkg/game/renderer/ebiten"
	tcellrenderer "torchmaze/pkg/game/renderer/tcell"
	"torchmaze/pkg/game/renderer/tui"
	"torchmaze/pkg/game/setup"
	"torchmaze/pkg/game/text"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closer, err := logging.Setup(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg); err != nil {
		logging.Log.WithError(err).Error("torchmaze stopped")
		fmt.Fprintln(os.Stderr, err)
		closer.Close()
		os.Exit(1)
	}
	fmt.Println(text.Get("GOODBYE"))
}

func run(cfg config.Config) error {
	log := logging.Component("main")
	if err := text.SetLanguage(cfg.Language); err != nil {
		return err
	}

	seed := cfg.ResolveSeed()
	log.WithFields(cfg.Fields()).WithField("resolved_seed", seed).Info("starting")
	rng := rand.New(rand.NewSource(seed))

	g, err := setup.NewSession(setup.DefaultLayout, rng)
	if err != nil {
		return errors.Wrap(err, "build session")
	}

	tuning := gameplay.DefaultTuning()
	engine := gameplay.New(tuning, entities.DefaultAIConfig())
	view := render.NewView(atlas.Generate(rng), lighting.DefaultParams(), tuning)

	display := newDisplay(cfg)
	if err := display.Init(); err != nil {
		return errors.Wrapf(err, "init %s backend", cfg.Backend)
	}
	defer display.Close()

	var cues loop.CuePlayer
	if cfg.Sound {
		player := audio.New()
		if err := player.Init(); err != nil {
			log.WithError(err).Warn("sound disabled")
		} else {
			defer player.Close()
			cues = player
		}
	}

	runner := loop.New(display, engine, view, g, cues)
	if err := runner.Run(); err != nil {
		return errors.Wrap(err, "run")
	}
	log.WithFields(logrus.Fields{"ticks": runner.Ticks(), "status": g.Status}).Info("session over")

	if cfg.DumpDir != "" {
		paths, err := devtools.Save(cfg.DumpDir, g, runner.LastFrame())
		if err != nil {
			return errors.Wrap(err, "dump state")
		}
		log.WithField("files", paths).Info("state dumped")
	}
	return nil
}

func newDisplay(cfg config.Config) renderer.Display {
	switch cfg.Backend {
	case "tcell":
		return tcellrenderer.New(cfg.Mouse, cfg.Tick)
	case "ebiten":
		return ebitenrenderer.New(cfg.Mouse, cfg.Tick)
	default:
		return tui.New(cfg.Mouse, cfg.Tick)
	}
}
