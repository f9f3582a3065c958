// cmd/game/main.go
package main

import (
	"breakout-party/internal/app"
	"breakout-party/internal/assets"
	"breakout-party/internal/audio"
	"breakout-party/internal/audio/speakerout"
	"breakout-party/internal/config"
	"breakout-party/internal/data"
	"breakout-party/internal/input"
	"breakout-party/internal/state"
	"breakout-party/internal/utils"
	"breakout-party/pkg/render"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          config.GameName,
	})

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}
	if level, err := log.ParseLevel(settings.LogLevel); err != nil {
		logger.Warn("unknown log level, keeping info", "level", settings.LogLevel)
	} else {
		logger.SetLevel(level)
	}

	if *pprofAddr != "" {
		go func() {
			logger.Error("pprof server stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	saveDir := settings.SaveDir
	if saveDir == "" {
		saveDir, err = data.SaveDirectory(runtime.GOOS, os.Getenv)
		if err != nil {
			logger.Fatal("no save directory", "err", err)
		}
	}
	gamedata, err := data.Load(saveDir, time.Now())
	if err != nil {
		logger.Error("save data unreadable, starting fresh", "err", err)
		gamedata = data.NewGamedata(time.Now())
	}
	logger.Info("save data loaded", "dir", saveDir, "highscores", len(gamedata.Highscores))

	var out audio.Output = audio.Silent{}
	if spk, err := speakerout.New(audio.SampleRate); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		out = spk
		defer spk.Close()
	}
	sounds := audio.NewSoundManager(out, logger.WithPrefix("audio"))
	sounds.SetSoundVolume(gamedata.SoundVolume)
	sounds.SetMusicVolume(gamedata.MusicVolume)
	defer sounds.Close()

	inputs := input.NewManager(app.NewSource())
	states := state.NewManager(state.Context{
		Input: inputs,
		Audio: sounds,
		Data:  gamedata,
		RNG:   utils.NewPRNGService(settings.Seed),
		Log:   logger,
		Now:   time.Now,
	})
	states.Add(state.NewHowToPlay())

	fonts := render.NewFonts()
	sprites := render.NewSpriteCache(fonts, logger.WithPrefix("render"))
	sprites.Preload()
	logger.Debug("assets ready", "sprites", len(assets.All()), "credits", len(assets.Credits()))

	ebiten.SetWindowSize(config.ScreenWidth*settings.WindowScale, config.ScreenHeight*settings.WindowScale)
	ebiten.SetWindowTitle("Breakout Party " + config.Version)
	ebiten.SetFullscreen(settings.Fullscreen)

	logger.Info("starting", "version", config.Version, "seed", settings.Seed)
	runErr := ebiten.RunGame(app.NewGame(states, inputs, render.NewCanvas(sprites, fonts), logger))
	sprites.Unload()

	if err := gamedata.Save(saveDir); err != nil {
		logger.Error("failed to save", "dir", saveDir, "err", err)
	} else {
		logger.Info("saved", "dir", saveDir)
	}
	if runErr != nil {
		logger.Fatal("game loop failed", "err", runErr)
	}
}
