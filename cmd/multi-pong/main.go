package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multi-pong/config"
	"github.com/lixenwraith/multi-pong/core"
	"github.com/lixenwraith/multi-pong/engine"
	"github.com/lixenwraith/multi-pong/terminal"
	"github.com/lixenwraith/multi-pong/vmath"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML config file")
	seedFlag     = flag.Uint64("seed", 0, "Ball RNG seed (0 = time based)")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	headlessFlag = flag.Bool("headless", false, "Run on a simulated screen without a tty")
	timeoutFlag  = flag.Duration("timeout", 30*time.Second, "Headless only: send quit after this long")
)

func main() {
	// Panic Recovery: terminal reset is registered by the backend once the screen is up
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := terminal.Options{HoldWindow: cfg.KeyHold, RepeatGrace: cfg.KeyRepeat}
	var sim tcell.SimulationScreen
	if *headlessFlag {
		sim = tcell.NewSimulationScreen("UTF-8")
		opts.Screen = sim
	}
	backend := terminal.New(opts)

	game := engine.New(cfg, backend, backend.Input(), engine.WithRand(vmath.NewFastRand(seed)))
	log.Printf("Starting session %s (seed %d, %d balls)", game.SessionID(), seed, game.BallCount())

	if err := game.Initialize(); err != nil {
		game.Shutdown()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if sim != nil {
		sim.SetSize(128, 48)
		core.Go(func() {
			time.Sleep(*timeoutFlag)
			sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
		})
	}

	game.RunLoop()
	stats := game.Stats()
	game.Shutdown()

	if *headlessFlag {
		fmt.Printf("session %s stopped: %s after %d frames, %d balls removed\n",
			game.SessionID(), game.StopReason(), stats.Frames, stats.BallsRemoved)
	}
}
