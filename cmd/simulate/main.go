// Command simulate runs a level headless with a scripted player and reports
// how often the player was detected.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/lurk/assets"
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/systems"
	"github.com/sirupsen/logrus"
)

func main() {
	level := flag.String("level", config.C.Level, "Level manifest path")
	levelDir := flag.String("leveldir", "", "Load levels from this directory instead of the built-in set")
	overrides := flag.String("config", "", "YAML file with config overrides")
	frames := flag.Int("frames", 3600, "Maximum frames to simulate")
	seed := flag.Uint64("seed", config.C.Seed, "Random seed for agent decisions")
	tickRate := flag.Int("tickrate", config.C.TickRate, "Frames per second when running in real time")
	realtime := flag.Bool("realtime", false, "Pace frames at the tick rate instead of running flat out")
	save := flag.Bool("save", true, "Record the run in the stats history")
	flag.Parse()

	logger.Init()
	log := logger.Log

	if *overrides != "" {
		if err := config.LoadOverridesFile(*overrides); err != nil {
			log.WithError(err).Fatal("could not load config overrides")
		}
	}
	config.C.Seed = *seed
	config.C.TickRate = *tickRate

	loader := assets.NewLevelLoader()
	if *levelDir != "" {
		loader = assets.NewLevelLoaderFS(os.DirFS(*levelDir))
	}
	m, err := loader.LoadLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("could not load level")
	}

	sim, err := NewSimulation(m)
	if err != nil {
		log.WithError(err).Fatal("could not start simulation")
	}

	loop := NewLoop(sim, *frames)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("stopping simulation")
		loop.Stop()
	}()

	if *realtime {
		loop.RunPaced(*tickRate)
	} else {
		loop.Run()
	}

	stats := systems.CollectRunStats(sim.World)
	log.WithFields(logrus.Fields{
		"level":      stats.Level,
		"frames":     stats.Frames,
		"detections": stats.Detections,
		"alarms":     stats.Alarms,
		"health":     stats.Health,
		"escaped":    sim.Escaped(),
	}).Info("simulation finished")

	if !*save {
		return
	}
	if err := systems.InitPersistence("lurk"); err != nil {
		return
	}
	if err := systems.SaveRunStats(stats); err != nil {
		log.WithError(err).Warn("could not save run stats")
	}
}
