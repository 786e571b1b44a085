package main

import (
	"time"

	"github.com/automoto/lurk/logger"
)

// Loop drives a Simulation until the frame budget runs out, the scripted
// player finishes or Stop is called.
type Loop struct {
	sim       *Simulation
	maxFrames int
	stopChan  chan struct{}
}

func NewLoop(sim *Simulation, maxFrames int) *Loop {
	return &Loop{
		sim:       sim,
		maxFrames: maxFrames,
		stopChan:  make(chan struct{}),
	}
}

// Run steps as fast as possible.
func (l *Loop) Run() {
	for l.sim.Frame() < l.maxFrames {
		select {
		case <-l.stopChan:
			return
		default:
		}
		if !l.tick() {
			return
		}
	}
}

// RunPaced steps at tickRate frames per second.
func (l *Loop) RunPaced(tickRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	logger.Log.Infof("Simulation loop started at %d ticks/second", tickRate)

	for l.sim.Frame() < l.maxFrames {
		select {
		case <-l.stopChan:
			logger.Log.Info("Simulation loop stopped")
			return
		case <-ticker.C:
			if !l.tick() {
				return
			}
		}
	}
}

// Stop ends Run or RunPaced. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}

func (l *Loop) tick() bool {
	l.sim.Step()
	return !l.sim.Over()
}
