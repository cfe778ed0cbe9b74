// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-grid-arcade/internal/app"
	"go-grid-arcade/internal/config"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	gameName := flag.String("game", "", "start this game directly: lakewars, minimines or towerfight (default: menu)")
	difficulty := flag.String("difficulty", "easy", "Lake Wars difficulty: easy, medium or hard")
	defsPath := flag.String("defs", "", "YAML definitions file (default: built-in)")
	seed := flag.Int64("seed", 0, "fixed random seed for every level (0 = time-based)")
	flag.Parse()

	d := defs.Default()
	if *defsPath != "" {
		loaded, err := defs.Load(*defsPath)
		if err != nil {
			log.Fatalf("Failed to load definitions: %v", err)
		}
		d = loaded
	}
	settings := state.Settings{Defs: d, Options: app.Options{Seed: *seed}}

	sm := state.NewStateMachine()
	if *gameName == "" {
		sm.SetState(state.NewMenuState(sm, settings))
	} else {
		kind, err := app.ParseKind(*gameName)
		if err != nil {
			log.Fatal(err)
		}
		diff, err := defs.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatal(err)
		}
		play, err := state.NewPlayState(sm, settings, kind, diff)
		if err != nil {
			log.Fatalf("Failed to start %s: %v", kind, err)
		}
		sm.SetState(play)
	}

	arcade := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Arcade")
	if err := ebiten.RunGame(arcade); err != nil {
		log.Fatal(err)
	}
}
