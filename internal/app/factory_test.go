package app

import (
	"testing"
	"time"

	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/interfaces"
)

func TestNew_EveryKind(t *testing.T) {
	for _, kind := range interfaces.Kinds {
		g, err := New(kind, nil, Options{Seed: testSeed})
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		if g.Kind() != kind {
			t.Fatalf("New(%s) built %s", kind, g.Kind())
		}
		if s := g.Snapshot(); s.Phase != component.Stopped {
			t.Fatalf("%s before start: phase=%s, want stopped", kind, s.Phase)
		}
		if err := g.StartLevel(defs.Easy); err != nil {
			t.Fatalf("%s StartLevel: %v", kind, err)
		}
		if s := g.Snapshot(); s.Phase != component.Running {
			t.Fatalf("%s after start: phase=%s", kind, s.Phase)
		}
		g.Stop()
		if s := g.Snapshot(); s.Phase != component.Stopped {
			t.Fatalf("%s after stop: phase=%s", kind, s.Phase)
		}
	}
	if _, err := New("pong", nil, Options{}); err == nil {
		t.Fatal("expected error for unknown game")
	}
}

func TestNew_RejectsOffBoardDefinitions(t *testing.T) {
	lake := defs.Default()
	lake.LakeWars.BotMinX = 10
	if _, err := New(interfaces.LakeWars, lake, Options{Seed: testSeed}); err == nil {
		t.Fatal("bot_min_x at the board width was accepted")
	}
	mines := defs.Default()
	mines.MiniMines.PlayerSpawn.X = 42
	if _, err := New(interfaces.MiniMines, mines, Options{Seed: testSeed}); err == nil {
		t.Fatal("player spawn off the board was accepted")
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("towerfight"); err != nil || k != interfaces.TowerFight {
		t.Fatalf("ParseKind = %v, %v", k, err)
	}
	if _, err := ParseKind("tetris"); err == nil {
		t.Fatal("expected error")
	}
}

func TestResume_SkipsPausedTime(t *testing.T) {
	g := NewTowerFight(nil, Options{Seed: testSeed})
	if err := g.StartLevel(defs.Easy); err != nil {
		t.Fatal(err)
	}
	d := prime(g)
	d.stepFor(g, 100, 20)

	d.now = d.now.Add(time.Hour)
	g.Resume()
	g.Update(d.now)
	if _, elapsed := g.RunInfo(); elapsed != 100 {
		t.Fatalf("elapsed=%v after pause, want 100", elapsed)
	}
	d.stepFor(g, 40, 20)
	if _, elapsed := g.RunInfo(); elapsed != 140 {
		t.Fatalf("elapsed=%v, want 140", elapsed)
	}
}
