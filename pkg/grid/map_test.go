package grid

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNew_AllPassable(t *testing.T) {
	m := New(10, 8)
	if m.Width != 10 || m.Height != 8 {
		t.Fatalf("expected 10x8, got %dx%d", m.Width, m.Height)
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			k, err := m.TerrainAt(x, y)
			if err != nil {
				t.Fatalf("TerrainAt(%d,%d): %v", x, y, err)
			}
			if k != Passable {
				t.Fatalf("tile (%d,%d) kind=%v, want passable", x, y, k)
			}
		}
	}
}

func TestTerrainAt_OutOfBounds(t *testing.T) {
	m := New(10, 10)
	for _, p := range []Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10}} {
		if _, err := m.TerrainAt(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("TerrainAt(%d,%d) err=%v, want ErrOutOfBounds", p.X, p.Y, err)
		}
	}
	if _, err := m.Reveal(10, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Reveal out of bounds err=%v", err)
	}
	if err := m.SetMark(0, 10, true); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("SetMark out of bounds err=%v", err)
	}
}

func TestFromRows_LakeTable(t *testing.T) {
	m, err := FromRows([][]int{
		{0, 1, 2},
		{0, 1, 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsPassable(0, 0) {
		t.Fatal("grass should be passable")
	}
	if m.IsPassable(1, 0) {
		t.Fatal("hazard should not be passable for bots")
	}
	if !m.CanEnter(1, 0) || !m.IsLethal(1, 0) {
		t.Fatal("hazard should be enterable and lethal for the player")
	}
	if m.CanEnter(2, 1) || !m.IsWall(2, 1) {
		t.Fatal("wall should block everyone")
	}
	if m.CanEnter(3, 0) || m.IsPassable(-1, 0) {
		t.Fatal("out of bounds must never be enterable")
	}
}

func TestFromRows_Rejects(t *testing.T) {
	if _, err := FromRows(nil); err == nil {
		t.Fatal("expected error for empty table")
	}
	if _, err := FromRows([][]int{{0, 0}, {0}}); err == nil {
		t.Fatal("expected error for ragged table")
	}
	if _, err := FromRows([][]int{{7}}); err == nil {
		t.Fatal("expected error for unknown terrain")
	}
}

func TestNeighbors4_OrderAndBounds(t *testing.T) {
	m := New(5, 5)
	got := m.Neighbors4(Point{2, 2})
	want := []Point{{3, 2}, {1, 2}, {2, 3}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbour %d = %v, want %v", i, got[i], want[i])
		}
	}
	if n := len(m.Neighbors4(Point{0, 0})); n != 2 {
		t.Fatalf("corner has %d neighbours, want 2", n)
	}
	if n := len(m.Neighbors8(Point{0, 0})); n != 3 {
		t.Fatalf("corner has %d diagonal-inclusive neighbours, want 3", n)
	}
}

func TestReveal_SingleTileNoFloodFill(t *testing.T) {
	m := New(10, 10)
	opened, err := m.Reveal(0, 2)
	if err != nil || !opened {
		t.Fatalf("Reveal(0,2) = %v, %v", opened, err)
	}
	tile, _ := m.Tile(0, 2)
	if tile.Adjacent != 0 {
		t.Fatalf("adjacent=%d, want 0", tile.Adjacent)
	}
	for _, n := range m.Neighbors8(Point{0, 2}) {
		nt, _ := m.Tile(n.X, n.Y)
		if nt.Revealed {
			t.Fatalf("neighbour %v revealed; reveal must not cascade", n)
		}
	}
	again, _ := m.Reveal(0, 2)
	if again {
		t.Fatal("second reveal should report no change")
	}
}

func TestMarks(t *testing.T) {
	m := New(3, 3)
	if err := m.SetMark(1, 1, true); err != nil {
		t.Fatal(err)
	}
	if tile, _ := m.Tile(1, 1); !tile.MarkedSafe {
		t.Fatal("expected mark")
	}
	if opened, _ := m.Reveal(1, 1); opened {
		t.Fatal("marked tile must not open")
	}
	_ = m.SetMark(1, 1, false)
	if opened, _ := m.Reveal(1, 1); !opened {
		t.Fatal("unmarked tile should open")
	}
	_ = m.SetMark(1, 1, true)
	if tile, _ := m.Tile(1, 1); tile.MarkedSafe {
		t.Fatal("open tile cannot be marked")
	}
}

func TestPlaceBombs_AvoidsSafeZone(t *testing.T) {
	safe := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for seed := int64(1); seed <= 20; seed++ {
		m := New(10, 10)
		if err := m.PlaceBombs(rand.New(rand.NewSource(seed)), 15, safe); err != nil {
			t.Fatal(err)
		}
		if got := m.BombCount(); got != 15 {
			t.Fatalf("seed %d: %d bombs, want 15", seed, got)
		}
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				tile, _ := m.Tile(x, y)
				if tile.Bomb && nearAny(Point{x, y}, safe) {
					t.Fatalf("seed %d: bomb at (%d,%d) touches the safe zone", seed, x, y)
				}
			}
		}
	}
}

func TestPlaceBombs_AdjacencyCounts(t *testing.T) {
	m := New(4, 4)
	if err := m.PlaceBombs(rand.New(rand.NewSource(3)), 1, nil); err != nil {
		t.Fatal(err)
	}
	var bomb Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if tile, _ := m.Tile(x, y); tile.Bomb {
				bomb = Point{x, y}
			}
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := Point{x, y}
			want := 0
			if p != bomb && p.Chebyshev(bomb) == 1 {
				want = 1
			}
			if tile, _ := m.Tile(x, y); tile.Adjacent != want {
				t.Fatalf("adjacent at %v = %d, want %d (bomb %v)", p, tile.Adjacent, want, bomb)
			}
		}
	}
}

func TestPlaceBombs_TooMany(t *testing.T) {
	m := New(3, 3)
	if err := m.PlaceBombs(rand.New(rand.NewSource(1)), 10, nil); err == nil {
		t.Fatal("expected error when bombs exceed eligible tiles")
	}
}

func TestAllSafeRevealed(t *testing.T) {
	m := New(2, 1)
	if err := m.PlaceBombs(rand.New(rand.NewSource(1)), 1, nil); err != nil {
		t.Fatal(err)
	}
	if m.AllSafeRevealed() {
		t.Fatal("nothing open yet")
	}
	for x := 0; x < 2; x++ {
		if tile, _ := m.Tile(x, 0); !tile.Bomb {
			_, _ = m.Reveal(x, 0)
		}
	}
	if !m.AllSafeRevealed() {
		t.Fatal("every safe tile is open")
	}
	m.RevealBombs()
	for x := 0; x < 2; x++ {
		if tile, _ := m.Tile(x, 0); !tile.Revealed {
			t.Fatalf("tile %d should be revealed", x)
		}
	}
}

func TestPointHelpers(t *testing.T) {
	a, b := Point{1, 1}, Point{4, -1}
	if a.Manhattan(b) != 5 || a.Chebyshev(b) != 3 {
		t.Fatalf("distances wrong: %d %d", a.Manhattan(b), a.Chebyshev(b))
	}
	if got := a.Step(Up); got != (Point{1, 0}) {
		t.Fatalf("Step(Up)=%v", got)
	}
	if got := (Point{-3, 0}).Sign(); got != (Point{-1, 0}) {
		t.Fatalf("Sign=%v", got)
	}
}
