// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defs.yaml
var defaultDefs []byte

// Default returns the built-in definitions. The embedded file is covered by
// tests, so a parse failure here is a build defect.
func Default() *Definitions {
	d, err := Parse(defaultDefs)
	if err != nil {
		panic(fmt.Sprintf("defs: embedded definitions are invalid: %v", err))
	}
	return d
}

// Load reads and validates a definitions file.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes YAML definitions and validates them.
func Parse(data []byte) (*Definitions, error) {
	var d Definitions
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate rejects tuning values the simulation cannot run with.
func (d *Definitions) Validate() error {
	lw := d.LakeWars
	for _, diff := range Difficulties {
		lvl, ok := lw.Levels[diff]
		if !ok {
			return fmt.Errorf("lake_wars: missing level %q", diff)
		}
		if len(lvl.Tiles) == 0 {
			return fmt.Errorf("lake_wars.%s: empty tiles", diff)
		}
		if lvl.BotMoveMs <= 0 || lvl.BotShootMs <= 0 {
			return fmt.Errorf("lake_wars.%s: bot intervals must be positive", diff)
		}
		if lvl.GreedyChance < 0 || lvl.GreedyChance > 1 {
			return fmt.Errorf("lake_wars.%s: greedy_chance %.2f outside [0,1]", diff, lvl.GreedyChance)
		}
		if lvl.Bots < 0 || lvl.PlayerFireCDMs < 0 {
			return fmt.Errorf("lake_wars.%s: negative bot count or cooldown", diff)
		}
	}
	for diff := range lw.Levels {
		if _, err := ParseDifficulty(string(diff)); err != nil {
			return fmt.Errorf("lake_wars: %w", err)
		}
	}
	if lw.Lives <= 0 || lw.PlayerHealth <= 0 || lw.BotHealth <= 0 || lw.SpawnTries <= 0 {
		return fmt.Errorf("lake_wars: lives, player_health, bot_health and spawn_tries must be positive")
	}
	for _, diff := range Difficulties {
		tiles := lw.Levels[diff].Tiles
		w, h := len(tiles[0]), len(tiles)
		if lw.BotMinX < 0 || lw.BotMinX >= w {
			return fmt.Errorf("lake_wars.%s: bot_min_x %d outside [0,%d)", diff, lw.BotMinX, w)
		}
		if !lw.PlayerSpawn.in(w, h) {
			return fmt.Errorf("lake_wars.%s: player_spawn %v outside the %dx%d board", diff, lw.PlayerSpawn, w, h)
		}
	}
	if err := lw.PlayerShot.validate("lake_wars.player_bullet"); err != nil {
		return err
	}
	if err := lw.BotShot.validate("lake_wars.bot_bullet"); err != nil {
		return err
	}

	mm := d.MiniMines
	if mm.Width <= 0 || mm.Height <= 0 || mm.Mines < 0 {
		return fmt.Errorf("mini_mines: bad board %dx%d with %d mines", mm.Width, mm.Height, mm.Mines)
	}
	for name, c := range map[string]Cell{"player_spawn": mm.PlayerSpawn, "monster_spawn": mm.MonsterSpawn} {
		if !c.in(mm.Width, mm.Height) {
			return fmt.Errorf("mini_mines: %s %v outside the %dx%d board", name, c, mm.Width, mm.Height)
		}
	}
	for _, c := range mm.Safe {
		if !c.in(mm.Width, mm.Height) {
			return fmt.Errorf("mini_mines: safe cell %v outside the %dx%d board", c, mm.Width, mm.Height)
		}
	}
	if mm.MonsterEvery <= 0 || mm.EnergyEvery <= 0 || mm.MonsterMoveMs <= 0 {
		return fmt.Errorf("mini_mines: monster_every, energy_every and monster_move_ms must be positive")
	}

	tf := d.TowerFight
	if tf.Size <= 0 || tf.AgentHealth <= 0 || tf.CastleHealth <= 0 || tf.GeneratorHealth <= 0 || tf.BridgeHealth <= 0 {
		return fmt.Errorf("tower_fight: sizes and health pools must be positive")
	}
	if tf.BotMinY > tf.BotMaxY {
		return fmt.Errorf("tower_fight: bot lane band %d..%d is empty", tf.BotMinY, tf.BotMaxY)
	}
	if tf.BotMinY < 0 || tf.BotMaxY >= tf.Size {
		return fmt.Errorf("tower_fight: bot lane band %d..%d outside [0,%d)", tf.BotMinY, tf.BotMaxY, tf.Size)
	}
	if tf.BridgeY < 0 || tf.BridgeY >= tf.Size {
		return fmt.Errorf("tower_fight: bridge_y %d outside [0,%d)", tf.BridgeY, tf.Size)
	}
	if tf.CastleWidth <= 0 || tf.CastleHeight <= 0 || tf.GeneratorSize <= 0 {
		return fmt.Errorf("tower_fight: castle and generator sizes must be positive")
	}
	if err := tf.validateSide("player", tf.Player); err != nil {
		return err
	}
	if err := tf.validateSide("bot", tf.Bot); err != nil {
		return err
	}
	if tf.Player.Spawn.Y <= tf.BridgeY || tf.Bot.Spawn.Y >= tf.BridgeY {
		return fmt.Errorf("tower_fight: spawns %v and %v must sit on opposite sides of the bridge row %d", tf.Player.Spawn, tf.Bot.Spawn, tf.BridgeY)
	}
	for name, v := range map[string]float64{
		"bot_move_ms":           tf.BotMoveMs,
		"bot_shoot_ms":          tf.BotShootMs,
		"retarget_ms":           tf.RetargetMs,
		"respawn_ms":            tf.RespawnMs,
		"generator_cooldown_ms": tf.GeneratorCooldownMs,
		"heal_ms":               tf.HealMs,
	} {
		if v <= 0 {
			return fmt.Errorf("tower_fight: %s must be positive", name)
		}
	}
	w := tf.TargetWeights
	if w.Lane < 0 || w.Castle < 0 || w.Generator < 0 || w.Lane+w.Castle+w.Generator == 0 {
		return fmt.Errorf("tower_fight: target weights must be non-negative with a positive sum")
	}
	return tf.Shot.validate("tower_fight.bullet")
}

func (tf TowerFight) validateSide(name string, side Side) error {
	if !side.Spawn.in(tf.Size, tf.Size) {
		return fmt.Errorf("tower_fight.%s: spawn %v outside the %dx%d board", name, side.Spawn, tf.Size, tf.Size)
	}
	if !side.Castle.fits(tf.CastleWidth, tf.CastleHeight, tf.Size) {
		return fmt.Errorf("tower_fight.%s: castle at %v does not fit the %dx%d board", name, side.Castle, tf.Size, tf.Size)
	}
	for _, g := range side.Generators {
		if !g.fits(tf.GeneratorSize, tf.GeneratorSize, tf.Size) {
			return fmt.Errorf("tower_fight.%s: generator at %v does not fit the %dx%d board", name, g, tf.Size, tf.Size)
		}
	}
	return nil
}

// in reports whether the cell lies on a w×h board.
func (c Cell) in(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// fits reports whether a w×h footprint at c stays on a size×size board.
func (c Cell) fits(w, h, size int) bool {
	return c.in(size, size) && c.X+w <= size && c.Y+h <= size
}

func (b Bullet) validate(name string) error {
	if b.Speed <= 0 || b.TTL <= 0 || b.Offset < 0 {
		return fmt.Errorf("%s: speed and ttl_ms must be positive, offset non-negative", name)
	}
	return nil
}
