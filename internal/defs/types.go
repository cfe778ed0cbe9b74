// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"

	"go-grid-arcade/pkg/grid"
)

// Difficulty selects a Lake Wars level. The other games have a single level
// and accept any difficulty.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the levels in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts a case-insensitive difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Cell is a grid coordinate as written in the definitions file.
type Cell struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Point converts the cell to a grid point.
func (c Cell) Point() grid.Point { return grid.Point{X: c.X, Y: c.Y} }

// Bullet describes projectiles fired by one side.
type Bullet struct {
	Speed  float64 `yaml:"speed" json:"speed" jsonschema:"description=Cells per second,exclusiveMinimum=0"`
	TTL    float64 `yaml:"ttl_ms" json:"ttl_ms" jsonschema:"description=Time to live in milliseconds,exclusiveMinimum=0"`
	Offset float64 `yaml:"offset" json:"offset" jsonschema:"description=Forward offset from the shooter's cell centre"`
}

// LakeLevel is one Lake Wars difficulty.
type LakeLevel struct {
	Tiles          [][]int `yaml:"tiles" json:"tiles" jsonschema:"description=Rows of terrain: 0 grass / 1 lake / 2 wall"`
	Bots           int     `yaml:"bots" json:"bots" jsonschema:"minimum=0"`
	BotMoveMs      float64 `yaml:"bot_move_ms" json:"bot_move_ms"`
	BotShootMs     float64 `yaml:"bot_shoot_ms" json:"bot_shoot_ms"`
	GreedyChance   float64 `yaml:"greedy_chance" json:"greedy_chance" jsonschema:"minimum=0,maximum=1"`
	PlayerFireCDMs float64 `yaml:"player_fire_cooldown_ms" json:"player_fire_cooldown_ms"`
}

// LakeWars tunes the shooter.
type LakeWars struct {
	Levels       map[Difficulty]LakeLevel `yaml:"levels" json:"levels"`
	PlayerSpawn  Cell                     `yaml:"player_spawn" json:"player_spawn"`
	PlayerHealth int                      `yaml:"player_health" json:"player_health" jsonschema:"description=Hits the player takes before losing a life"`
	Lives        int                      `yaml:"lives" json:"lives"`
	BotHealth    int                      `yaml:"bot_health" json:"bot_health"`
	BotMinX      int                      `yaml:"bot_min_x" json:"bot_min_x" jsonschema:"description=Bots spawn on columns >= this"`
	SpawnTries   int                      `yaml:"spawn_tries" json:"spawn_tries"`
	PlayerShot   Bullet                   `yaml:"player_bullet" json:"player_bullet"`
	BotShot      Bullet                   `yaml:"bot_bullet" json:"bot_bullet"`
}

// MiniMines tunes the minesweeper variant.
type MiniMines struct {
	Width         int     `yaml:"width" json:"width"`
	Height        int     `yaml:"height" json:"height"`
	Mines         int     `yaml:"mines" json:"mines"`
	Safe          []Cell  `yaml:"safe" json:"safe"`
	PlayerSpawn   Cell    `yaml:"player_spawn" json:"player_spawn"`
	MonsterSpawn  Cell    `yaml:"monster_spawn" json:"monster_spawn"`
	MonsterEvery  int     `yaml:"monster_every" json:"monster_every" jsonschema:"description=Spawn a monster every N opened tiles"`
	EnergyEvery   int     `yaml:"energy_every" json:"energy_every" jsonschema:"description=Grant one energy every N opened tiles"`
	MonsterMoveMs float64 `yaml:"monster_move_ms" json:"monster_move_ms"`
}

// Weights drives the lane bot's destination choice.
type Weights struct {
	Lane      int `yaml:"lane" json:"lane"`
	Castle    int `yaml:"castle" json:"castle"`
	Generator int `yaml:"generator" json:"generator"`
}

// Side places one team's castle and generators.
type Side struct {
	Spawn      Cell   `yaml:"spawn" json:"spawn"`
	Castle     Cell   `yaml:"castle" json:"castle"`
	Generators []Cell `yaml:"generators" json:"generators"`
}

// TowerFight tunes the lane skirmish.
type TowerFight struct {
	Size                int     `yaml:"size" json:"size"`
	AgentHealth         int     `yaml:"agent_health" json:"agent_health"`
	CastleWidth         int     `yaml:"castle_width" json:"castle_width"`
	CastleHeight        int     `yaml:"castle_height" json:"castle_height"`
	CastleHealth        int     `yaml:"castle_health" json:"castle_health"`
	GeneratorSize       int     `yaml:"generator_size" json:"generator_size"`
	GeneratorHealth     int     `yaml:"generator_health" json:"generator_health"`
	BridgeY             int     `yaml:"bridge_y" json:"bridge_y"`
	BridgeHealth        int     `yaml:"bridge_health" json:"bridge_health"`
	Player              Side    `yaml:"player" json:"player"`
	Bot                 Side    `yaml:"bot" json:"bot"`
	BotMinY             int     `yaml:"bot_min_y" json:"bot_min_y"`
	BotMaxY             int     `yaml:"bot_max_y" json:"bot_max_y"`
	BotMoveMs           float64 `yaml:"bot_move_ms" json:"bot_move_ms"`
	BotShootMs          float64 `yaml:"bot_shoot_ms" json:"bot_shoot_ms"`
	RetargetMs          float64 `yaml:"retarget_ms" json:"retarget_ms"`
	RespawnMs           float64 `yaml:"respawn_ms" json:"respawn_ms"`
	GeneratorCooldownMs float64 `yaml:"generator_cooldown_ms" json:"generator_cooldown_ms"`
	HealMs              float64 `yaml:"heal_ms" json:"heal_ms"`
	HealAmount          int     `yaml:"heal_amount" json:"heal_amount"`
	TargetWeights       Weights `yaml:"target_weights" json:"target_weights"`
	Shot                Bullet  `yaml:"bullet" json:"bullet"`
}

// Definitions is the whole tuning file.
type Definitions struct {
	LakeWars   LakeWars   `yaml:"lake_wars" json:"lake_wars"`
	MiniMines  MiniMines  `yaml:"mini_mines" json:"mini_mines"`
	TowerFight TowerFight `yaml:"tower_fight" json:"tower_fight"`
}
