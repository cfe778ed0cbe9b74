// internal/app/factory.go
package app

import (
	"fmt"

	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/interfaces"
)

var (
	_ interfaces.Game = (*LakeWars)(nil)
	_ interfaces.Game = (*MiniMines)(nil)
	_ interfaces.Game = (*TowerFight)(nil)
)

// New creates the game named by kind. A nil d uses the embedded definitions;
// any other d is validated first.
func New(kind interfaces.Kind, d *defs.Definitions, opts Options) (interfaces.Game, error) {
	if d != nil {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("definitions: %w", err)
		}
	}
	switch kind {
	case interfaces.LakeWars:
		return NewLakeWars(d, opts), nil
	case interfaces.MiniMines:
		return NewMiniMines(d, opts), nil
	case interfaces.TowerFight:
		return NewTowerFight(d, opts), nil
	}
	return nil, fmt.Errorf("unknown game %q", kind)
}

// ParseKind accepts a game name such as "lakewars".
func ParseKind(s string) (interfaces.Kind, error) {
	for _, k := range interfaces.Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown game %q", s)
}
