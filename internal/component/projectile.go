// internal/component/projectile.go
package component

import "go-grid-arcade/internal/types"

// Projectile — снаряд в полёте. TTL в миллисекундах
type Projectile struct {
	ID    types.EntityID
	Pos   Position
	Vel   Velocity
	Owner Team
	TTL   float64
}
