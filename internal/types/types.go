// internal/types/types.go
package types

// EntityID — идентификатор агента, постройки или снаряда в пределах World.
// Пока World жив, ID не переиспользуются
type EntityID uint32
