// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 720

	BoardOriginX = 40
	BoardOriginY = 70
	BoardSize    = 600 // поле масштабируется под этот квадрат

	HUDX          = 40
	HUDY          = 20
	HUDLineHeight = 16
	NoticeY       = 680
	NoticeTTL     = 2.5 // сколько секунд уведомление на экране
	MaxNotices    = 4

	LogLimit = 500 // записей в журнале событий

	MenuX          = 260
	MenuY          = 220
	MenuLineHeight = 24
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{10, 10, 16, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 160, 255}
	HighlightColor  = color.RGBA{255, 215, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 150}

	GrassColor    = color.RGBA{60, 130, 70, 255}
	LakeColor     = color.RGBA{40, 90, 190, 255}
	WallColor     = color.RGBA{85, 85, 85, 255}
	ClosedColor   = color.RGBA{15, 15, 15, 255}
	OpenColor     = color.RGBA{128, 128, 128, 255}
	MarkColor     = color.RGBA{169, 169, 169, 255}
	BombColor     = color.RGBA{255, 165, 0, 255}
	FieldColor    = color.RGBA{45, 60, 45, 255}
	AdjacentColor = []color.RGBA{
		{128, 128, 128, 255}, // none
		{50, 100, 255, 255},  // one
		{230, 210, 40, 255},  // two
		{220, 50, 50, 255},   // three or more
	}

	PlayerColor        = color.RGBA{255, 140, 0, 255}
	HostileColor       = color.RGBA{220, 40, 40, 255}
	MonsterColor       = color.RGBA{40, 200, 60, 255}
	PlayerCastleColor  = color.RGBA{70, 130, 180, 255}
	HostileCastleColor = color.RGBA{150, 60, 60, 255}
	GeneratorColor     = color.RGBA{255, 215, 0, 255}
	DeadStructureColor = color.RGBA{50, 50, 50, 255}
	BridgeColor        = color.RGBA{140, 100, 60, 255}
	PlayerBulletColor  = color.RGBA{255, 255, 255, 255}
	HostileBulletColor = color.RGBA{255, 80, 80, 255}
	HealthBarColor     = color.RGBA{50, 205, 50, 255}
)
