package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every renderer.
const Default ecs.LayerID = 0

// Tier identifies an enemy category. Higher tiers have more health and are worth more.
type Tier int

const (
	TierRare Tier = iota + 1
	TierEpic
	TierMythic
)

func (t Tier) String() string {
	switch t {
	case TierRare:
		return "Rare"
	case TierEpic:
		return "Epic"
	case TierMythic:
		return "Mythic"
	}
	return "Unknown"
}

// BulletKind selects the colour a bullet is drawn with.
type BulletKind int

const (
	BulletPlayer BulletKind = iota
	BulletRare
	BulletEpic
	BulletMythic
	BulletLegendary
)

// TierConfig contains the per-tier enemy values
type TierConfig struct {
	Health     int
	Value      int
	BulletKind BulletKind
	Color      color.RGBA // fallback fill when no sprite is loaded
	SpriteKey  string     // file name under the asset directory
}

// EnemyConfig contains formation enemy configuration
type EnemyConfig struct {
	Tiers  map[Tier]TierConfig
	Width  float64
	Height float64
}

// WaveConfig contains wave generation values
type WaveConfig struct {
	Rows         int
	Columns      int
	ColumnGap    float64 // horizontal distance between enemy origins
	RowGap       float64 // vertical distance between enemy origins
	OffsetX      float64
	OffsetY      float64
	RollMax      int     // roll is uniform(1, RollMax) * level / LevelDivisor
	RareMax      float64 // roll <= RareMax -> Rare
	EpicMax      float64 // roll <= EpicMax -> Epic
	MythicMax    float64 // roll <= MythicMax -> Mythic, above -> Mythic + legendary
	LevelDivisor float64
}

// FormationConfig contains formation movement values
type FormationConfig struct {
	Step       float64 // horizontal units per frame
	DropStep   float64 // vertical drop on a wall flip
	RightBound float64
	LeftBound  float64
}

// PlayerConfig contains player ship configuration
type PlayerConfig struct {
	Width         float64
	Height        float64
	SpawnCenterX  float64 // midbottom anchor
	SpawnBottomY  float64
	Speed         float64
	MinX          float64 // moving left is allowed while x > MinX
	MaxX          float64 // moving right is allowed while x < MaxX
	FireCooldown  time.Duration
	StartingLives int
	Color         color.RGBA
	SpriteKey     string
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Width       float64
	Height      float64
	PlayerSpeed float64 // upward speed of player bullets
	EnemySpeed  float64 // downward speed of enemy bullets
	TopCull     float64 // removed when y <= TopCull
	BottomCull  float64 // removed when y >= BottomCull
	Colors      map[BulletKind]color.RGBA
}

// LegendaryConfig contains the bonus UFO configuration
type LegendaryConfig struct {
	Width        float64
	Height       float64
	Y            float64
	LeftSpawnX   float64
	RightSpawnX  float64
	Speed        float64
	Value        int
	CullMargin   float64 // distance past the opposite spawn point before removal
	FireChance   int     // out of FireRoll per frame
	FireRoll     int
	SpreadOffset float64
	SpawnMin     int // frames
	SpawnMax     int // frames
	Color        color.RGBA
	SpriteKey    string
}

// SpawnerConfig contains ordinary enemy fire configuration
type SpawnerConfig struct {
	BaseFireFrames float64 // cooldown threshold is BaseFireFrames / (level+1)
}

// FortificationConfig contains cover configuration
type FortificationConfig struct {
	Shape     []string
	BlockSize float64
	StartX    float64
	StartY    float64
	Offsets   []float64
	Color     color.RGBA
}

// ScoreConfig contains score awards not tied to an enemy tier
type ScoreConfig struct {
	BulletClash int // player bullet destroys an enemy bullet
}

// ExplosionConfig contains explosion effect values
type ExplosionConfig struct {
	Duration   float32 // seconds
	StartScale float32
	EndScale   float32
	Color      color.RGBA
}

// UIConfig contains HUD and overlay values
type UIConfig struct {
	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
	HUDMargin       int
	HUDFontSize     float64
	TitleFontSize   float64
	MenuFontSize    float64
	SmallFontSize   float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// OutcomeConfig contains the victory/defeat/menu screen values
type OutcomeConfig struct {
	MenuTitleColor    color.RGBA
	VictoryTitleColor color.RGBA
	DefeatTitleColor  color.RGBA
	TextColor         color.RGBA
	ButtonColor       color.RGBA
	ButtonHoverColor  color.RGBA
	QuitHoverColor    color.RGBA
}

// AssetConfig locates the on-disk asset directory
type AssetConfig struct {
	Dir  string
	Font string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool  // Skip menu and go directly to game
	Hitboxes   bool  // Draw resolv object outlines
	Seed       int64 // 0 = time based
	StartLevel int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Wave WaveConfig
var Formation FormationConfig
var Bullet BulletConfig
var Legendary LegendaryConfig
var Spawner SpawnerConfig
var Fortification FortificationConfig
var Score ScoreConfig
var Explosion ExplosionConfig
var UI UIConfig
var Pause PauseConfig
var Outcome OutcomeConfig
var Assets AssetConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Amber        = color.RGBA{R: 255, G: 196, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	Purple       = color.RGBA{R: 160, G: 60, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	Coral        = color.RGBA{R: 241, G: 79, B: 80, A: 255}
	Charcoal     = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  720,
		Height: 720,
		TPS:    60,
	}

	Player = PlayerConfig{
		Width:         60,
		Height:        30,
		SpawnCenterX:  360,
		SpawnBottomY:  680,
		Speed:         8,
		MinX:          5,
		MaxX:          655,
		FireCooldown:  450 * time.Millisecond,
		StartingLives: 1,
		Color:         Green,
		SpriteKey:     "player.png",
	}

	Enemy = EnemyConfig{
		Width:  40,
		Height: 32,
		Tiers: map[Tier]TierConfig{
			TierRare: {
				Health:     1,
				Value:      10,
				BulletKind: BulletRare,
				Color:      LightGreen,
				SpriteKey:  "Alien_Rare.png",
			},
			TierEpic: {
				Health:     2,
				Value:      20,
				BulletKind: BulletEpic,
				Color:      Purple,
				SpriteKey:  "Alien_Epic.png",
			},
			TierMythic: {
				Health:     3,
				Value:      40,
				BulletKind: BulletMythic,
				Color:      Orange,
				SpriteKey:  "Alien_Mythic.png",
			},
		},
	}

	Wave = WaveConfig{
		Rows:         6,
		Columns:      8,
		ColumnGap:    60,
		RowGap:       48,
		OffsetX:      70,
		OffsetY:      100,
		RollMax:      100,
		RareMax:      78,
		EpicMax:      93,
		MythicMax:    98,
		LevelDivisor: 10,
	}

	Formation = FormationConfig{
		Step:       1,
		DropStep:   2,
		RightBound: 720,
		LeftBound:  0,
	}

	Bullet = BulletConfig{
		Width:       4,
		Height:      20,
		PlayerSpeed: 8,
		EnemySpeed:  6,
		TopCull:     -50,
		BottomCull:  770,
		Colors: map[BulletKind]color.RGBA{
			BulletPlayer:    Yellow,
			BulletRare:      Amber,
			BulletEpic:      Orange,
			BulletMythic:    Red,
			BulletLegendary: Red,
		},
	}

	Legendary = LegendaryConfig{
		Width:        64,
		Height:       28,
		Y:            80,
		LeftSpawnX:   -50,
		RightSpawnX:  770,
		Speed:        2,
		Value:        1000,
		CullMargin:   20,
		FireChance:   50,
		FireRoll:     1000,
		SpreadOffset: 20,
		SpawnMin:     400,
		SpawnMax:     800,
		Color:        Cyan,
		SpriteKey:    "UFO_Legendary.png",
	}

	Spawner = SpawnerConfig{
		BaseFireFrames: 60,
	}

	Fortification = FortificationConfig{
		Shape: []string{
			"  xxxxxxx",
			" xxxxxxxxx",
			"xxxxxxxxxxx",
			"xxxxxxxxxxx",
			"xxxxxxxxxxx",
			"xxx     xxx",
			"xx       xx",
		},
		BlockSize: 6,
		StartX:    57,
		StartY:    480,
		Offsets:   []float64{0, 180, 360, 540},
		Color:     Coral,
	}

	Score = ScoreConfig{
		BulletClash: 5,
	}

	Explosion = ExplosionConfig{
		Duration:   0.35,
		StartScale: 0.6,
		EndScale:   1.6,
		Color:      Amber,
	}

	UI = UIConfig{
		BackgroundColor: Charcoal,
		HUDTextColor:    White,
		HUDMargin:       10,
		HUDFontSize:     20,
		TitleFontSize:   40,
		MenuFontSize:    20,
		SmallFontSize:   12,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		TextColorSelected: Yellow,
		MenuItemHeight:    30,
		MenuItemGap:       10,
		MenuOptions:       []string{"RESUME", "SOUND", "QUIT"},
	}

	Outcome = OutcomeConfig{
		MenuTitleColor:    White,
		VictoryTitleColor: Green,
		DefeatTitleColor:  Red,
		TextColor:         White,
		ButtonColor:       LightGreen,
		ButtonHoverColor:  White,
		QuitHoverColor:    Red,
	}

	Assets = AssetConfig{
		Dir:  "Assets",
		Font: "Pixeled.ttf",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}

// SpriteKeys lists every image the renderers look up.
func SpriteKeys() []string {
	keys := []string{Player.SpriteKey, Legendary.SpriteKey}
	for _, tier := range []Tier{TierRare, TierEpic, TierMythic} {
		keys = append(keys, Enemy.Tiers[tier].SpriteKey)
	}
	return keys
}
