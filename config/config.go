package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per frame at 60 TPS)
	MoveSpeed float64
	JumpSpeed float64

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64 // must stay below platform height + player height to avoid tunnelling
	MaxRiseSpeed float64
}

// PlatformConfig describes platform bodies
type PlatformConfig struct {
	Width       float64 // unscaled sprite width
	Height      float64 // unscaled sprite height
	Scale       float64
	GroundScale float64
	OneWay      bool // land-only platforms instead of solid static bodies

	// Pop-in tween played when a platform spawns (seconds)
	PopInDuration float32
}

// GeneratorConfig contains procedural platform placement values
type GeneratorConfig struct {
	MaxXOffset     float64 // x' = x + U(-MaxXOffset, MaxXOffset)
	MinYGap        float64
	MaxYGap        float64
	EdgeMargin     float64 // clamp x to [EdgeMargin, Width-EdgeMargin]
	InitialBatch   int
	RefillBatch    int
	RefillDistance float64 // refill when player.y - RefillDistance < last platform y

	// Start position relative to the screen
	StartOffsetX float64 // startX = Width/2 - StartOffsetX
	StartOffsetY float64 // startY = Height - StartOffsetY

	Seed int64 // 0 = seed from the clock
}

// WorldConfig contains endless-scroll bookkeeping values
type WorldConfig struct {
	DeathMargin float64 // player dies below Height + DeathMargin

	// Floating origin for the fixed-size collision space
	SpaceWidth     int
	SpaceHeight    int
	CellSize       int
	InitialOffsetX float64
	InitialOffsetY float64
	RebaseAbove    float64 // rebase when the player's local y drops under this
	RebaseShift    float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // 1.0 locks onto the player
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast to return to normal scale
}

// StartConfig contains start screen configuration values
type StartConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	PromptColor     color.RGBA
	ControlsColor   color.RGBA
	BestColor       color.RGBA
	Title           string
	Prompt          string
	Controls        string
	TitleSize       float64
	PromptSize      float64
	ControlsSize    float64
	TitleOffsetY    float64 // relative to screen centre
	PromptOffsetY   float64
	ControlsOffsetY float64
	BestOffsetY     float64

	// Title pulse tween
	PulseScale    float32
	PulseDuration float32
}

// HUDConfig contains in-game overlay configuration
type HUDConfig struct {
	ScoreX        float64
	ScoreY        float64
	ScoreSize     float64
	ScoreColor    color.RGBA
	PopScale      float32
	PopDuration   float32
	DebugFontSize float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // draw collision boxes and world bookkeeping
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Platform PlatformConfig
var Generator GeneratorConfig
var World WorldConfig
var Camera CameraConfig
var SquashStretch SquashStretchConfig
var Start StartConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Gray      = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	// Reference resolution, scaled to the window by ebiten's Layout
	C = &Config{
		Width:  1920,
		Height: 1080,
	}

	Physics = PhysicsConfig{
		Gravity:      1600.0 / 3600.0, // 1600 px/s^2
		MaxFallSpeed: 30.0,
		MaxRiseSpeed: -30.0,
	}

	Player = PlayerConfig{
		MoveSpeed:       5.0,  // 300 px/s
		JumpSpeed:       25.0, // 1500 px/s
		FrameWidth:      128,
		FrameHeight:     128,
		CollisionWidth:  90,
		CollisionHeight: 110,
	}

	Platform = PlatformConfig{
		Width:         160,
		Height:        24,
		Scale:         1.5,
		GroundScale:   3.0,
		OneWay:        false,
		PopInDuration: 0.2,
	}

	Generator = GeneratorConfig{
		MaxXOffset:     550,
		MinYGap:        250,
		MaxYGap:        370,
		EdgeMargin:     150,
		InitialBatch:   10,
		RefillBatch:    5,
		RefillDistance: 600,
		StartOffsetX:   300,
		StartOffsetY:   100,
	}

	World = WorldConfig{
		DeathMargin:    400,
		SpaceWidth:     1920 * 3,
		SpaceHeight:    8192,
		CellSize:       64,
		InitialOffsetX: 1920,
		InitialOffsetY: 6000,
		RebaseAbove:    4096,
		RebaseShift:    2048,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.4,
		LandScaleX: 1.4,
		LandScaleY: 0.7,
		LerpSpeed:  0.12,
	}

	Start = StartConfig{
		BackgroundColor: Black,
		TitleColor:      White,
		PromptColor:     LightGray,
		ControlsColor:   Gray,
		BestColor:       Orange,
		Title:           "Suzu Jump Simulator",
		Prompt:          "Press any key to start | ESC to stop",
		Controls:        "Controls: A / D to move | Space to jump",
		TitleSize:       64,
		PromptSize:      32,
		ControlsSize:    24,
		TitleOffsetY:    -100,
		PromptOffsetY:   50,
		ControlsOffsetY: 150,
		BestOffsetY:     230,
		PulseScale:      1.06,
		PulseDuration:   1.2,
	}

	HUD = HUDConfig{
		ScoreX:        40,
		ScoreY:        40,
		ScoreSize:     36,
		ScoreColor:    White,
		PopScale:      1.4,
		PopDuration:   0.25,
		DebugFontSize: 18,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}

// StartX returns the world x of the ground platform centre.
func StartX() float64 {
	return float64(C.Width)/2 - Generator.StartOffsetX
}

// StartY returns the world y of the ground platform centre.
func StartY() float64 {
	return float64(C.Height) - Generator.StartOffsetY
}

// DeathY returns the world y below which the player is considered fallen.
func DeathY() float64 {
	return float64(C.Height) + World.DeathMargin
}
