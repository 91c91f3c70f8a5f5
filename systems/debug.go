package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/fonts"
	"github.com/automoto/suzujump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the scene's Settings singleton. The debug
// overlay starts in whatever state --debug asked for.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Enabled,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateDebug toggles the overlay on F3.
func UpdateDebug(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	viewX, viewY, ok := viewOrigin(ecs, width, height)
	if !ok {
		return // No camera yet
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.X+obj.W < viewX || obj.X > viewX+float64(width) || obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
			return
		}

		c := cfg.Cyan
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.Blue
		case obj.HasTags(tags.ResolvGround):
			c = cfg.Orange
		case obj.HasTags(tags.ResolvOneWay):
			c = cfg.Green
		case obj.HasTags(tags.ResolvSolid):
			c = cfg.Gray
		}
		strokeRect(screen, obj.X-viewX, obj.Y-viewY, obj.W, obj.H, c)
	})

	drawDebugText(ecs, screen)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func drawDebugText(e *ecs.ECS, screen *ebiten.Image) {
	world, gen, _, ok := getWorld(e)
	if !ok {
		return
	}

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("offset %.0f,%.0f  rebases %d", world.Origin.OffsetX, world.Origin.OffsetY, world.Rebases),
		fmt.Sprintf("seed %d  platforms %d", gen.Seed, gen.Count()),
	}
	last := gen.Last()
	lines = append(lines, fmt.Sprintf("last platform %.0f,%.0f", last.X, last.Y))
	if px, py, ok := playerWorldPos(e); ok {
		lines = append(lines, fmt.Sprintf("player %.0f,%.0f", px, py))
	}

	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := screen.Bounds().Dx() - 360
	for i, line := range lines {
		text.Draw(screen, line, face, x, 30+i*lineHeight, cfg.White)
	}
}
