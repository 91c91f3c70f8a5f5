package assets

import (
	"embed"
	"fmt"
	"image"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// StartLayoutPath is the embedded map describing the opening screen.
const StartLayoutPath = "levels/start.tmx"

// LayoutPoint is a position relative to the start anchor (startX, startY).
type LayoutPoint struct {
	X, Y float64
}

// StartLayout is where a run begins: the ground platform, the player spawn
// and the seed of the platform walk, all relative to the start anchor.
type StartLayout struct {
	Ground      LayoutPoint
	GroundScale float64 // 0 keeps the configured ground scale
	Spawn       LayoutPoint
	Seed        LayoutPoint
	Music       string
}

// LoadStartLayout parses a layout map from the embedded level files.
func LoadStartLayout(path string) (StartLayout, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return StartLayout{}, fmt.Errorf("failed to load layout %s: %w", path, err)
	}

	var layout StartLayout
	if m.Properties != nil {
		layout.Music = m.Properties.GetString("music")
	}
	var haveGround, haveSpawn, haveSeed bool

	for _, og := range m.ObjectGroups {
		if og.Name != "Layout" {
			continue
		}
		for _, o := range og.Objects {
			p := LayoutPoint{X: o.X, Y: o.Y}
			switch o.Name {
			case "ground":
				layout.Ground = p
				layout.GroundScale = o.Properties.GetFloat("scale")
				haveGround = true
			case "spawn":
				layout.Spawn = p
				haveSpawn = true
			case "seed":
				layout.Seed = p
				haveSeed = true
			}
		}
	}

	switch {
	case !haveGround:
		return layout, fmt.Errorf("layout %s has no ground object", path)
	case !haveSpawn:
		return layout, fmt.Errorf("layout %s has no spawn object", path)
	case !haveSeed:
		return layout, fmt.Errorf("layout %s has no seed object", path)
	}
	return layout, nil
}

var startLayout *StartLayout

// MustLoadStartLayout returns the cached start layout and panics if the
// embedded map is missing or malformed.
func MustLoadStartLayout() StartLayout {
	if startLayout == nil {
		l, err := LoadStartLayout(StartLayoutPath)
		if err != nil {
			panic(err)
		}
		startLayout = &l
	}
	return *startLayout
}

func rectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
