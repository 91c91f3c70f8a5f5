package factory

import (
	"github.com/automoto/suzujump/archetypes"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a static platform centred on the local point (x, y).
// The ground is solid from every side; other platforms follow cfg.Platform.OneWay.
func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, x, y, scale float64, isGround bool) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	w := cfg.Platform.Width * scale
	h := cfg.Platform.Height * scale
	bodyTag := tags.ResolvSolid
	if cfg.Platform.OneWay && !isGround {
		bodyTag = tags.ResolvOneWay
	}

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, bodyTag, tags.ResolvPlatform)
	if isGround {
		obj.AddTags(tags.ResolvGround)
	}
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	space.Add(obj)

	data := components.PlatformData{
		IsGround: isGround,
		Scale:    scale,
		PopScale: 1,
	}
	// Only the collision body is full size from the first frame; the sprite grows in.
	if !isGround && cfg.Platform.PopInDuration > 0 {
		data.PopIn = gween.New(0, 1, cfg.Platform.PopInDuration, ease.OutBack)
		data.PopScale = 0
	}
	components.Platform.SetValue(platform, data)

	return platform
}
