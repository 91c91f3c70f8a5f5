package systems

import (
	"math"

	"github.com/automoto/suzujump/components"
	"github.com/automoto/suzujump/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects runs landing squash, squash/stretch recovery and platform pop-ins.
func UpdateEffects(ecs *ecs.ECS) {
	updateLandings(ecs)
	updateSquashStretchEffects(ecs)
	updatePlatformPopIns(ecs)
}

// updateLandings squashes bodies on the frame they touch down.
func updateLandings(ecs *ecs.ECS) {
	var landed []*donburi.Entry

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		grounded := physics.OnGround != nil
		if grounded && !physics.WasOnGround {
			landed = append(landed, e)
		}
		physics.WasOnGround = grounded
	})

	// Adding components moves entries between archetypes, so not mid-query.
	for _, e := range landed {
		TriggerSquashStretch(e, config.SquashStretch.LandScaleX, config.SquashStretch.LandScaleY)
	}
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

func updatePlatformPopIns(ecs *ecs.ECS) {
	dt := frameSeconds()
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		if p.PopIn == nil {
			return
		}
		scale, done := p.PopIn.Update(dt)
		p.PopScale = scale
		if done {
			p.PopIn = nil
			p.PopScale = 1
		}
	})
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX = scaleX
		ss.ScaleY = scaleY
		ss.TargetX = 1.0
		ss.TargetY = 1.0
		ss.LerpSpeed = config.SquashStretch.LerpSpeed
		return
	}
	entry.AddComponent(components.SquashStretch)
	components.SquashStretch.Set(entry, &components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.SquashStretch.LerpSpeed,
	})
}

// frameSeconds is the duration of one update tick, for tweens.
func frameSeconds() float32 {
	return 1 / float32(ebiten.TPS())
}
