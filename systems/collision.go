package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/gamemath"
	"github.com/automoto/suzujump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// landTolerance is how far the feet may already sink into a surface and
// still count as landing on it.
const landTolerance = 4.0

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
		obj.Update()
	})
}

// resolveHorizontalCollision moves the object sideways, stopping flush against solids.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		walls := blocking(object, dx, 0, check.ObjectsByTags(tags.ResolvSolid))
		if wall := nearest(walls, dx, 0); wall != nil {
			dx = check.ContactWithObject(wall).X()
			physics.SpeedX = 0
		}
	}

	object.X += dx
}

// resolveVerticalCollision handles falling, landing and head bumps
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := gamemath.Clamp(physics.SpeedY, cfg.Physics.MaxRiseSpeed, cfg.Physics.MaxFallSpeed)

	// Probe one pixel further when falling or resting so standing still
	// keeps reporting the ground underfoot.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvOneWay)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = handleUpwardCollision(physics, object, check, dy)
	} else {
		dy = handleDownwardCollision(physics, object, check, checkDistance, dy)
	}

	object.Y += dy
}

func handleUpwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	ceilings := blocking(object, 0, dy, check.ObjectsByTags(tags.ResolvSolid))
	ceiling := nearest(ceilings, 0, dy)
	if ceiling == nil {
		return dy
	}
	physics.SpeedY = 0
	return check.ContactWithObject(ceiling).Y()
}

func handleDownwardCollision(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, checkDistance, dy float64) float64 {
	candidates := append(check.ObjectsByTags(tags.ResolvSolid), check.ObjectsByTags(tags.ResolvOneWay)...)
	floor := nearest(blocking(object, 0, checkDistance, candidates), 0, checkDistance)
	if floor == nil {
		return dy
	}
	physics.OnGround = floor
	physics.SpeedY = 0
	return check.ContactWithObject(floor).Y()
}

// blocking filters broad-phase candidates down to the ones the object would
// actually run into when moved by (dx, dy). Only one axis may be non-zero.
func blocking(object *resolv.Object, dx, dy float64, candidates []*resolv.Object) []*resolv.Object {
	var out []*resolv.Object
	for _, c := range candidates {
		if c == object {
			continue
		}
		if !overlaps(object.X+dx, object.Y+dy, object.W, object.H, c) {
			continue
		}
		switch {
		case dx > 0 && object.X+object.W <= c.X+landTolerance,
			dx < 0 && object.X >= c.X+c.W-landTolerance,
			dy > 0 && object.Y+object.H <= c.Y+landTolerance,
			dy < 0 && object.Y >= c.Y+c.H-landTolerance && c.HasTags(tags.ResolvSolid):
			out = append(out, c)
		}
	}
	return out
}

// nearest returns the first object met when travelling along (dx, dy).
func nearest(objects []*resolv.Object, dx, dy float64) *resolv.Object {
	var best *resolv.Object
	for _, o := range objects {
		if best == nil {
			best = o
			continue
		}
		switch {
		case dx > 0 && o.X < best.X,
			dx < 0 && o.X+o.W > best.X+best.W,
			dy > 0 && o.Y < best.Y,
			dy < 0 && o.Y+o.H > best.Y+best.H:
			best = o
		}
	}
	return best
}

func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+w > o.X && y < o.Y+o.H && y+h > o.Y
}
