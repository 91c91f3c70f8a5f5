package systems

import (
	"math"

	"github.com/automoto/suzujump/assets"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 64.0

// DrawBackground paints the sky and the star overlay. The sky shader gets
// darker the higher the camera has climbed.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if assets.SkyShader == nil {
		screen.Fill(cfg.Start.BackgroundColor)
	} else {
		shaderOp.Uniforms = map[string]any{
			"Altitude": float32(cameraAltitude(ecs)),
			"Height":   float32(height),
		}
		screen.DrawRectShader(width, height, assets.SkyShader, shaderOp)
	}

	if _, ok := tags.Background.First(ecs.World); !ok {
		return
	}
	stars := assets.StarsImage()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(float64(width)/float64(stars.Bounds().Dx()), float64(height)/float64(stars.Bounds().Dy()))
	screen.DrawImage(stars, drawOp)
}

// cameraAltitude is how far above the start line the camera is, in world pixels.
func cameraAltitude(e *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0
	}
	world, _, _, ok := getWorld(e)
	if !ok {
		return 0
	}
	camera := components.Camera.Get(cameraEntry)
	_, wy := world.ToWorld(camera.Position.X, camera.Position.Y)
	return math.Max(0, cfg.StartY()-wy)
}

// DrawPlatforms renders every platform centred on its body.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	viewX, viewY, ok := viewOrigin(ecs, width, height)
	if !ok {
		return
	}
	img := assets.PlatformImage()
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.X+o.W < viewX-cullPadding || o.X > viewX+float64(width)+cullPadding ||
			o.Y+o.H < viewY-cullPadding || o.Y > viewY+float64(height)+cullPadding {
			return
		}

		p := components.Platform.Get(e)
		cx, cy := o.Center()
		scale := p.Scale * float64(p.PopScale)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-iw/2, -ih/2)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(cx-viewX, cy-viewY)
		screen.DrawImage(img, drawOp)
	})
}

// DrawPlayer renders the cat's current animation frame.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	viewX, viewY, ok := viewOrigin(ecs, width, height)
	if !ok {
		return
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		img := assets.CatFrame(anim.CurrentAnimation.Frame())

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-centre so the feet line up with the collision box
		drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))

		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)
		}

		// The sheet faces right.
		if components.Player.Get(e).Direction.X < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(o.X+o.W/2-viewX, o.Y+o.H-viewY)
		screen.DrawImage(img, drawOp)
	})
}
