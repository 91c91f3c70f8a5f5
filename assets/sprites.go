package assets

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/suzujump/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites are drawn in code on first use and cached for the process lifetime.
var (
	catSheet      *ebiten.Image
	catFrames     map[int]*ebiten.Image
	platformImage *ebiten.Image
	starsImage    *ebiten.Image
)

var (
	furColor    = color.RGBA{R: 236, G: 150, B: 64, A: 255}
	furShade    = color.RGBA{R: 196, G: 112, B: 40, A: 255}
	bellyColor  = color.RGBA{R: 250, G: 226, B: 196, A: 255}
	eyeColor    = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	noseColor   = color.RGBA{R: 230, G: 110, B: 130, A: 255}
	collarColor = color.RGBA{R: 200, G: 30, B: 50, A: 255}
	bellColor   = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	soilColor   = color.RGBA{R: 110, G: 76, B: 50, A: 255}
	soilShade   = color.RGBA{R: 84, G: 56, B: 36, A: 255}
	grassColor  = color.RGBA{R: 96, G: 180, B: 80, A: 255}
)

// catPose describes one frame of the cat sheet.
type catPose struct {
	bob       float32 // vertical body offset
	frontLeg  float32 // horizontal leg swing
	backLeg   float32
	legLength float32
	tail      float64 // tail angle in radians, 0 = straight up
}

// catPoses is indexed by sheet frame; see config.PlayerAnimations.
var catPoses = [config.PlayerSheetFrames]catPose{
	// idle
	{bob: 0, legLength: 18, tail: -0.3},
	{bob: 1, legLength: 18, tail: -0.2},
	{bob: 2, legLength: 18, tail: -0.1},
	{bob: 1, legLength: 18, tail: -0.2},
	// running
	{bob: 0, frontLeg: 8, backLeg: -8, legLength: 18, tail: -0.9},
	{bob: -2, frontLeg: 4, backLeg: -4, legLength: 17, tail: -1.0},
	{bob: -3, frontLeg: 0, backLeg: 0, legLength: 16, tail: -1.1},
	{bob: 0, frontLeg: -8, backLeg: 8, legLength: 18, tail: -0.9},
	{bob: -2, frontLeg: -4, backLeg: 4, legLength: 17, tail: -1.0},
	{bob: -3, frontLeg: 0, backLeg: 0, legLength: 16, tail: -1.1},
	// jump: legs tucked
	{bob: -6, frontLeg: 6, backLeg: -6, legLength: 10, tail: -1.4},
	// fall: legs reaching down
	{bob: -2, frontLeg: -4, backLeg: 4, legLength: 22, tail: 0.4},
}

// CatSheet returns the player sprite sheet: one row of square frames.
func CatSheet() *ebiten.Image {
	if catSheet != nil {
		return catSheet
	}
	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	catSheet = ebiten.NewImage(w*config.PlayerSheetFrames, h)
	for i, pose := range catPoses {
		drawCat(catSheet, float32(i*w), float32(w), float32(h), pose)
	}
	return catSheet
}

// CatFrame returns the cached sub-image for a sheet index.
func CatFrame(index int) *ebiten.Image {
	if catFrames == nil {
		catFrames = make(map[int]*ebiten.Image, config.PlayerSheetFrames)
	}
	if f, ok := catFrames[index]; ok {
		return f
	}
	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	sheet := CatSheet()
	f := sheet.SubImage(rectAt(index*w, 0, w, h)).(*ebiten.Image)
	catFrames[index] = f
	return f
}

func drawCat(dst *ebiten.Image, ox, w, h float32, p catPose) {
	groundY := h - 2
	bodyY := groundY - p.legLength - 22 + p.bob
	bodyX := ox + w/2 - 6

	// tail
	tx, ty := bodyX-30, bodyY-4
	for i := 0; i < 9; i++ {
		a := p.tail * float64(i) / 8
		tx += float32(math.Sin(a-0.8) * 4.5)
		ty -= float32(math.Cos(a-0.8) * 4.5)
		vector.DrawFilledCircle(dst, tx, ty, 5, furShade, true)
	}

	// legs
	legW := float32(9)
	legTop := bodyY + 8
	vector.FillRect(dst, bodyX-24+p.backLeg, legTop, legW, p.legLength+14-p.bob, furShade, false)
	vector.FillRect(dst, bodyX+18+p.frontLeg, legTop, legW, p.legLength+14-p.bob, furShade, false)
	vector.FillRect(dst, bodyX-14+p.backLeg/2, legTop, legW, p.legLength+12-p.bob, furColor, false)
	vector.FillRect(dst, bodyX+8+p.frontLeg/2, legTop, legW, p.legLength+12-p.bob, furColor, false)

	// body
	vector.DrawFilledCircle(dst, bodyX-16, bodyY, 20, furColor, true)
	vector.DrawFilledCircle(dst, bodyX+4, bodyY-2, 22, furColor, true)
	vector.DrawFilledCircle(dst, bodyX+20, bodyY, 18, furColor, true)
	vector.DrawFilledCircle(dst, bodyX+6, bodyY+8, 12, bellyColor, true)

	// head
	headX, headY := bodyX+30, bodyY-30
	drawEar(dst, headX-14, headY-12, furShade)
	drawEar(dst, headX+6, headY-14, furShade)
	vector.DrawFilledCircle(dst, headX, headY, 20, furColor, true)
	vector.DrawFilledCircle(dst, headX+4, headY+8, 10, bellyColor, true)
	vector.DrawFilledCircle(dst, headX-2, headY-4, 3, eyeColor, true)
	vector.DrawFilledCircle(dst, headX+10, headY-4, 3, eyeColor, true)
	vector.DrawFilledCircle(dst, headX+6, headY+4, 2, noseColor, true)

	// collar and bell
	vector.FillRect(dst, headX-14, headY+16, 24, 4, collarColor, false)
	vector.DrawFilledCircle(dst, headX-2, headY+23, 4, bellColor, true)
}

// drawEar rasterises a small upward triangle with its base at (x, y).
func drawEar(dst *ebiten.Image, x, y float32, clr color.Color) {
	const size = 14
	for row := 0; row < size; row++ {
		half := float32(size-row) / 2
		vector.FillRect(dst, x+size/2-half, y-float32(row), half*2, 1, clr, false)
	}
}

// PlatformImage returns the unscaled platform sprite.
func PlatformImage() *ebiten.Image {
	if platformImage != nil {
		return platformImage
	}
	w, h := float32(config.Platform.Width), float32(config.Platform.Height)
	platformImage = ebiten.NewImage(int(w), int(h))
	vector.FillRect(platformImage, 0, 0, w, h, soilColor, false)
	vector.FillRect(platformImage, 0, h-5, w, 5, soilShade, false)
	vector.FillRect(platformImage, 0, 0, w, 6, grassColor, false)
	for x := float32(4); x < w-4; x += 12 {
		vector.FillRect(platformImage, x, 6, 4, 3, grassColor, false)
	}
	return platformImage
}

// StarsImage returns a transparent screen-sized overlay of stars.
func StarsImage() *ebiten.Image {
	if starsImage != nil {
		return starsImage
	}
	w, h := config.C.Width, config.C.Height
	starsImage = ebiten.NewImage(w, h)
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 160; i++ {
		x := rng.Float32() * float32(w)
		y := rng.Float32() * float32(h) * 0.8
		r := 1 + rng.Float32()*1.5
		a := uint8(120 + rng.IntN(135))
		vector.DrawFilledCircle(starsImage, x, y, r, color.RGBA{R: a, G: a, B: a, A: a}, true)
	}
	return starsImage
}
