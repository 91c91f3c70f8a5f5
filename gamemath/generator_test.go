package gamemath

import (
	"math"
	"testing"
)

func testParams() GeneratorParams {
	return GeneratorParams{
		ScreenWidth:    1920,
		MaxXOffset:     550,
		MinYGap:        250,
		MaxYGap:        370,
		EdgeMargin:     150,
		RefillDistance: 600,
	}
}

func TestGeneratorPlacementsStayInBounds(t *testing.T) {
	p := testParams()
	g := NewPlatformGenerator(p, NewSeededRand(1), 660, 780)

	prev := g.Last()
	for i, pl := range g.Batch(5000) {
		if pl.X < p.EdgeMargin || pl.X > p.ScreenWidth-p.EdgeMargin {
			t.Fatalf("placement %d: x=%f outside [%f, %f]", i, pl.X, p.EdgeMargin, p.ScreenWidth-p.EdgeMargin)
		}
		gap := prev.Y - pl.Y
		if gap < p.MinYGap || gap > p.MaxYGap {
			t.Fatalf("placement %d: y gap %f outside [%f, %f]", i, gap, p.MinYGap, p.MaxYGap)
		}
		if pl.OffsetX < -p.MaxXOffset || pl.OffsetX > p.MaxXOffset {
			t.Fatalf("placement %d: raw x offset %f outside [-%f, %f]", i, pl.OffsetX, p.MaxXOffset, p.MaxXOffset)
		}
		want := Clamp(prev.X+pl.OffsetX, p.EdgeMargin, p.ScreenWidth-p.EdgeMargin)
		if math.Abs(pl.X-want) > 1e-9 {
			t.Fatalf("placement %d: x=%f, want clamp(prev+offset)=%f", i, pl.X, want)
		}
		prev = pl
	}
	if g.Count() != 5000 {
		t.Fatalf("Count = %d, want 5000", g.Count())
	}
}

func TestGeneratorClampsAtEdges(t *testing.T) {
	p := testParams()
	g := NewPlatformGenerator(p, NewSeededRand(7), p.EdgeMargin, 0)

	hitLeft, hitRight := false, false
	for _, pl := range g.Batch(2000) {
		if pl.X == p.EdgeMargin {
			hitLeft = true
		}
		if pl.X == p.ScreenWidth-p.EdgeMargin {
			hitRight = true
		}
	}
	if !hitLeft || !hitRight {
		t.Fatalf("expected clamping on both edges, left=%v right=%v", hitLeft, hitRight)
	}
}

func TestGeneratorIsDeterministicPerSeed(t *testing.T) {
	a := NewPlatformGenerator(testParams(), NewSeededRand(42), 660, 780).Batch(50)
	b := NewPlatformGenerator(testParams(), NewSeededRand(42), 660, 780).Batch(50)
	c := NewPlatformGenerator(testParams(), NewSeededRand(43), 660, 780).Batch(50)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed 42 diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestGeneratorNeedsMore(t *testing.T) {
	g := NewPlatformGenerator(testParams(), NewSeededRand(3), 660, -1000)

	if g.NeedsMore(0) {
		t.Fatal("player 1000px below the highest platform should not trigger a refill")
	}
	if !g.NeedsMore(-500) {
		t.Fatal("player 500px below the highest platform should trigger a refill")
	}
	if g.NeedsMore(-400 + 1) {
		t.Fatal("player 601px below the highest platform should not trigger a refill")
	}
}
