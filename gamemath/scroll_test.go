package gamemath

import "testing"

func TestFloatingOriginRoundTrip(t *testing.T) {
	o := FloatingOrigin{OffsetX: 1920, OffsetY: 6000}
	lx, ly := o.ToLocal(100, -250)
	if lx != 2020 || ly != 5750 {
		t.Fatalf("ToLocal = (%f, %f)", lx, ly)
	}
	wx, wy := o.ToWorld(lx, ly)
	if wx != 100 || wy != -250 {
		t.Fatalf("ToWorld = (%f, %f)", wx, wy)
	}
}

func TestFloatingOriginRebasePreservesWorldPosition(t *testing.T) {
	o := FloatingOrigin{OffsetY: 6000}
	worldY := -2500.0
	_, localY := o.ToLocal(0, worldY)

	if shift := o.Rebase(localY, 4096, 2048); shift != 2048 {
		t.Fatalf("shift = %f, want 2048", shift)
	}
	localY += 2048
	if _, wy := o.ToWorld(0, localY); wy != worldY {
		t.Fatalf("world y after rebase = %f, want %f", wy, worldY)
	}
	if shift := o.Rebase(localY, 4096, 2048); shift != 0 {
		t.Fatalf("second rebase shifted by %f", shift)
	}

	// A large jump needs several steps at once.
	if shift := o.Rebase(-3000, 4096, 2048); shift != 8192 {
		t.Fatalf("multi-step shift = %f, want 8192", shift)
	}
}

func TestOffscreenAndFall(t *testing.T) {
	if OffscreenBelow(1080, 0, 1080) {
		t.Error("platform exactly one screen below is still visible")
	}
	if !OffscreenBelow(1081, 0, 1080) {
		t.Error("platform past one screen below should be offscreen")
	}
	if HasFallen(1480, 1480) || !HasFallen(1480.5, 1480) {
		t.Error("death line must be strict")
	}
}
