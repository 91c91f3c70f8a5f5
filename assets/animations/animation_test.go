package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(4, 6, 1, 2)

	var frames []int
	for i := 0; i < 9; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	want := []int{4, 4, 5, 5, 5, 6, 6, 6, 4}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Looped {
		t.Fatal("expected Looped after wrapping")
	}

	a.Restart()
	if a.Frame() != 4 {
		t.Fatalf("Restart frame = %d, want 4", a.Frame())
	}
}

func TestStaticAnimationHolds(t *testing.T) {
	a := NewAnimation(10, 10, 1, 0)
	for i := 0; i < 100; i++ {
		a.Update()
	}
	if a.Frame() != 10 || a.Looped {
		t.Fatalf("static frame = %d looped=%v", a.Frame(), a.Looped)
	}
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want 1", a.Len())
	}
}
