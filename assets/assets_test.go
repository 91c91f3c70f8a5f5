package assets

import "testing"

func TestStartLayout(t *testing.T) {
	l, err := LoadStartLayout(StartLayoutPath)
	if err != nil {
		t.Fatalf("LoadStartLayout: %v", err)
	}
	if l.Ground != (LayoutPoint{0, 0}) {
		t.Errorf("ground = %+v, want origin", l.Ground)
	}
	if l.GroundScale != 3 {
		t.Errorf("ground scale = %v, want 3", l.GroundScale)
	}
	if l.Spawn.Y >= l.Ground.Y {
		t.Errorf("spawn %+v must be above the ground", l.Spawn)
	}
	if l.Seed.Y != -200 {
		t.Errorf("seed y = %v, want -200", l.Seed.Y)
	}
	if l.Music == "" {
		t.Error("music property missing")
	}
}

func TestLoadStartLayoutMissing(t *testing.T) {
	if _, err := LoadStartLayout("levels/nope.tmx"); err == nil {
		t.Fatal("expected error for missing map")
	}
}
