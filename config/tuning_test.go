package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuningAppliesSetFieldsOnly(t *testing.T) {
	savedGen, savedPhys, savedPlat := Generator, Physics, Platform
	defer func() { Generator, Physics, Platform = savedGen, savedPhys, savedPlat }()

	data := []byte(`
generator:
  max_y_gap: 320
  refill_batch: 3
  seed: 99
physics:
  max_fall_speed: 20
platform:
  one_way: true
`)
	tuning, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	ApplyTuning(tuning)

	if Generator.MaxYGap != 320 {
		t.Errorf("MaxYGap = %v, want 320", Generator.MaxYGap)
	}
	if Generator.MinYGap != savedGen.MinYGap {
		t.Errorf("MinYGap changed to %v, want untouched %v", Generator.MinYGap, savedGen.MinYGap)
	}
	if Generator.RefillBatch != 3 || Generator.Seed != 99 {
		t.Errorf("RefillBatch/Seed = %d/%d, want 3/99", Generator.RefillBatch, Generator.Seed)
	}
	if Physics.MaxFallSpeed != 20 || Physics.MaxRiseSpeed != -20 {
		t.Errorf("fall/rise = %v/%v, want 20/-20", Physics.MaxFallSpeed, Physics.MaxRiseSpeed)
	}
	if !Platform.OneWay {
		t.Error("OneWay not applied")
	}
}

func TestParseTuningRejectsBadRanges(t *testing.T) {
	cases := map[string]string{
		"inverted gaps": "generator:\n  min_y_gap: 400\n  max_y_gap: 300\n",
		"zero batch":    "generator:\n  initial_batch: 0\n",
		"huge margin":   "generator:\n  edge_margin: 5000\n",
		"no fall speed": "physics:\n  max_fall_speed: 0\n",
		"not yaml":      "generator: [",
	}
	for name, data := range cases {
		if _, err := ParseTuning([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadTuningCustomPath(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing custom path")
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  follow_smoothing: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tuning.Camera == nil || tuning.Camera.FollowSmoothing == nil || *tuning.Camera.FollowSmoothing != 0.5 {
		t.Fatalf("camera smoothing not parsed: %+v", tuning.Camera)
	}
}
