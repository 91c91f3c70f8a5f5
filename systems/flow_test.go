package systems

import (
	"testing"

	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func resetRecord(t *testing.T) {
	t.Helper()
	saved := record
	record = SavedRecord{}
	t.Cleanup(func() { record = saved })
}

func startSceneFactory(last int) interface{} { return last }

func TestFallingEndsRunAndStopsMusic(t *testing.T) {
	resetRecord(t)
	e := newTestRun(t)
	// No audio device in tests: only the playing key is faked, so this
	// covers StopMusic clearing the track, not closing a live player.
	globalMusicKey = cfg.Sound.BackgroundMusic
	t.Cleanup(func() { globalMusicKey = "" })

	sc := &fakeSceneChanger{}
	update := NewUpdateRun(sc, startSceneFactory)

	update(e)
	if len(sc.scenes) != 0 {
		t.Fatal("run ended while the player was alive")
	}

	movePlayerTo(t, e, cfg.StartX(), cfg.DeathY()+1)
	update(e)

	if len(sc.scenes) != 1 {
		t.Fatalf("scene changes = %d, want 1", len(sc.scenes))
	}
	if sc.scenes[0] != 0 {
		t.Fatalf("last score passed = %v, want 0", sc.scenes[0])
	}
	if CurrentMusic() != "" {
		t.Fatalf("music still playing: %q", CurrentMusic())
	}
	if record.Runs != 1 {
		t.Fatalf("runs recorded = %d, want 1", record.Runs)
	}
}

func TestDeathLineIsStrict(t *testing.T) {
	resetRecord(t)
	e := newTestRun(t)
	sc := &fakeSceneChanger{}
	update := NewUpdateRun(sc, startSceneFactory)

	movePlayerTo(t, e, cfg.StartX(), cfg.DeathY())
	update(e)
	if len(sc.scenes) != 0 {
		t.Fatal("run ended exactly on the death line")
	}
}

func TestEscapeEndsRun(t *testing.T) {
	resetRecord(t)
	e := newTestRun(t)
	sc := &fakeSceneChanger{}

	press(e, cfg.ActionQuit)
	NewUpdateRun(sc, startSceneFactory)(e)

	if len(sc.scenes) != 1 {
		t.Fatalf("scene changes = %d, want 1", len(sc.scenes))
	}
}

func TestStartWaitsForAnyKey(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	SetupStartScreen(e, -1)
	sc := &fakeSceneChanger{}
	update := NewUpdateStart(sc, func() interface{} { return "main" })

	update(e)
	if len(sc.scenes) != 0 {
		t.Fatal("started without a key press")
	}

	getOrCreateInput(e).AnyJustPressed = true
	update(e)
	if len(sc.scenes) != 1 || sc.scenes[0] != "main" {
		t.Fatalf("scenes = %v, want [main]", sc.scenes)
	}
}

func TestStartEscapeStartsGame(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	SetupStartScreen(e, -1)
	sc := &fakeSceneChanger{}

	press(e, cfg.ActionQuit)
	getOrCreateInput(e).AnyJustPressed = true
	NewUpdateStart(sc, func() interface{} { return "main" })(e)

	if len(sc.scenes) != 1 || sc.scenes[0] != "main" {
		t.Fatalf("scenes = %v, want [main]", sc.scenes)
	}
}

func TestTitlePulseStaysInRange(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	start := SetupStartScreen(e, 3)
	if start.LastScore != 3 {
		t.Fatalf("LastScore = %d", start.LastScore)
	}

	for i := 0; i < 600; i++ {
		updateTitlePulse(e)
		entry, _ := components.StartScreen.First(e.World)
		scale := components.StartScreen.Get(entry).TitleScale
		if scale < 0.99 || scale > cfg.Start.PulseScale+0.01 {
			t.Fatalf("frame %d: title scale %v out of range", i, scale)
		}
	}
}

func TestRecordScoreKeepsBest(t *testing.T) {
	resetRecord(t)

	if got := RecordScore(4); got != 4 {
		t.Fatalf("best = %d, want 4", got)
	}
	if got := RecordScore(2); got != 4 {
		t.Fatalf("best after lower score = %d, want 4", got)
	}
	if got := RecordScore(9); got != 9 {
		t.Fatalf("best = %d, want 9", got)
	}
	if BestScore() != 9 || record.Runs != 3 {
		t.Fatalf("record = %+v", record)
	}
}

func TestDebugToggle(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	settings := GetOrCreateSettings(e)
	initial := settings.Debug

	press(e, cfg.ActionToggleDebug)
	UpdateDebug(e)
	if settings.Debug == initial {
		t.Fatal("F3 did not toggle the overlay")
	}

	getOrCreateInput(e).Previous[cfg.ActionToggleDebug] = true
	UpdateDebug(e)
	if settings.Debug == initial {
		t.Fatal("holding F3 toggled again")
	}
}
