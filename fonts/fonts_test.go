package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	err := LoadDefaults(map[FontName]float64{Score: 36, Debug: 18})
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if Width(Score.Get(), "Score: 10") <= Width(Debug.Get(), "Score: 10") {
		t.Error("larger face should measure wider")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unloaded font")
		}
	}()
	FontName("missing").Get()
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("bad", []byte("not a font"), 12); err == nil {
		t.Fatal("expected parse error")
	}
}
