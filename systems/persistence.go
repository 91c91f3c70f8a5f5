package systems

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
}

// SavedRecord is the player's best result across sessions
type SavedRecord struct {
	BestScore int `json:"bestScore"`
	Runs      int `json:"runs"`
}

const (
	settingsKey = "settings"
	recordKey   = "record"
)

var (
	gdataManager *gdata.Manager

	// record mirrors the stored record so scores count even without storage.
	record SavedRecord
)

// InitPersistence opens the per-user store and loads the saved record.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "suzujump",
	})
	if err != nil {
		return fmt.Errorf("failed to open save data: %w", err)
	}
	gdataManager = m

	saved, err := loadJSON[SavedRecord](recordKey)
	if err != nil {
		return err
	}
	if saved != nil {
		record = *saved
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	return loadJSON[SavedSettings](settingsKey)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON(settingsKey, s)
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMuted(saved.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// RecordScore counts a finished run and returns the best score so far.
func RecordScore(score int) int {
	record.Runs++
	if score > record.BestScore {
		record.BestScore = score
	}
	if err := saveJSON(recordKey, &record); err != nil {
		log.Warn("could not save record", "err", err)
	}
	return record.BestScore
}

// BestScore returns the best score recorded.
func BestScore() int {
	return record.BestScore
}

func loadJSON[T any](key string) (*T, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return &v, nil
}

func saveJSON(key string, v any) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
