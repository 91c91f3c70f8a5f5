package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional YAML override for gameplay constants.
// Unset fields keep their compiled-in defaults.
type Tuning struct {
	Player *struct {
		MoveSpeed *float64 `yaml:"move_speed"`
		JumpSpeed *float64 `yaml:"jump_speed"`
	} `yaml:"player"`

	Physics *struct {
		Gravity      *float64 `yaml:"gravity"`
		MaxFallSpeed *float64 `yaml:"max_fall_speed"`
	} `yaml:"physics"`

	Platform *struct {
		Scale       *float64 `yaml:"scale"`
		GroundScale *float64 `yaml:"ground_scale"`
		OneWay      *bool    `yaml:"one_way"`
	} `yaml:"platform"`

	Generator *struct {
		MaxXOffset     *float64 `yaml:"max_x_offset"`
		MinYGap        *float64 `yaml:"min_y_gap"`
		MaxYGap        *float64 `yaml:"max_y_gap"`
		EdgeMargin     *float64 `yaml:"edge_margin"`
		InitialBatch   *int     `yaml:"initial_batch"`
		RefillBatch    *int     `yaml:"refill_batch"`
		RefillDistance *float64 `yaml:"refill_distance"`
		Seed           *int64   `yaml:"seed"`
	} `yaml:"generator"`

	World *struct {
		DeathMargin *float64 `yaml:"death_margin"`
	} `yaml:"world"`

	Camera *struct {
		FollowSmoothing *float64 `yaml:"follow_smoothing"`
	} `yaml:"camera"`

	Audio *struct {
		MusicVolume *float64 `yaml:"music_volume"`
		SFXVolume   *float64 `yaml:"sfx_volume"`
	} `yaml:"audio"`
}

// LoadTuning reads a tuning file.
// Search order: customPath -> <user config dir>/suzujump/tuning.yaml -> none.
// A missing user file is not an error; a missing custom file is.
func LoadTuning(customPath string) (*Tuning, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		return ParseTuning(data)
	}

	path := userTuningPath()
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning data and validates the ranges it sets.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) validate() error {
	if g := t.Generator; g != nil {
		minGap, maxGap := Generator.MinYGap, Generator.MaxYGap
		if g.MinYGap != nil {
			minGap = *g.MinYGap
		}
		if g.MaxYGap != nil {
			maxGap = *g.MaxYGap
		}
		if minGap <= 0 || maxGap < minGap {
			return fmt.Errorf("invalid y gap range [%v, %v]", minGap, maxGap)
		}
		if g.EdgeMargin != nil && (*g.EdgeMargin < 0 || *g.EdgeMargin*2 > float64(C.Width)) {
			return fmt.Errorf("invalid edge margin %v", *g.EdgeMargin)
		}
		if g.InitialBatch != nil && *g.InitialBatch < 1 {
			return fmt.Errorf("initial batch must be positive, got %d", *g.InitialBatch)
		}
		if g.RefillBatch != nil && *g.RefillBatch < 1 {
			return fmt.Errorf("refill batch must be positive, got %d", *g.RefillBatch)
		}
	}
	if p := t.Physics; p != nil && p.MaxFallSpeed != nil && *p.MaxFallSpeed <= 0 {
		return fmt.Errorf("max fall speed must be positive, got %v", *p.MaxFallSpeed)
	}
	return nil
}

// ApplyTuning copies every field set in t over the global configuration.
func ApplyTuning(t *Tuning) {
	if t == nil {
		return
	}
	if p := t.Player; p != nil {
		setFloat(&Player.MoveSpeed, p.MoveSpeed)
		setFloat(&Player.JumpSpeed, p.JumpSpeed)
	}
	if p := t.Physics; p != nil {
		setFloat(&Physics.Gravity, p.Gravity)
		if p.MaxFallSpeed != nil {
			Physics.MaxFallSpeed = *p.MaxFallSpeed
			Physics.MaxRiseSpeed = -*p.MaxFallSpeed
		}
	}
	if p := t.Platform; p != nil {
		setFloat(&Platform.Scale, p.Scale)
		setFloat(&Platform.GroundScale, p.GroundScale)
		if p.OneWay != nil {
			Platform.OneWay = *p.OneWay
		}
	}
	if g := t.Generator; g != nil {
		setFloat(&Generator.MaxXOffset, g.MaxXOffset)
		setFloat(&Generator.MinYGap, g.MinYGap)
		setFloat(&Generator.MaxYGap, g.MaxYGap)
		setFloat(&Generator.EdgeMargin, g.EdgeMargin)
		setFloat(&Generator.RefillDistance, g.RefillDistance)
		setInt(&Generator.InitialBatch, g.InitialBatch)
		setInt(&Generator.RefillBatch, g.RefillBatch)
		if g.Seed != nil {
			Generator.Seed = *g.Seed
		}
	}
	if w := t.World; w != nil {
		setFloat(&World.DeathMargin, w.DeathMargin)
	}
	if c := t.Camera; c != nil {
		setFloat(&Camera.FollowSmoothing, c.FollowSmoothing)
	}
	if a := t.Audio; a != nil {
		setFloat(&Audio.DefaultMusicVol, a.MusicVolume)
		setFloat(&Audio.DefaultSFXVol, a.SFXVolume)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// userTuningPath returns the path to the user tuning file, or empty if unavailable.
func userTuningPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "suzujump", "tuning.yaml")
}
