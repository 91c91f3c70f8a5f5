package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// SkyShader paints the backdrop gradient
	SkyShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if SkyShader != nil {
		return nil
	}

	src, err := shaderFS.ReadFile("shaders/sky.kage")
	if err != nil {
		return fmt.Errorf("failed to read sky shader: %w", err)
	}
	SkyShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("failed to compile sky shader: %w", err)
	}

	return nil
}
