package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore counts a point each time the player stands higher than ever before.
func UpdateScore(e *ecs.ECS) {
	_, _, score, ok := getWorld(e)
	if !ok {
		return
	}
	updateScorePop(score)

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	_, py, _ := playerWorldPos(e)
	grounded := components.Physics.Get(playerEntry).OnGround != nil

	if score.Observe(py, grounded) {
		score.Pop = gween.New(cfg.HUD.PopScale, 1, cfg.HUD.PopDuration, ease.OutQuad)
		score.PopScale = cfg.HUD.PopScale
	}
}

func updateScorePop(score *components.ScoreData) {
	if score.Pop == nil {
		return
	}
	scale, done := score.Pop.Update(frameSeconds())
	score.PopScale = scale
	if done {
		score.Pop = nil
		score.PopScale = 1
	}
}

// CurrentScore returns the score of the running game, or 0 outside a run.
func CurrentScore(e *ecs.ECS) int {
	_, _, score, ok := getWorld(e)
	if !ok {
		return 0
	}
	return score.Score
}
