package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// PlayerAnimations maps each player state to its frames in the generated cat sheet.
// Sheet layout: 0-3 idle, 4-9 running, 10 jump, 11 fall.
var PlayerAnimations = map[StateID]AnimationDef{
	Idle:    {First: 0, Last: 3, Step: 1, Speed: 10},
	Running: {First: 4, Last: 9, Step: 1, Speed: 5},
	Jump:    {First: 10, Last: 10, Step: 1, Speed: 0},
	Fall:    {First: 11, Last: 11, Step: 1, Speed: 0},
}

// PlayerSheetFrames is the total number of frames in the cat sheet.
const PlayerSheetFrames = 12
