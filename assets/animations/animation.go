package animations

// Animation steps through a contiguous run of sprite-sheet frames.
type Animation struct {
	First      int
	Last       int
	Step       int     // sheet indices advanced per frame change
	SpeedInTps float32 // ticks each frame is held; 0 holds the first frame forever
	counter    float32
	frame      int
	Looped     bool
}

func (a *Animation) Update() {
	if a.SpeedInTps <= 0 || a.First == a.Last {
		return
	}
	a.counter -= 1.0
	if a.counter >= 0.0 {
		return
	}
	a.counter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

// Frame returns the current sheet index.
func (a *Animation) Frame() int {
	return a.frame
}

// Len returns the number of frames in the run.
func (a *Animation) Len() int {
	step := a.Step
	if step <= 0 {
		step = 1
	}
	return (a.Last-a.First)/step + 1
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.SpeedInTps
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		counter:    speed,
		frame:      first,
	}
}
