package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector
	Jumps     int // jumps taken this run, reported on game over
}

var Player = donburi.NewComponentType[PlayerData]()
