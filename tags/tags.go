package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Background = donburi.NewTag().SetName("Background")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvOneWay   = "platform"
	ResolvGround   = "ground"
	ResolvPlayer   = "Player"
	ResolvPlatform = "Platform"
)
