package components

import "github.com/yohamta/donburi"

// BackgroundData pins the backdrop to the top-left of the view, in local coordinates.
type BackgroundData struct {
	X, Y float64
}

var Background = donburi.NewComponentType[BackgroundData]()
