package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	VX, VY      float64
	Mass        float64
	Friction    float64 // multiplicative, applied once per tick
	Restitution float64 // applied on boundary bounce and collisions
}

var Physics = donburi.NewComponentType[PhysicsData]()
