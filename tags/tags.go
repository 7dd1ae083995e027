package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Wall       = donburi.NewTag().SetName("Wall")
	Chest      = donburi.NewTag().SetName("Chest")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvChest  = "chest"
	ResolvBody   = "body" // anything that takes part in impulse resolution
)
