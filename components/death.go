package components

import "github.com/yohamta/donburi"

// DeathCause records why an entity went inactive.
type DeathCause int

const (
	CauseKilled DeathCause = iota
	CauseExpired
	CauseConsumed
	CauseOutOfBounds
	CauseRemoved
)

// DeathData marks an inactive entity. It is never removed again, and the
// entity is culled at the end of the frame's gameplay update.
type DeathData struct {
	Cause DeathCause
}

var Death = donburi.NewComponentType[DeathData]()
